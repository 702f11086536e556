package service

import (
	"testing"
	"time"

	"estilos_backend/internal/model"
	"estilos_backend/internal/repository"
	"estilos_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTokenService(t *testing.T) (*TokenService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewTokenService(
		repository.NewTokenRepository(db),
		repository.NewGroupRepository(db),
		60,
	), db
}

// backdate 把加入码的创建时间往回拨，用来模拟时间流逝
func backdate(t *testing.T, db *gorm.DB, tokenID uint, age time.Duration) {
	t.Helper()
	err := db.Model(&model.Token{}).
		Where("id = ?", tokenID).
		Update("created_at", time.Now().Add(-age)).
		Error
	require.NoError(t, err)
}

func TestGenerateTokenCreatesFiveCharCode(t *testing.T) {
	svc, db := newTokenService(t)

	token, created, err := svc.GenerateToken("G1")
	require.NoError(t, err)

	assert.True(t, created)
	assert.Len(t, token.Token, model.TokenLength)
	assert.Equal(t, "G1", token.Grupo)
	assert.Equal(t, model.TokenActivo, token.Estatus)
	for _, r := range token.Token {
		assert.Contains(t, util.TokenAlphabet, string(r))
	}

	// 签发同时确保组存在
	var group model.Group
	require.NoError(t, db.Where("grupo = ?", "G1").First(&group).Error)
}

func TestGenerateTokenIdempotentWhileActive(t *testing.T) {
	svc, _ := newTokenService(t)

	first, created, err := svc.GenerateToken("G1")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.GenerateToken("G1")
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Token, second.Token)
}

func TestGenerateTokenPerGroup(t *testing.T) {
	svc, _ := newTokenService(t)

	_, created, err := svc.GenerateToken("G1")
	require.NoError(t, err)
	require.True(t, created)

	_, created, err = svc.GenerateToken("G2")
	require.NoError(t, err)
	assert.True(t, created)

	tokens, err := svc.GetActiveTokens()
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
}

func TestVerifyTokenValid(t *testing.T) {
	svc, _ := newTokenService(t)

	token, _, err := svc.GenerateToken("G1")
	require.NoError(t, err)

	result, err := svc.VerifyToken(token.Token)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Reason)
	assert.Equal(t, "G1", result.Grupo)
}

func TestVerifyTokenRejectsWrongLength(t *testing.T) {
	svc, _ := newTokenService(t)

	_, err := svc.VerifyToken("ABC")
	assert.ErrorIs(t, err, util.ErrTokenFormat)

	_, err = svc.VerifyToken("ABCDEF")
	assert.ErrorIs(t, err, util.ErrTokenFormat)
}

func TestVerifyTokenNotFound(t *testing.T) {
	svc, _ := newTokenService(t)

	_, err := svc.VerifyToken("XYZ99")
	assert.ErrorIs(t, err, util.ErrTokenNotFound)
}

func TestVerifyTokenAlreadyExpiredStatus(t *testing.T) {
	svc, db := newTokenService(t)

	token, _, err := svc.GenerateToken("G1")
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.Token{}).Where("id = ?", token.ID).Update("estatus", model.TokenExpirado).Error)

	result, err := svc.VerifyToken(token.Token)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, ReasonExpired, result.Reason)
}

func TestVerifyTokenLazyExpiryFlipsStatus(t *testing.T) {
	svc, db := newTokenService(t)

	token, _, err := svc.GenerateToken("G1")
	require.NoError(t, err)
	backdate(t, db, token.ID, 61*time.Minute)

	result, err := svc.VerifyToken(token.Token)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, ReasonTimeExpired, result.Reason)

	var stored model.Token
	require.NoError(t, db.First(&stored, token.ID).Error)
	assert.Equal(t, model.TokenExpirado, stored.Estatus)
}

func TestVerifyTokenWithinValidity(t *testing.T) {
	svc, db := newTokenService(t)

	token, _, err := svc.GenerateToken("G1")
	require.NoError(t, err)
	backdate(t, db, token.ID, 59*time.Minute)

	result, err := svc.VerifyToken(token.Token)
	require.NoError(t, err)

	assert.True(t, result.Valid)
}

func TestUpdateExpiredTokensSweepsOnlyStale(t *testing.T) {
	svc, db := newTokenService(t)

	stale, _, err := svc.GenerateToken("G1")
	require.NoError(t, err)
	backdate(t, db, stale.ID, 61*time.Minute)

	fresh, _, err := svc.GenerateToken("G2")
	require.NoError(t, err)

	count, err := svc.UpdateExpiredTokens()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	tokens, err := svc.GetActiveTokens()
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, fresh.ID, tokens[0].ID)

	// 再跑一遍没有新目标
	count, err = svc.UpdateExpiredTokens()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGenerateTokenReissuesAfterExpiry(t *testing.T) {
	svc, db := newTokenService(t)

	old, _, err := svc.GenerateToken("G1")
	require.NoError(t, err)
	backdate(t, db, old.ID, 61*time.Minute)

	_, err = svc.UpdateExpiredTokens()
	require.NoError(t, err)

	reissued, created, err := svc.GenerateToken("G1")
	require.NoError(t, err)

	assert.True(t, created)
	assert.NotEqual(t, old.ID, reissued.ID)
	assert.Equal(t, model.TokenActivo, reissued.Estatus)
}
