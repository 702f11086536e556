package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"estilos_backend/internal/config"
	"estilos_backend/internal/model"
	"estilos_backend/internal/repository"
	"estilos_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
	}
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewLearningPointsRepository(db),
		NewIdentityService(config.IdentityConfig{Enabled: false}),
		cfg,
	), db
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("Segura123!"))
	assert.False(t, ValidPassword("corta1!"))
	assert.False(t, ValidPassword("sinmayuscula123!"))
	assert.False(t, ValidPassword("SinNumeros!!"))
	assert.False(t, ValidPassword("SinEspecial123"))
}

func TestRegisterCreatesUserWithTempUID(t *testing.T) {
	svc, db := newAuthService(t)

	result, err := svc.Register(context.Background(), "ana", "ana@example.com", "Segura123!", model.TipoTutor)
	require.NoError(t, err)

	// 身份提供方关闭时落回本地占位 uid
	assert.False(t, result.IdentityMirrored)

	var user model.User
	require.NoError(t, db.First(&user, result.UserID).Error)
	assert.Equal(t, model.TipoTutor, user.Type)
	assert.True(t, user.HasTempUID())
	assert.NotEqual(t, "Segura123!", user.Password)
	assert.True(t, strings.HasPrefix(user.UID, "temp-"))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ana", "ana@example.com", "Segura123!", model.TipoTutor)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ana", "otra@example.com", "Segura123!", model.TipoProfesor)
	assert.ErrorIs(t, err, util.ErrUsernameRegistered)
}

func TestRegisterStudentInitializesPoints(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.RegisterStudent("luis", "luis@example.com", "G1")
	require.NoError(t, err)

	points, err := svc.PointsRepo.FindByUserID(result.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, points.Visual)
	assert.Equal(t, 0.0, points.Auditivo)
	assert.Equal(t, 0.0, points.Kinestesico)
}

func TestLoginReturnsJWT(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ana", "ana@example.com", "Segura123!", model.TipoTutor)
	require.NoError(t, err)

	result, err := svc.Login(ctx, "ana", "Segura123!")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "ana", result.User.Username)
	assert.False(t, result.IdentityMirrored)

	claims, err := util.ParseJWT(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, model.TipoTutor, claims.Type)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ana", "ana@example.com", "Segura123!", model.TipoTutor)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ana", "Incorrecta1!")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "nadie", "Segura123!")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginRejectsStudentWithoutCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.RegisterStudent("luis", "luis@example.com", "G1")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "luis", "")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestGetProfessorsFiltersByType(t *testing.T) {
	svc, db := newAuthService(t)

	createUser(t, db, "tutor", "", model.TipoTutor)
	createUser(t, db, "profe", "", model.TipoProfesor)
	createUser(t, db, "alumno", "G1", model.TipoEstudiante)

	professors, err := svc.GetProfessors()
	require.NoError(t, err)
	require.Len(t, professors, 1)
	assert.Equal(t, "profe", professors[0].Username)
}
