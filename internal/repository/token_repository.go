package repository

import (
	"time"

	"estilos_backend/internal/model"

	"gorm.io/gorm"
)

type TokenRepository struct {
	DB *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

func (r *TokenRepository) Create(token *model.Token) error {
	return r.DB.Create(token).Error
}

func (r *TokenRepository) FindActiveByGroup(grupo string) (*model.Token, error) {
	var token model.Token
	err := r.DB.Where("grupo = ? AND estatus = ?", grupo, model.TokenActivo).
		First(&token).Error
	return &token, err
}

// FindByValue 不校验碰撞，同值取最早的一条
func (r *TokenRepository) FindByValue(value string) (*model.Token, error) {
	var token model.Token
	err := r.DB.Where("token = ?", value).Order("id").First(&token).Error
	return &token, err
}

func (r *TokenRepository) FindActive() ([]model.Token, error) {
	var tokens []model.Token
	err := r.DB.Where("estatus = ?", model.TokenActivo).Find(&tokens).Error
	return tokens, err
}

func (r *TokenRepository) UpdateStatus(id uint, estatus int) error {
	return r.DB.Model(&model.Token{}).
		Where("id = ?", id).
		Update("estatus", estatus).
		Error
}

// ExpireOlderThan 单条 UPDATE 完成整批过期，对已过期记录天然幂等
func (r *TokenRepository) ExpireOlderThan(cutoff time.Time) (int64, error) {
	result := r.DB.Model(&model.Token{}).
		Where("estatus = ? AND created_at < ?", model.TokenActivo, cutoff).
		Update("estatus", model.TokenExpirado)
	return result.RowsAffected, result.Error
}
