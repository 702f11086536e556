package repository

import (
	"estilos_backend/internal/model"

	"gorm.io/gorm"
)

type RespuestaRepository struct {
	DB *gorm.DB
}

func NewRespuestaRepository(db *gorm.DB) *RespuestaRepository {
	return &RespuestaRepository{DB: db}
}

func (r *RespuestaRepository) Create(respuesta *model.Respuesta) error {
	return r.DB.Create(respuesta).Error
}

func (r *RespuestaRepository) FindByUser(userID uint) ([]model.Respuesta, error) {
	var respuestas []model.Respuesta
	err := r.DB.Where("id_user = ?", userID).Order("created_at").Find(&respuestas).Error
	return respuestas, err
}
