package repository

import (
	"estilos_backend/internal/model"

	"gorm.io/gorm"
)

type PreguntaRepository struct {
	DB *gorm.DB
}

func NewPreguntaRepository(db *gorm.DB) *PreguntaRepository {
	return &PreguntaRepository{DB: db}
}

func (r *PreguntaRepository) FindAll() ([]model.Pregunta, error) {
	var preguntas []model.Pregunta
	err := r.DB.Order("pregunta_id").Find(&preguntas).Error
	return preguntas, err
}

func (r *PreguntaRepository) FindByEstilo(estilo string) ([]model.Pregunta, error) {
	var preguntas []model.Pregunta
	err := r.DB.Where("estilo = ?", estilo).Order("pregunta_id").Find(&preguntas).Error
	return preguntas, err
}

func (r *PreguntaRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Pregunta{}).Count(&count).Error
	return count, err
}

func (r *PreguntaRepository) CreateBatch(preguntas []model.Pregunta) error {
	return r.DB.Create(&preguntas).Error
}
