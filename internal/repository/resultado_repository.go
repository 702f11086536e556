package repository

import (
	"estilos_backend/internal/model"

	"gorm.io/gorm"
)

type ResultadoRepository struct {
	DB *gorm.DB
}

func NewResultadoRepository(db *gorm.DB) *ResultadoRepository {
	return &ResultadoRepository{DB: db}
}

func (r *ResultadoRepository) Create(resultado *model.Resultado) error {
	return r.DB.Create(resultado).Error
}

func (r *ResultadoRepository) FindByUser(userID uint) ([]model.Resultado, error) {
	var resultados []model.Resultado
	err := r.DB.Where("id_user = ?", userID).Order("created_at").Find(&resultados).Error
	return resultados, err
}
