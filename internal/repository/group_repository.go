package repository

import (
	"estilos_backend/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

// Ensure 组按名称去重，已存在时返回现有记录
func (r *GroupRepository) Ensure(grupo string) (*model.Group, error) {
	var group model.Group
	err := r.DB.Where(model.Group{Grupo: grupo}).FirstOrCreate(&group).Error
	return &group, err
}

func (r *GroupRepository) FindByName(grupo string) (*model.Group, error) {
	var group model.Group
	err := r.DB.Where("grupo = ?", grupo).First(&group).Error
	return &group, err
}

func (r *GroupRepository) AssignProfessor(groupID, professorID uint) error {
	return r.DB.Model(&model.Group{}).
		Where("id = ?", groupID).
		Update("profesor", professorID).
		Error
}

func (r *GroupRepository) FindAll() ([]model.Group, error) {
	var groups []model.Group
	err := r.DB.Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) FindByProfessor(professorID uint) ([]model.Group, error) {
	var groups []model.Group
	err := r.DB.Where("profesor = ?", professorID).Find(&groups).Error
	return groups, err
}
