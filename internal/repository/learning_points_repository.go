package repository

import (
	"errors"

	"estilos_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearningPointsRepository struct {
	DB *gorm.DB
}

func NewLearningPointsRepository(db *gorm.DB) *LearningPointsRepository {
	return &LearningPointsRepository{DB: db}
}

// Initialize 学生注册时建档，三个累计器归零
func (r *LearningPointsRepository) Initialize(userID uint) (*model.LearningPoints, error) {
	points := &model.LearningPoints{UserID: userID}
	err := r.DB.Create(points).Error
	return points, err
}

func (r *LearningPointsRepository) FindByUserID(userID uint) (*model.LearningPoints, error) {
	var points model.LearningPoints
	err := r.DB.Where("user_id = ?", userID).First(&points).Error
	return &points, err
}

func (r *LearningPointsRepository) FindByUserIDs(userIDs []uint) ([]model.LearningPoints, error) {
	var points []model.LearningPoints
	if len(userIDs) == 0 {
		return points, nil
	}
	err := r.DB.Where("user_id IN ?", userIDs).Find(&points).Error
	return points, err
}

// AddPoints 行锁事务内的读-加-写，并发提交不会互相丢失增量。
// 记录不存在时以当前增量建档，created_at 只在建档时设置。
func (r *LearningPointsRepository) AddPoints(userID uint, visual, auditivo, kinestesico float64) (*model.LearningPoints, error) {
	var points model.LearningPoints
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&points).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			points = model.LearningPoints{UserID: userID}
		} else if err != nil {
			return err
		}

		points.Visual += visual
		points.Auditivo += auditivo
		points.Kinestesico += kinestesico
		points.EstiloDominante = model.DominantStyle(points.Visual, points.Auditivo, points.Kinestesico)

		return tx.Save(&points).Error
	})
	return &points, err
}
