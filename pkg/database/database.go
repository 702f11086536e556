package database

import (
	"fmt"
	"log"

	"estilos_backend/internal/config"
	"estilos_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate 建表并补种默认问卷
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.LearningPoints{},
		&model.Token{},
		&model.Pregunta{},
		&model.Respuesta{},
		&model.Resultado{},
	)
	if err != nil {
		return err
	}

	// 默认问卷题目
	var count int64
	db.Model(&model.Pregunta{}).Count(&count)
	if count == 0 {
		preguntas := model.DefaultPreguntas()
		if err := db.Create(&preguntas).Error; err != nil {
			return err
		}
	}

	return nil
}
