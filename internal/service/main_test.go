package service

import (
	"os"
	"testing"

	"estilos_backend/internal/model"
	"estilos_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.LearningPoints{},
		&model.Token{},
		&model.Pregunta{},
		&model.Respuesta{},
		&model.Resultado{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, grupo string, tipo model.UserType) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Type:     tipo,
		Grupo:    grupo,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
