package service

import (
	"testing"

	"estilos_backend/internal/model"
	"estilos_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllSeedsDefaultQuestionnaire(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(repository.NewPreguntaRepository(db))

	preguntas, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, preguntas, 27)

	byStyle := make(map[string]int, 3)
	for _, p := range preguntas {
		byStyle[p.Estilo]++
		assert.Equal(t, []string{"Sí", "No", "A veces"}, p.Opciones)
		assert.Equal(t, "General", p.Categoria)
	}
	assert.Equal(t, 9, byStyle[model.EstiloVisual])
	assert.Equal(t, 9, byStyle[model.EstiloAuditivo])
	assert.Equal(t, 9, byStyle[model.EstiloKinestesico])
}

func TestGetAllDoesNotReseed(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(repository.NewPreguntaRepository(db))

	_, err := svc.GetAll()
	require.NoError(t, err)

	preguntas, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, preguntas, 27)
}
