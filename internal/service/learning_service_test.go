package service

import (
	"context"
	"encoding/json"
	"testing"

	"estilos_backend/internal/model"
	"estilos_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLearningService(t *testing.T) (*LearningService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewLearningService(
		repository.NewLearningPointsRepository(db),
		repository.NewRespuestaRepository(db),
		repository.NewResultadoRepository(db),
		repository.NewUserRepository(db),
		nil,
	), db
}

func TestUpdatePointsCreatesRecordWithDelta(t *testing.T) {
	svc, _ := newLearningService(t)
	user := createUser(t, svc.PointsRepo.DB, "ana", "G1", model.TipoEstudiante)

	points, err := svc.UpdatePoints(context.Background(), user.ID, PointDeltas{Visual: 1, Auditivo: 2, Kinestesico: 3})
	require.NoError(t, err)

	assert.Equal(t, 1.0, points.Visual)
	assert.Equal(t, 2.0, points.Auditivo)
	assert.Equal(t, 3.0, points.Kinestesico)
	assert.Equal(t, model.EstiloKinestesico, points.EstiloDominante)
}

func TestUpdatePointsAccumulatesDeltas(t *testing.T) {
	svc, _ := newLearningService(t)
	user := createUser(t, svc.PointsRepo.DB, "luis", "G1", model.TipoEstudiante)
	ctx := context.Background()

	_, err := svc.UpdatePoints(ctx, user.ID, PointDeltas{Visual: 2})
	require.NoError(t, err)

	points, err := svc.UpdatePoints(ctx, user.ID, PointDeltas{Auditivo: 5})
	require.NoError(t, err)

	assert.Equal(t, 2.0, points.Visual)
	assert.Equal(t, 5.0, points.Auditivo)
	assert.Equal(t, 0.0, points.Kinestesico)
	assert.Equal(t, model.EstiloAuditivo, points.EstiloDominante)
}

func TestCalculatePercentagesWithoutRecord(t *testing.T) {
	svc, _ := newLearningService(t)

	pct, err := svc.CalculatePercentages(42)
	require.NoError(t, err)

	assert.Equal(t, &StylePercentages{}, pct)
}

func TestCalculatePercentagesZeroTotal(t *testing.T) {
	svc, _ := newLearningService(t)
	user := createUser(t, svc.PointsRepo.DB, "eva", "G1", model.TipoEstudiante)

	_, err := svc.PointsRepo.Initialize(user.ID)
	require.NoError(t, err)

	pct, err := svc.CalculatePercentages(user.ID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, pct.Visual)
	assert.Equal(t, 0.0, pct.Auditivo)
	assert.Equal(t, 0.0, pct.Kinestesico)
}

func TestCalculatePercentagesAfterSuccessiveUpdates(t *testing.T) {
	svc, _ := newLearningService(t)
	user := createUser(t, svc.PointsRepo.DB, "mar", "G1", model.TipoEstudiante)
	ctx := context.Background()

	_, err := svc.UpdatePoints(ctx, user.ID, PointDeltas{Visual: 2})
	require.NoError(t, err)

	pct, err := svc.CalculatePercentages(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, pct.Visual)
	assert.Equal(t, 0.0, pct.Auditivo)
	assert.Equal(t, 0.0, pct.Kinestesico)

	_, err = svc.UpdatePoints(ctx, user.ID, PointDeltas{Auditivo: 5})
	require.NoError(t, err)

	pct, err = svc.CalculatePercentages(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 28.57, pct.Visual)
	assert.Equal(t, 71.43, pct.Auditivo)
	assert.Equal(t, 0.0, pct.Kinestesico)
}

func TestCalculateGroupPercentagesEmptyGroup(t *testing.T) {
	svc, _ := newLearningService(t)

	stats, err := svc.CalculateGroupPercentages(context.Background(), "vacio")
	require.NoError(t, err)

	assert.Equal(t, &GroupPercentages{}, stats)
}

func TestCalculateGroupPercentagesAggregatesMembers(t *testing.T) {
	svc, db := newLearningService(t)
	ctx := context.Background()

	ana := createUser(t, db, "ana", "G1", model.TipoEstudiante)
	luis := createUser(t, db, "luis", "G1", model.TipoEstudiante)
	createUser(t, db, "otro", "G2", model.TipoEstudiante)

	_, err := svc.UpdatePoints(ctx, ana.ID, PointDeltas{Visual: 2})
	require.NoError(t, err)
	_, err = svc.UpdatePoints(ctx, luis.ID, PointDeltas{Auditivo: 5})
	require.NoError(t, err)

	stats, err := svc.CalculateGroupPercentages(ctx, "G1")
	require.NoError(t, err)

	assert.Equal(t, "G1", stats.Grupo)
	assert.Equal(t, 28.57, stats.Visual)
	assert.Equal(t, 71.43, stats.Auditivo)
	assert.Equal(t, 0.0, stats.Kinestesico)
	assert.Equal(t, 2, stats.TotalUsuarios)
}

func TestCalculateGroupPercentagesZeroTotal(t *testing.T) {
	svc, db := newLearningService(t)
	user := createUser(t, db, "ana", "G1", model.TipoEstudiante)

	_, err := svc.PointsRepo.Initialize(user.ID)
	require.NoError(t, err)

	stats, err := svc.CalculateGroupPercentages(context.Background(), "G1")
	require.NoError(t, err)

	assert.Equal(t, &GroupPercentages{}, stats)
}

func TestSaveRespuestaPersistsAnswerPointsAndPrediction(t *testing.T) {
	svc, db := newLearningService(t)
	user := createUser(t, db, "ana", "G1", model.TipoEstudiante)

	respuesta := &model.Respuesta{
		IDUser:         user.ID,
		PreguntaID:     3,
		Respuesta:      "Sí",
		Estilo:         model.EstiloVisual,
		RespuestaValor: 2,
	}
	resultado, err := svc.SaveRespuesta(context.Background(), respuesta, PointDeltas{Visual: 2, Auditivo: 1, Kinestesico: 1})
	require.NoError(t, err)

	assert.Equal(t, 50.0, resultado.VisualPredicho)
	assert.Equal(t, 25.0, resultado.AuditivoPredicho)
	assert.Equal(t, 25.0, resultado.KinestesicoPredicho)
	assert.NotEmpty(t, resultado.ID)

	var detalles map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultado.Detalles), &detalles))

	points, err := svc.PointsRepo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, points.Visual)
	assert.Equal(t, model.EstiloVisual, points.EstiloDominante)

	respuestas, err := svc.GetRespuestas(user.ID)
	require.NoError(t, err)
	require.Len(t, respuestas, 1)
	assert.Equal(t, "Sí", respuestas[0].Respuesta)

	resultados, err := svc.GetResultados(user.ID)
	require.NoError(t, err)
	assert.Len(t, resultados, 1)
}

func TestSaveRespuestaZeroDeltasPredictsZero(t *testing.T) {
	svc, db := newLearningService(t)
	user := createUser(t, db, "ana", "G1", model.TipoEstudiante)

	respuesta := &model.Respuesta{
		IDUser:     user.ID,
		PreguntaID: 1,
		Respuesta:  "No",
		Estilo:     model.EstiloAuditivo,
	}
	resultado, err := svc.SaveRespuesta(context.Background(), respuesta, PointDeltas{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, resultado.VisualPredicho)
	assert.Equal(t, 0.0, resultado.AuditivoPredicho)
	assert.Equal(t, 0.0, resultado.KinestesicoPredicho)
}
