package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"estilos_backend/internal/model"
	"estilos_backend/internal/repository"
	"estilos_backend/internal/util"
	"estilos_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PointDeltas 单次提交带来的各维度增量，调用方保证非负
type PointDeltas struct {
	Visual      float64
	Auditivo    float64
	Kinestesico float64
}

// StylePercentages 单个用户的风格占比，固定两位小数
type StylePercentages struct {
	Visual      float64 `json:"visual"`
	Auditivo    float64 `json:"auditivo"`
	Kinestesico float64 `json:"kinestesico"`
}

// GroupPercentages 组级聚合；TotalUsuarios 只统计有累计记录的成员
type GroupPercentages struct {
	Grupo         string  `json:"grupo,omitempty"`
	Visual        float64 `json:"visual"`
	Auditivo      float64 `json:"auditivo"`
	Kinestesico   float64 `json:"kinestesico"`
	TotalUsuarios int     `json:"totalUsuarios,omitempty"`
}

const (
	groupStatsKeyPrefix = "group_stats:"
	groupStatsTTL       = 5 * time.Minute
)

type LearningService struct {
	PointsRepo    *repository.LearningPointsRepository
	RespuestaRepo *repository.RespuestaRepository
	ResultadoRepo *repository.ResultadoRepository
	UserRepo      *repository.UserRepository
	Redis         *redis.Client
}

func NewLearningService(
	pointsRepo *repository.LearningPointsRepository,
	respuestaRepo *repository.RespuestaRepository,
	resultadoRepo *repository.ResultadoRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *LearningService {
	return &LearningService{
		PointsRepo:    pointsRepo,
		RespuestaRepo: respuestaRepo,
		ResultadoRepo: resultadoRepo,
		UserRepo:      userRepo,
		Redis:         rdb,
	}
}

// UpdatePoints 把增量合并进用户的累计记录并重算主导风格。
// 记录不存在时建档并应用本次增量。
func (s *LearningService) UpdatePoints(ctx context.Context, userID uint, deltas PointDeltas) (*model.LearningPoints, error) {
	points, err := s.PointsRepo.AddPoints(userID, deltas.Visual, deltas.Auditivo, deltas.Kinestesico)
	if err != nil {
		return nil, err
	}

	s.invalidateGroupStats(ctx, userID)
	return points, nil
}

// CalculatePercentages 无记录或总分为零时返回全零，不产生 NaN
func (s *LearningService) CalculatePercentages(userID uint) (*StylePercentages, error) {
	points, err := s.PointsRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &StylePercentages{}, nil
	}
	if err != nil {
		return nil, err
	}

	total := points.Visual + points.Auditivo + points.Kinestesico
	if total == 0 {
		return &StylePercentages{}, nil
	}

	return &StylePercentages{
		Visual:      util.Round2(points.Visual / total * 100),
		Auditivo:    util.Round2(points.Auditivo / total * 100),
		Kinestesico: util.Round2(points.Kinestesico / total * 100),
	}, nil
}

// CalculateGroupPercentages 组内逐维度求和后求占比；无成员、无记录或
// 总分为零时返回全零。结果短暂缓存，成员积分变化时失效。
func (s *LearningService) CalculateGroupPercentages(ctx context.Context, grupo string) (*GroupPercentages, error) {
	if cached := s.cachedGroupStats(ctx, grupo); cached != nil {
		return cached, nil
	}

	users, err := s.UserRepo.FindByGroup(grupo)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return &GroupPercentages{}, nil
	}

	userIDs := make([]uint, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.ID)
	}

	records, err := s.PointsRepo.FindByUserIDs(userIDs)
	if err != nil {
		return nil, err
	}

	var totalVisual, totalAuditivo, totalKinestesico float64
	for _, p := range records {
		totalVisual += p.Visual
		totalAuditivo += p.Auditivo
		totalKinestesico += p.Kinestesico
	}

	total := totalVisual + totalAuditivo + totalKinestesico
	if total == 0 {
		return &GroupPercentages{}, nil
	}

	stats := &GroupPercentages{
		Grupo:         grupo,
		Visual:        util.Round2(totalVisual / total * 100),
		Auditivo:      util.Round2(totalAuditivo / total * 100),
		Kinestesico:   util.Round2(totalKinestesico / total * 100),
		TotalUsuarios: len(records),
	}

	s.cacheGroupStats(ctx, grupo, stats)
	return stats, nil
}

// SaveRespuesta 保存答案、合并积分并派生一条预测记录
func (s *LearningService) SaveRespuesta(ctx context.Context, respuesta *model.Respuesta, deltas PointDeltas) (*model.Resultado, error) {
	if err := s.RespuestaRepo.Create(respuesta); err != nil {
		return nil, err
	}

	if _, err := s.UpdatePoints(ctx, respuesta.IDUser, deltas); err != nil {
		return nil, err
	}

	return s.calculatePrediction(respuesta.IDUser, deltas)
}

func (s *LearningService) GetRespuestas(userID uint) ([]model.Respuesta, error) {
	return s.RespuestaRepo.FindByUser(userID)
}

func (s *LearningService) GetResultados(userID uint) ([]model.Resultado, error) {
	return s.ResultadoRepo.FindByUser(userID)
}

// predictionDetails 预测记录的 detalles 快照
type predictionDetails struct {
	Input      map[string]float64 `json:"input"`
	Normalized map[string]float64 `json:"normalized"`
	Predicted  map[string]float64 `json:"predicted"`
	Modelo     string             `json:"modelo"`
}

// calculatePrediction 占位变换：各维度占比映射到 [0,100]，两位小数。
// 不引入回归库，原实现的三点线性拟合没有统计意义。
func (s *LearningService) calculatePrediction(userID uint, deltas PointDeltas) (*model.Resultado, error) {
	total := deltas.Visual + deltas.Auditivo + deltas.Kinestesico

	ratio := func(v float64) float64 {
		if total <= 0 {
			return 0
		}
		return v / total
	}
	predict := func(r float64) float64 {
		p := r * 100
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		return util.Round2(p)
	}

	visualRatio := ratio(deltas.Visual)
	auditivoRatio := ratio(deltas.Auditivo)
	kinestesicoRatio := ratio(deltas.Kinestesico)

	resultado := &model.Resultado{
		IDUser:              userID,
		VisualPredicho:      predict(visualRatio),
		AuditivoPredicho:    predict(auditivoRatio),
		KinestesicoPredicho: predict(kinestesicoRatio),
	}

	detalles, err := json.Marshal(predictionDetails{
		Input: map[string]float64{
			"visual":      deltas.Visual,
			"auditivo":    deltas.Auditivo,
			"kinestesico": deltas.Kinestesico,
		},
		Normalized: map[string]float64{
			"visual":      visualRatio,
			"auditivo":    auditivoRatio,
			"kinestesico": kinestesicoRatio,
		},
		Predicted: map[string]float64{
			"visual":      resultado.VisualPredicho,
			"auditivo":    resultado.AuditivoPredicho,
			"kinestesico": resultado.KinestesicoPredicho,
		},
		Modelo: "transformación proporción-porcentaje",
	})
	if err != nil {
		return nil, err
	}
	resultado.Detalles = string(detalles)

	if err := s.ResultadoRepo.Create(resultado); err != nil {
		return nil, err
	}
	return resultado, nil
}

func (s *LearningService) cachedGroupStats(ctx context.Context, grupo string) *GroupPercentages {
	if s.Redis == nil {
		return nil
	}
	raw, err := s.Redis.Get(ctx, groupStatsKeyPrefix+grupo).Result()
	if err != nil {
		return nil
	}
	var stats GroupPercentages
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *LearningService) cacheGroupStats(ctx context.Context, grupo string, stats *GroupPercentages) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, groupStatsKeyPrefix+grupo, raw, groupStatsTTL).Err(); err != nil {
		logger.Log.Warn("failed to cache group stats", zap.String("grupo", grupo), zap.Error(err))
	}
}

// invalidateGroupStats 积分变化后丢弃该用户所在组的缓存
func (s *LearningService) invalidateGroupStats(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil || user.Grupo == "" {
		return
	}
	if err := s.Redis.Del(ctx, groupStatsKeyPrefix+user.Grupo).Err(); err != nil {
		logger.Log.Warn("failed to invalidate group stats", zap.String("grupo", user.Grupo), zap.Error(err))
	}
}
