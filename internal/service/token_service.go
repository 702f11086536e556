package service

import (
	"errors"
	"sync"
	"time"

	"estilos_backend/internal/model"
	"estilos_backend/internal/repository"
	"estilos_backend/internal/util"
	"estilos_backend/pkg/logger"
	"estilos_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 验证失败的两种终态原因
const (
	ReasonExpired     = "expired"     // 记录已是 estatus=0
	ReasonTimeExpired = "timeExpired" // 验证时超出有效期，顺带置 0
)

// TokenVerification 验证结果；过期不是错误路径，而是结构化的无效结果
type TokenVerification struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Token  string `json:"token"`
	Grupo  string `json:"grupo"`
}

type TokenService struct {
	TokenRepo *repository.TokenRepository
	GroupRepo *repository.GroupRepository
	Validity  time.Duration

	// 按组串行化签发，关闭先查后建的竞态
	mu         sync.Mutex
	groupLocks map[string]*sync.Mutex
}

func NewTokenService(tokenRepo *repository.TokenRepository, groupRepo *repository.GroupRepository, validityMinutes int) *TokenService {
	return &TokenService{
		TokenRepo:  tokenRepo,
		GroupRepo:  groupRepo,
		Validity:   time.Duration(validityMinutes) * time.Minute,
		groupLocks: make(map[string]*sync.Mutex),
	}
}

func (s *TokenService) groupLock(grupo string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.groupLocks[grupo]
	if !ok {
		lock = &sync.Mutex{}
		s.groupLocks[grupo] = lock
	}
	return lock
}

// GenerateToken 幂等签发：组内已有活跃码时原样返回，否则生成一个
// 5 字符随机码（不查重，唯一性只是概率上的）并确保组存在。
// 返回值第二项表示是否新建。
func (s *TokenService) GenerateToken(grupo string) (*model.Token, bool, error) {
	lock := s.groupLock(grupo)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.TokenRepo.FindActiveByGroup(grupo)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	token := &model.Token{
		Token:   util.GenerateRandomToken(model.TokenLength),
		Grupo:   grupo,
		Estatus: model.TokenActivo,
	}
	if err := s.TokenRepo.Create(token); err != nil {
		return nil, false, err
	}

	if _, err := s.GroupRepo.Ensure(grupo); err != nil {
		return nil, false, err
	}

	return token, true, nil
}

// VerifyToken 验证状态机：
// 未找到 -> ErrTokenNotFound；estatus!=1 -> 无效(expired)；
// 活跃但超龄 -> 置 0 并返回无效(timeExpired)；否则有效。
// 控制器已校验长度，这里仍防御畸形输入。
func (s *TokenService) VerifyToken(value string) (*TokenVerification, error) {
	if len(value) != model.TokenLength {
		return nil, util.ErrTokenFormat
	}

	token, err := s.TokenRepo.FindByValue(value)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTokenNotFound
	}
	if err != nil {
		return nil, err
	}

	if !token.Activo() {
		return &TokenVerification{
			Valid:  false,
			Reason: ReasonExpired,
			Token:  token.Token,
			Grupo:  token.Grupo,
		}, nil
	}

	if time.Since(token.CreatedAt) > s.Validity {
		// 惰性过期与周期清理共用同一阈值，重复置 0 无副作用
		if err := s.TokenRepo.UpdateStatus(token.ID, model.TokenExpirado); err != nil {
			return nil, err
		}
		monitoring.TokensExpired.Inc()
		return &TokenVerification{
			Valid:  false,
			Reason: ReasonTimeExpired,
			Token:  token.Token,
			Grupo:  token.Grupo,
		}, nil
	}

	return &TokenVerification{
		Valid: true,
		Token: token.Token,
		Grupo: token.Grupo,
	}, nil
}

// UpdateExpiredTokens 周期清理，返回被置 0 的数量
func (s *TokenService) UpdateExpiredTokens() (int64, error) {
	cutoff := time.Now().Add(-s.Validity)
	count, err := s.TokenRepo.ExpireOlderThan(cutoff)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		monitoring.TokensExpired.Add(float64(count))
		logger.Log.Info("expired join tokens swept", zap.Int64("count", count))
	}
	return count, nil
}

func (s *TokenService) GetActiveTokens() ([]model.Token, error) {
	return s.TokenRepo.FindActive()
}
