package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"estilos_backend/internal/config"
	"estilos_backend/internal/model"
	"estilos_backend/internal/repository"
	"estilos_backend/internal/util"
	"estilos_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegistrationResult 主记录创建与身份镜像分开上报；
// 镜像失败不是错误，而是显式的 false。
type RegistrationResult struct {
	UserID           uint `json:"userId"`
	IdentityMirrored bool `json:"identityMirrored"`
}

// LoginResult 登录同样区分主流程与镜像结果
type LoginResult struct {
	User             *model.User `json:"user"`
	Token            string      `json:"token"`
	IdentityMirrored bool        `json:"identityMirrored"`
}

type AuthService struct {
	UserRepo   *repository.UserRepository
	PointsRepo *repository.LearningPointsRepository
	Identity   *IdentityService
	Cfg        *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, pointsRepo *repository.LearningPointsRepository, identity *IdentityService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:   userRepo,
		PointsRepo: pointsRepo,
		Identity:   identity,
		Cfg:        cfg,
	}
}

// ValidPassword 至少 8 位并包含大写字母、数字和特殊字符
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasDigit && hasSpecial
}

// Register 注册类型 1（tutor）或类型 2（profesor）用户
func (s *AuthService) Register(ctx context.Context, username, email, password string, tipo model.UserType) (*RegistrationResult, error) {
	if err := s.ensureUsernameFree(username); err != nil {
		return nil, err
	}

	uid, mirrored := s.mirrorSignUp(ctx, email, password)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Type:     tipo,
		UID:      uid,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	return &RegistrationResult{UserID: user.ID, IdentityMirrored: mirrored}, nil
}

// RegisterStudent 学生（类型 3）无凭据、不走身份提供方，注册即建立零分累计档
func (s *AuthService) RegisterStudent(username, email, grupo string) (*RegistrationResult, error) {
	if err := s.ensureUsernameFree(username); err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Type:     model.TipoEstudiante,
		Grupo:    grupo,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	if _, err := s.PointsRepo.Initialize(user.ID); err != nil {
		return nil, err
	}

	return &RegistrationResult{UserID: user.ID}, nil
}

// Login 本地 bcrypt 校验为准；身份提供方只做尽力而为的镜像登录
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	// 学生没有凭据，无法走登录
	if user.Password == "" {
		return nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	mirrored := false
	if user.UID != "" && !user.HasTempUID() {
		if err := s.Identity.SignIn(ctx, user.Email, password); err != nil {
			if !errors.Is(err, util.ErrIdentityDisabled) {
				logger.Log.Warn("identity sign-in mirror failed",
					zap.String("username", username), zap.Error(err))
			}
		} else {
			mirrored = true
		}
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token, IdentityMirrored: mirrored}, nil
}

func (s *AuthService) GetProfessors() ([]model.User, error) {
	return s.UserRepo.FindByType(model.TipoProfesor)
}

func (s *AuthService) GetCurrentUser(claims *util.Claims) (*model.User, error) {
	if claims == nil {
		return nil, util.ErrUserNotFound
	}
	return s.UserRepo.FindByID(claims.UserID)
}

func (s *AuthService) ensureUsernameFree(username string) error {
	_, err := s.UserRepo.FindByUsername(username)
	if err == nil {
		return util.ErrUsernameRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// mirrorSignUp 镜像失败时落回本地占位 uid，主流程不受影响
func (s *AuthService) mirrorSignUp(ctx context.Context, email, password string) (string, bool) {
	uid, err := s.Identity.SignUp(ctx, email, password)
	if err != nil {
		if !errors.Is(err, util.ErrIdentityDisabled) {
			logger.Log.Warn("identity sign-up mirror failed",
				zap.String("email", email), zap.Error(err))
		}
		return fmt.Sprintf("temp-%d", time.Now().UnixMilli()), false
	}
	return uid, true
}
