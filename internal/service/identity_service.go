package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"estilos_backend/internal/config"
	"estilos_backend/internal/util"
)

// IdentityService 外部身份提供方的镜像客户端。
// 所有调用都是尽力而为：失败由调用方记录并吞掉，绝不阻断主流程。
type IdentityService struct {
	cfg    config.IdentityConfig
	client *http.Client
}

func NewIdentityService(cfg config.IdentityConfig) *IdentityService {
	return &IdentityService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type identityRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityResponse struct {
	LocalID string `json:"localId"`
}

// SignUp 在身份提供方创建凭据镜像，成功时返回其分配的 uid
func (s *IdentityService) SignUp(ctx context.Context, email, password string) (string, error) {
	return s.post(ctx, "accounts:signUp", email, password)
}

// SignIn 登录时的凭据镜像校验
func (s *IdentityService) SignIn(ctx context.Context, email, password string) error {
	_, err := s.post(ctx, "accounts:signInWithPassword", email, password)
	return err
}

func (s *IdentityService) post(ctx context.Context, action, email, password string) (string, error) {
	if !s.cfg.Enabled {
		return "", util.ErrIdentityDisabled
	}

	body, err := json.Marshal(identityRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1/%s?key=%s", s.cfg.BaseURL, action, s.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("identity provider returned %d", resp.StatusCode)
	}

	var out identityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.LocalID, nil
}
