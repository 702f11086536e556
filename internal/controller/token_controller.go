package controller

import (
	"errors"
	"fmt"
	"time"

	"estilos_backend/internal/model"
	"estilos_backend/internal/service"
	"estilos_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TokenController struct {
	TokenService *service.TokenService
}

func NewTokenController(tokenService *service.TokenService) *TokenController {
	return &TokenController{TokenService: tokenService}
}

// swagger:model GenerateTokenRequest
type GenerateTokenRequest struct {
	Group string `json:"group" binding:"required"`
}

// GenerateToken godoc
// @Summary 为组签发加入码
// @Description 幂等：组内已有活跃码则原样返回，不会重复签发
// @Tags 令牌
// @Accept  json
// @Produce  json
// @Param   body body GenerateTokenRequest true "组名"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "缺少组名"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /auth/generate-token [post]
func (c *TokenController) GenerateToken(ctx *gin.Context) {
	var req GenerateTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "El grupo es requerido")
		return
	}

	token, created, err := c.TokenService.GenerateToken(req.Group)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if !created {
		util.Success(ctx, gin.H{
			"message": fmt.Sprintf("Ya existe un token activo para el grupo %s.", req.Group),
			"token":   token.Token,
		})
		return
	}

	util.Success(ctx, gin.H{
		"token":  token.Token,
		"status": token.Estatus,
		"group":  token.Grupo,
	})
}

// TokenDetail 活跃加入码的对外表示
type TokenDetail struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	Grupo     string    `json:"grupo"`
}

// GetTokenDetails godoc
// @Summary 列出所有活跃加入码
// @Tags 令牌
// @Produce  json
// @Success 200 {object} util.Response{data=[]TokenDetail} "成功"
// @Router /auth/token-details [get]
func (c *TokenController) GetTokenDetails(ctx *gin.Context) {
	tokens, err := c.TokenService.GetActiveTokens()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	details := make([]TokenDetail, 0, len(tokens))
	for _, t := range tokens {
		details = append(details, TokenDetail{
			Token:     t.Token,
			CreatedAt: t.CreatedAt,
			Grupo:     t.Grupo,
		})
	}

	util.Success(ctx, details)
}

// swagger:model VerifyTokenRequest
type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// VerifyToken godoc
// @Summary 验证加入码
// @Description 过期是结构化的无效结果而非错误；超龄验证会把码置为过期
// @Tags 令牌
// @Accept  json
// @Produce  json
// @Param   body body VerifyTokenRequest true "加入码"
// @Success 200 {object} util.Response{data=object} "有效"
// @Failure 400 {object} util.Response "格式错误或已过期"
// @Failure 404 {object} util.Response "加入码不存在"
// @Router /auth/verify [post]
func (c *TokenController) VerifyToken(ctx *gin.Context) {
	var req VerifyTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || len(req.Token) != model.TokenLength {
		util.BadRequest(ctx, "Código inválido: El token debe tener exactamente 5 caracteres.")
		return
	}

	verification, err := c.TokenService.VerifyToken(req.Token)
	if errors.Is(err, util.ErrTokenNotFound) {
		util.NotFound(ctx, "Token no encontrado")
		return
	}
	if errors.Is(err, util.ErrTokenFormat) {
		util.BadRequest(ctx, "Código inválido: El token debe tener exactamente 5 caracteres.")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if !verification.Valid {
		message := "El token ha expirado"
		if verification.Reason == service.ReasonTimeExpired {
			message = "El token ha expirado por tiempo"
		}
		util.BadRequest(ctx, message)
		return
	}

	util.Success(ctx, gin.H{
		"message": "Token verificado con éxito",
		"token":   verification.Token,
		"grupo":   verification.Grupo,
	})
}
