package controller

import (
	"errors"

	"estilos_backend/internal/model"
	"estilos_backend/internal/service"
	"estilos_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// Register godoc
// @Summary 注册 tutor/管理端用户（类型 1）
// @Description 本地记录为主，身份提供方镜像尽力而为
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "注册信息"
// @Success 201 {object} util.Response{data=service.RegistrationResult} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "用户名已被注册"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	c.register(ctx, model.TipoTutor, "Registro exitoso")
}

// RegisterProfesor godoc
// @Summary 注册教师用户（类型 2）
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "注册信息"
// @Success 201 {object} util.Response{data=service.RegistrationResult} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "用户名已被注册"
// @Router /auth/registro-profesor [post]
func (c *AuthController) RegisterProfesor(ctx *gin.Context) {
	c.register(ctx, model.TipoProfesor, "Registro exitoso como profesor")
}

func (c *AuthController) register(ctx *gin.Context, tipo model.UserType, message string) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Por favor, proporciona un nombre de usuario, una contraseña y un correo electrónico.")
		return
	}

	if !service.ValidPassword(req.Password) {
		util.BadRequest(ctx, "La contraseña debe tener al menos 8 caracteres, incluir una letra mayúscula, un número y un carácter especial.")
		return
	}

	result, err := c.AuthService.Register(ctx.Request.Context(), req.Username, req.Email, req.Password, tipo)
	if err != nil {
		if errors.Is(err, util.ErrUsernameRegistered) {
			util.Conflict(ctx, "El nombre de usuario ya está registrado. Por favor, usa otro.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"message":          message,
		"userId":           result.UserID,
		"identityMirrored": result.IdentityMirrored,
	})
}

// swagger:model StoreUserDataRequest
type StoreUserDataRequest struct {
	Grupo    string `json:"grupo" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// StoreUserData godoc
// @Summary 注册学生（类型 3）
// @Description 学生无凭据；注册即建立零分累计档
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body StoreUserDataRequest true "学生信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "用户名已被注册"
// @Router /auth/datos [post]
func (c *AuthController) StoreUserData(ctx *gin.Context) {
	var req StoreUserDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Por favor, proporciona el grupo, nombre de usuario y correo electrónico.")
		return
	}

	result, err := c.AuthService.RegisterStudent(req.Username, req.Email, req.Grupo)
	if err != nil {
		if errors.Is(err, util.ErrUsernameRegistered) {
			util.Conflict(ctx, "El nombre de usuario ya está registrado. Por favor, usa otro.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"message": "Usuario y puntos inicializados exitosamente",
		"userId":  result.UserID,
	})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 本地 bcrypt 校验；返回 JWT 供可选的受保护接口使用
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "用户名或密码错误"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Por favor, proporciona un nombre de usuario y una contraseña.")
		return
	}

	result, err := c.AuthService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, "Usuario o contraseña incorrectos")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"message": "Inicio de sesión exitoso",
		"user": gin.H{
			"id":       result.User.ID,
			"username": result.User.Username,
			"type":     result.User.Type,
		},
		"token":            result.Token,
		"identityMirrored": result.IdentityMirrored,
	})
}

// GetProfessors godoc
// @Summary 列出所有教师
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "没有教师"
// @Router /auth/getProfesores [get]
func (c *AuthController) GetProfessors(ctx *gin.Context) {
	professors, err := c.AuthService.GetProfessors()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if len(professors) == 0 {
		util.NotFound(ctx, "No se encontraron profesores")
		return
	}

	filtered := make([]gin.H, 0, len(professors))
	for _, prof := range professors {
		filtered = append(filtered, gin.H{
			"id":       prof.ID,
			"username": prof.Username,
		})
	}

	util.Success(ctx, gin.H{"professors": filtered})
}

// GetProfile godoc
// @Summary 当前用户资料
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /auth/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user, err := c.AuthService.GetCurrentUser(util.GetUserFromContext(ctx))
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, user)
}
