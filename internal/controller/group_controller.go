package controller

import (
	"errors"

	"estilos_backend/internal/service"
	"estilos_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	GroupService *service.GroupService
}

func NewGroupController(groupService *service.GroupService) *GroupController {
	return &GroupController{GroupService: groupService}
}

// swagger:model RegisterGrupoRequest
type RegisterGrupoRequest struct {
	Grupo      string `json:"grupo" binding:"required"`
	ProfesorID uint   `json:"profesorId" binding:"required"`
}

// RegisterGrupo godoc
// @Summary 建组并指派教师
// @Description 组不存在时先创建；指派是幂等的
// @Tags 分组
// @Accept  json
// @Produce  json
// @Param   body body RegisterGrupoRequest true "组与教师"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 404 {object} util.Response "教师不存在"
// @Router /auth/asignar [post]
func (c *GroupController) RegisterGrupo(ctx *gin.Context) {
	var req RegisterGrupoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Por favor, proporciona el grupo y el id del profesor.")
		return
	}

	groupID, err := c.GroupService.AssignProfessor(req.Grupo, req.ProfesorID)
	if err != nil {
		if errors.Is(err, util.ErrProfessorNotFound) {
			util.NotFound(ctx, "Profesor no encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"message": "Grupo asignado exitosamente",
		"groupId": groupID,
	})
}

// GetUniqueGroups2 godoc
// @Summary 全部组名
// @Description 无组时返回 200 与空列表
// @Tags 分组
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /auth/buscar2 [get]
func (c *GroupController) GetUniqueGroups2(ctx *gin.Context) {
	groups, err := c.GroupService.AllGroups()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Grupo)
	}

	util.Success(ctx, gin.H{"grupos": names})
}

// GetUniqueGroups godoc
// @Summary 某教师负责的组名
// @Description 无组时返回 200 与空列表
// @Tags 分组
// @Produce  json
// @Param   id path int true "教师 ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /auth/buscar/{id} [get]
func (c *GroupController) GetUniqueGroups(ctx *gin.Context) {
	professorID := util.MustParseUint(ctx.Param("id"))

	groups, err := c.GroupService.GroupsByProfessor(professorID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Grupo)
	}

	util.Success(ctx, gin.H{"grupos": names})
}

// GetGroups godoc
// @Summary 某教师某组的成员及主导风格
// @Tags 分组
// @Produce  json
// @Param   id path int true "教师 ID"
// @Param   grupo path string true "组名"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 403 {object} util.Response "该组未指派给该教师"
// @Failure 404 {object} util.Response "组内没有用户"
// @Router /auth/buscar/{id}/{grupo} [get]
func (c *GroupController) GetGroups(ctx *gin.Context) {
	professorID := util.MustParseUint(ctx.Param("id"))
	grupo := ctx.Param("grupo")

	users, err := c.GroupService.UsersWithStyles(professorID, grupo)
	if err != nil {
		if errors.Is(err, util.ErrGroupNotAssigned) {
			util.Forbidden(ctx, "El grupo no está asignado a este profesor")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	if len(users) == 0 {
		util.NotFound(ctx, "No se encontraron usuarios en este grupo")
		return
	}

	util.Success(ctx, gin.H{"users": users})
}

// GetUsersByGroup godoc
// @Summary 组内成员
// @Tags 分组
// @Produce  json
// @Param   grupo path string true "组名"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "组内没有用户"
// @Router /auth/getUsersByGroup/{grupo} [get]
func (c *GroupController) GetUsersByGroup(ctx *gin.Context) {
	grupo := ctx.Param("grupo")

	users, err := c.GroupService.UsersInGroup(grupo)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if len(users) == 0 {
		util.NotFound(ctx, "No se encontraron usuarios en este grupo")
		return
	}

	result := make([]gin.H, 0, len(users))
	for _, u := range users {
		result = append(result, gin.H{
			"id":       u.ID,
			"username": u.Username,
			"email":    u.Email,
			"grupo":    u.Grupo,
		})
	}

	util.Success(ctx, gin.H{"users": result})
}

// GetProfessorsGrupo godoc
// @Summary 教师及其负责组名列表
// @Tags 分组
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "没有教师"
// @Router /auth/profesores-grupo [get]
func (c *GroupController) GetProfessorsGrupo(ctx *gin.Context) {
	professors, err := c.GroupService.ProfessorsWithGroups()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if len(professors) == 0 {
		util.NotFound(ctx, "No se encontraron profesores")
		return
	}

	util.Success(ctx, gin.H{"profesores": professors})
}
