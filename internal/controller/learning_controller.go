package controller

import (
	"estilos_backend/internal/model"
	"estilos_backend/internal/service"
	"estilos_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	LearningService *service.LearningService
	QuestionService *service.QuestionService
}

func NewLearningController(learningService *service.LearningService, questionService *service.QuestionService) *LearningController {
	return &LearningController{
		LearningService: learningService,
		QuestionService: questionService,
	}
}

// UpdatePointsRequest 三个维度都必须是合法数字，用指针区分缺失与 0
// swagger:model UpdatePointsRequest
type UpdatePointsRequest struct {
	IDUser      uint     `json:"id_user" binding:"required"`
	Visual      *float64 `json:"visual" binding:"required"`
	Auditivo    *float64 `json:"auditivo" binding:"required"`
	Kinestesico *float64 `json:"kinestesico" binding:"required"`
}

// UpdatePoints godoc
// @Summary 累加学习风格积分
// @Description 将本次增量合并进用户累计并重算主导风格
// @Tags 学习
// @Accept  json
// @Produce  json
// @Param   body body UpdatePointsRequest true "积分增量"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /auth/puntos [post]
func (c *LearningController) UpdatePoints(ctx *gin.Context) {
	var req UpdatePointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Los puntos deben ser números válidos y el ID del usuario es requerido")
		return
	}

	points, err := c.LearningService.UpdatePoints(ctx.Request.Context(), req.IDUser, service.PointDeltas{
		Visual:      *req.Visual,
		Auditivo:    *req.Auditivo,
		Kinestesico: *req.Kinestesico,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"message":          "Puntos y estilo dominante actualizados exitosamente",
		"estilo_dominante": points.EstiloDominante,
	})
}

// GetResultados godoc
// @Summary 查询用户的风格占比
// @Tags 学习
// @Produce  json
// @Param   id_user path int true "用户 ID"
// @Success 200 {object} util.Response{data=service.StylePercentages} "成功"
// @Failure 400 {object} util.Response "缺少用户 ID"
// @Router /auth/getpuntos/{id_user} [get]
func (c *LearningController) GetResultados(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id_user"))
	if userID == 0 {
		util.BadRequest(ctx, "El ID del usuario es requerido")
		return
	}

	percentages, err := c.LearningService.CalculatePercentages(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, percentages)
}

// GuardarRespuestaRequest 一次答卷提交及其带来的积分增量
// swagger:model GuardarRespuestaRequest
type GuardarRespuestaRequest struct {
	IDUser            uint    `json:"id_user" binding:"required"`
	PreguntaID        int     `json:"pregunta_id" binding:"required"`
	Respuesta         string  `json:"respuesta"`
	Estilo            string  `json:"estilo"`
	RespuestaValor    int     `json:"respuestaValor"`
	VisualPoints      float64 `json:"visualPoints"`
	AuditivoPoints    float64 `json:"auditivoPoints"`
	KinestesicoPoints float64 `json:"kinestesicoPoints"`
}

// GuardarRespuesta godoc
// @Summary 保存答案并派生预测
// @Description 答案只追加；随后合并积分并存一条预测记录
// @Tags 学习
// @Accept  json
// @Produce  json
// @Param   body body GuardarRespuestaRequest true "答案数据"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /auth/guardarRespuesta [post]
func (c *LearningController) GuardarRespuesta(ctx *gin.Context) {
	var req GuardarRespuestaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "El ID del usuario y de la pregunta son requeridos")
		return
	}

	respuesta := &model.Respuesta{
		IDUser:         req.IDUser,
		PreguntaID:     req.PreguntaID,
		Respuesta:      req.Respuesta,
		Estilo:         req.Estilo,
		RespuestaValor: req.RespuestaValor,
	}

	prediction, err := c.LearningService.SaveRespuesta(ctx.Request.Context(), respuesta, service.PointDeltas{
		Visual:      req.VisualPoints,
		Auditivo:    req.AuditivoPoints,
		Kinestesico: req.KinestesicoPoints,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"message":    "Respuesta guardada y predicción calculada",
		"prediction": prediction,
	})
}

// GetRespuestasByUser godoc
// @Summary 查询用户提交过的答案
// @Tags 学习
// @Produce  json
// @Param   id_user path int true "用户 ID"
// @Success 200 {object} util.Response{data=[]model.Respuesta} "成功"
// @Failure 404 {object} util.Response "该用户没有答案"
// @Router /auth/getRespuestas/{id_user} [get]
func (c *LearningController) GetRespuestasByUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id_user"))
	if userID == 0 {
		util.BadRequest(ctx, "El ID del usuario es requerido")
		return
	}

	respuestas, err := c.LearningService.GetRespuestas(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if len(respuestas) == 0 {
		util.NotFound(ctx, "No se encontraron respuestas para este usuario")
		return
	}

	util.Success(ctx, respuestas)
}

// ObtenerPreguntas godoc
// @Summary 获取固定问卷
// @Description 问卷为空时先写入默认题目
// @Tags 学习
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Pregunta} "成功"
// @Router /auth/preguntas [get]
func (c *LearningController) ObtenerPreguntas(ctx *gin.Context) {
	preguntas, err := c.QuestionService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, preguntas)
}

// GetResultadosTutor godoc
// @Summary 查询用户的预测记录
// @Tags 学习
// @Produce  json
// @Param   id_user path int true "用户 ID"
// @Success 200 {object} util.Response{data=[]model.Resultado} "成功"
// @Failure 404 {object} util.Response "该用户没有预测记录"
// @Router /auth/getResultadosTutor/{id_user} [get]
func (c *LearningController) GetResultadosTutor(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id_user"))
	if userID == 0 {
		util.BadRequest(ctx, "El ID del usuario es requerido")
		return
	}

	resultados, err := c.LearningService.GetResultados(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if len(resultados) == 0 {
		util.NotFound(ctx, "No se encontraron resultados para este usuario")
		return
	}

	util.Success(ctx, resultados)
}

// Grafica godoc
// @Summary 组级风格占比
// @Description 组内有累计记录的成员逐维度求和后求占比
// @Tags 学习
// @Produce  json
// @Param   grupo path string true "组名"
// @Success 200 {object} util.Response{data=service.GroupPercentages} "成功"
// @Failure 400 {object} util.Response "缺少组名"
// @Router /auth/grafica/{grupo} [get]
func (c *LearningController) Grafica(ctx *gin.Context) {
	grupo := ctx.Param("grupo")
	if grupo == "" {
		util.BadRequest(ctx, "El grupo es requerido")
		return
	}

	stats, err := c.LearningService.CalculateGroupPercentages(ctx.Request.Context(), grupo)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
