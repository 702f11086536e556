package app

import (
	"estilos_backend/docs"
	"estilos_backend/internal/config"
	"estilos_backend/internal/middleware"
	"estilos_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	auth := router.Group("/auth")
	{
		// 注册与登录
		auth.POST("/register", c.auth.Register)
		auth.POST("/registro-profesor", c.auth.RegisterProfesor)
		auth.POST("/datos", c.auth.StoreUserData)
		auth.POST("/login", c.auth.Login)
		auth.GET("/getProfesores", c.auth.GetProfessors)

		// 分组
		auth.POST("/asignar", c.group.RegisterGrupo)
		auth.GET("/buscar2", c.group.GetUniqueGroups2)
		// gin 同一位置的路径参数必须同名，两条 buscar 路由共用 :id
		auth.GET("/buscar/:id", c.group.GetUniqueGroups)
		auth.GET("/buscar/:id/:grupo", c.group.GetGroups)
		auth.GET("/getUsersByGroup/:grupo", c.group.GetUsersByGroup)
		auth.GET("/profesores-grupo", c.group.GetProfessorsGrupo)

		// 学习风格
		auth.POST("/puntos", c.learning.UpdatePoints)
		auth.GET("/getpuntos/:id_user", c.learning.GetResultados)
		auth.GET("/grafica/:grupo", c.learning.Grafica)
		auth.POST("/guardarRespuesta", c.learning.GuardarRespuesta)
		auth.GET("/getRespuestas/:id_user", c.learning.GetRespuestasByUser)
		auth.GET("/preguntas", c.learning.ObtenerPreguntas)
		auth.GET("/getResultadosTutor/:id_user", c.learning.GetResultadosTutor)

		// 加入码
		auth.POST("/generate-token", c.token.GenerateToken)
		auth.GET("/token-details", c.token.GetTokenDetails)
		auth.POST("/verify", c.token.VerifyToken)
	}

	// 受 JWT 保护的接口
	protected := router.Group("/auth")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.GET("/profile", c.auth.GetProfile)
	}
}
