package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estilos_backend/internal/config"
	"estilos_backend/internal/controller"
	"estilos_backend/internal/repository"
	"estilos_backend/internal/service"
	"estilos_backend/pkg/database"
	"estilos_backend/pkg/logger"
	"estilos_backend/pkg/monitoring"
	"estilos_backend/pkg/security"
	"estilos_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	group     *repository.GroupRepository
	points    *repository.LearningPointsRepository
	token     *repository.TokenRepository
	pregunta  *repository.PreguntaRepository
	respuesta *repository.RespuestaRepository
	resultado *repository.ResultadoRepository
}

type services struct {
	identity *service.IdentityService
	auth     *service.AuthService
	group    *service.GroupService
	learning *service.LearningService
	token    *service.TokenService
	question *service.QuestionService
}

type controllers struct {
	auth     *controller.AuthController
	group    *controller.GroupController
	learning *controller.LearningController
	token    *controller.TokenController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 配置热更新入口，回调由各组件注册
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		group:     repository.NewGroupRepository(db),
		points:    repository.NewLearningPointsRepository(db),
		token:     repository.NewTokenRepository(db),
		pregunta:  repository.NewPreguntaRepository(db),
		respuesta: repository.NewRespuestaRepository(db),
		resultado: repository.NewResultadoRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.identity = service.NewIdentityService(cfg.Identity)
	s.auth = service.NewAuthService(repos.user, repos.points, s.identity, cfg)
	s.group = service.NewGroupService(repos.group, repos.user, repos.points)
	s.learning = service.NewLearningService(repos.points, repos.respuesta, repos.resultado, repos.user, rdb)
	s.token = service.NewTokenService(repos.token, repos.group, cfg.Token.ValidityMinutes)
	s.question = service.NewQuestionService(repos.pregunta)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		group:    controller.NewGroupController(s.group),
		learning: controller.NewLearningController(s.learning, s.question),
		token:    controller.NewTokenController(s.token),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 周期性将超时的加入码置为过期
func (a *App) startBackgroundTasks(s *services, cfg *config.Config) {
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Token.SweepMinutes) * time.Minute)
		for range ticker.C {
			if _, err := s.token.UpdateExpiredTokens(); err != nil {
				logger.Log.Error("token sweep error", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// release 模式默认不迁移，需通过 -migrate 显式开启
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
			log.Fatalf("Failed to migrate database: %v", err)
		}
		logger.Log.Info("Database migration completed")
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	app.RegisterConfigCallback(func(c *config.Config) {
		logger.Log.Info("Config reloaded",
			zap.String("server_mode", c.Server.Mode),
			zap.Int("token_validity_minutes", c.Token.ValidityMinutes))
	})

	// 监控初始化
	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("estilos-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if !cfg.MigrateOnly {
		app.startBackgroundTasks(services, cfg)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
