package app

import (
	"context"
	"cursos_backend/internal/config"
	"cursos_backend/internal/controller"
	"cursos_backend/internal/repository"
	"cursos_backend/internal/service"
	"cursos_backend/internal/util"
	"cursos_backend/pkg/database"
	"cursos_backend/pkg/logger"
	"cursos_backend/pkg/monitoring"
	"cursos_backend/pkg/security"
	"cursos_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	instructor *repository.InstructorRepository
	categoria  *repository.CategoriaRepository
	curso      *repository.CursoRepository
	leccion    *repository.LeccionRepository
	matricula  *repository.MatriculaRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	instructor *service.InstructorService
	categoria  *service.CategoriaService
	curso      *service.CursoService
	leccion    *service.LeccionService
	matricula  *service.MatriculaService
}

type controllers struct {
	auth       *controller.AuthController
	instructor *controller.InstructorController
	categoria  *controller.CategoriaController
	curso      *controller.CursoController
	leccion    *controller.LeccionController
	matricula  *controller.MatriculaController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a reloaded configuration and notifies listeners.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		instructor: repository.NewInstructorRepository(db),
		categoria:  repository.NewCategoriaRepository(db),
		curso:      repository.NewCursoRepository(db),
		leccion:    repository.NewLeccionRepository(db),
		matricula:  repository.NewMatriculaRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.instructor = service.NewInstructorService(repos.instructor, repos.curso, repos.user, s.storage)
	s.categoria = service.NewCategoriaService(repos.categoria)
	s.curso = service.NewCursoService(repos.curso, repos.instructor, repos.categoria, s.storage)
	s.leccion = service.NewLeccionService(repos.leccion, repos.curso, s.storage)
	s.matricula = service.NewMatriculaService(repos.matricula, repos.curso)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		instructor: controller.NewInstructorController(s.instructor),
		categoria:  controller.NewCategoriaController(s.categoria),
		curso:      controller.NewCursoController(s.curso),
		leccion:    controller.NewLeccionController(s.leccion),
		matricula:  controller.NewMatriculaController(s.matricula),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.ForceMigrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("cursos-marketplace", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

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
