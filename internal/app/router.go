package app

import (
	"cursos_backend/internal/config"
	"cursos_backend/internal/middleware"
	"cursos_backend/internal/model"
	"cursos_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerAuthorizedRoutes(authGroup, c)
	}
}

// Catalog browsing stays open: anyone can inspect courses and
// categories before creating an account.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/categorias", c.categoria.List)
		public.GET("/categorias/:id", c.categoria.Get)

		public.GET("/cursos", c.curso.List)
		public.GET("/cursos/populares", c.curso.Populares)
		public.GET("/cursos/por_categoria", c.curso.PorCategoria)
		public.GET("/cursos/:id", c.curso.Get)

		public.GET("/buscar", c.curso.Buscar)
	}
}

func (a *App) registerAuthorizedRoutes(rg *gin.RouterGroup, c *controllers) {
	soloAdmin := middleware.RoleMiddleware(model.Admin)

	rg.GET("/profile", c.auth.GetProfile)

	// Instructor profiles are provisioned and retired by staff.
	rg.GET("/instructores", c.instructor.List)
	rg.POST("/instructores", soloAdmin, c.instructor.Create)
	rg.GET("/instructores/:id", c.instructor.Get)
	rg.PUT("/instructores/:id", c.instructor.Update)
	rg.PATCH("/instructores/:id", c.instructor.Patch)
	rg.DELETE("/instructores/:id", soloAdmin, c.instructor.Delete)
	rg.GET("/instructores/:id/cursos", c.instructor.Cursos)
	rg.POST("/instructores/:id/foto", c.instructor.SubirFoto)

	rg.POST("/categorias", c.categoria.Create)
	rg.PUT("/categorias/:id", c.categoria.Update)
	rg.PATCH("/categorias/:id", c.categoria.Patch)
	rg.DELETE("/categorias/:id", c.categoria.Delete)

	rg.POST("/cursos", c.curso.Create)
	rg.PUT("/cursos/:id", c.curso.Update)
	rg.PATCH("/cursos/:id", c.curso.Patch)
	rg.DELETE("/cursos/:id", c.curso.Delete)
	rg.POST("/cursos/:id/imagen", c.curso.SubirImagen)

	rg.GET("/lecciones", c.leccion.List)
	rg.POST("/lecciones", c.leccion.Create)
	rg.GET("/lecciones/:id", c.leccion.Get)
	rg.PUT("/lecciones/:id", c.leccion.Update)
	rg.PATCH("/lecciones/:id", c.leccion.Patch)
	rg.DELETE("/lecciones/:id", c.leccion.Delete)
	rg.POST("/lecciones/:id/archivo", c.leccion.SubirArchivo)

	rg.GET("/matriculas", c.matricula.List)
	rg.POST("/matriculas", c.matricula.Create)
	rg.GET("/matriculas/:id", c.matricula.Get)
	rg.PUT("/matriculas/:id", c.matricula.Calificar)
	rg.PATCH("/matriculas/:id", c.matricula.Calificar)
	rg.DELETE("/matriculas/:id", c.matricula.Delete)
	rg.POST("/matriculas/:id/actualizar_progreso", c.matricula.ActualizarProgreso)
}
