package controller

import (
	"cursos_backend/internal/service"
	"cursos_backend/internal/util"
	"cursos_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type MatriculaController struct {
	MatriculaService *service.MatriculaService
}

func NewMatriculaController(matriculaService *service.MatriculaService) *MatriculaController {
	return &MatriculaController{MatriculaService: matriculaService}
}

// swagger:model MatriculaRequest
type MatriculaRequest struct {
	CursoID uint `json:"curso" binding:"required"`
}

// swagger:model CalificacionRequest
type CalificacionRequest struct {
	Calificacion *int    `json:"calificacion"`
	Comentario   *string `json:"comentario"`
}

// swagger:model ProgresoRequest
type ProgresoRequest struct {
	Progreso *int `json:"progreso"`
}

// List godoc
// @Summary Mis matriculas
// @Description Lista las matriculas activas del usuario autenticado
// @Tags matriculas
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.MatriculaResponse}
// @Failure 401 {object} util.Response
// @Router /api/matriculas [get]
func (c *MatriculaController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	matriculas, err := c.MatriculaService.Listar(claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, matriculas)
}

// Get godoc
// @Summary Obtener una matricula propia
// @Description Las matriculas de otros usuarios responden 404
// @Tags matriculas
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la matricula"
// @Success 200 {object} util.Response{data=service.MatriculaResponse}
// @Failure 404 {object} util.Response
// @Router /api/matriculas/{id} [get]
func (c *MatriculaController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	matricula, err := c.MatriculaService.Obtener(id, claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, matricula)
}

// Create godoc
// @Summary Matricularse en un curso
// @Description El estudiante siempre es el usuario autenticado
// @Tags matriculas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body MatriculaRequest true "Curso a matricular"
// @Success 201 {object} util.Response{data=service.MatriculaResponse}
// @Failure 400 {object} util.Response
// @Router /api/matriculas [post]
func (c *MatriculaController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req MatriculaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	matricula, err := c.MatriculaService.Matricular(claims.UserID, req.CursoID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	monitoring.MatriculaCounter.WithLabelValues("alta").Inc()
	util.Created(ctx, matricula)
}

// Calificar godoc
// @Summary Calificar un curso matriculado
// @Description Actualiza calificacion y comentario; el progreso no se toca aqui
// @Tags matriculas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la matricula"
// @Param body body CalificacionRequest true "Calificacion y comentario"
// @Success 200 {object} util.Response{data=service.MatriculaResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/matriculas/{id} [patch]
func (c *MatriculaController) Calificar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req CalificacionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	matricula, err := c.MatriculaService.Calificar(id, claims.UserID, req.Calificacion, req.Comentario)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, matricula)
}

// ActualizarProgreso godoc
// @Summary Actualizar el progreso
// @Description Al llegar a 100 la matricula se marca completada
// @Tags matriculas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la matricula"
// @Param body body ProgresoRequest true "Progreso entre 0 y 100"
// @Success 200 {object} util.Response{data=service.MatriculaResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/matriculas/{id}/actualizar_progreso [post]
func (c *MatriculaController) ActualizarProgreso(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req ProgresoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Progreso == nil || *req.Progreso < 0 || *req.Progreso > 100 {
		util.BadRequest(ctx, "Progreso debe estar entre 0 y 100")
		return
	}

	matricula, err := c.MatriculaService.ActualizarProgreso(id, claims.UserID, *req.Progreso)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, matricula)
}

// Delete godoc
// @Summary Darse de baja
// @Description Baja logica de la matricula propia
// @Tags matriculas
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la matricula"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/matriculas/{id} [delete]
func (c *MatriculaController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.MatriculaService.Baja(id, claims.UserID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	monitoring.MatriculaCounter.WithLabelValues("baja").Inc()
	util.Success(ctx, gin.H{"mensaje": "Matricula dada de baja"})
}
