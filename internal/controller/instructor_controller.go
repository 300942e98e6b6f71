package controller

import (
	"cursos_backend/internal/model"
	"cursos_backend/internal/service"
	"cursos_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InstructorController struct {
	InstructorService *service.InstructorService
}

func NewInstructorController(instructorService *service.InstructorService) *InstructorController {
	return &InstructorController{InstructorService: instructorService}
}

// swagger:model InstructorRequest
type InstructorRequest struct {
	UserID          uint   `json:"user_id" binding:"required"`
	Biografia       string `json:"biografia"`
	Especialidad    string `json:"especialidad" binding:"required,max=100"`
	ExperienciaAnos *int   `json:"experiencia_anos" binding:"required"`
	Foto            string `json:"foto"`
	Telefono        string `json:"telefono" binding:"required"`
	Activo          *bool  `json:"activo"`
}

// swagger:model InstructorPatchRequest
type InstructorPatchRequest struct {
	Biografia       *string `json:"biografia"`
	Especialidad    *string `json:"especialidad"`
	ExperienciaAnos *int    `json:"experiencia_anos"`
	Foto            *string `json:"foto"`
	Telefono        *string `json:"telefono"`
	Activo          *bool   `json:"activo"`
}

// List godoc
// @Summary Listar instructores
// @Description Devuelve todos los instructores, los mas recientes primero
// @Tags instructores
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.InstructorResponse}
// @Router /api/instructores [get]
func (c *InstructorController) List(ctx *gin.Context) {
	instructores, err := c.InstructorService.Listar()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, instructores)
}

// Get godoc
// @Summary Obtener un instructor
// @Tags instructores
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID del instructor"
// @Success 200 {object} util.Response{data=service.InstructorResponse}
// @Failure 404 {object} util.Response
// @Router /api/instructores/{id} [get]
func (c *InstructorController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	instructor, err := c.InstructorService.Obtener(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, instructor)
}

// Create godoc
// @Summary Registrar un instructor
// @Description Asocia un perfil de instructor a un usuario existente
// @Tags instructores
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body InstructorRequest true "Datos del instructor"
// @Success 201 {object} util.Response{data=service.InstructorResponse}
// @Failure 400 {object} util.Response
// @Router /api/instructores [post]
func (c *InstructorController) Create(ctx *gin.Context) {
	var req InstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	instructor := &model.Instructor{
		UserID:          req.UserID,
		Biografia:       req.Biografia,
		Especialidad:    req.Especialidad,
		ExperienciaAnos: *req.ExperienciaAnos,
		Foto:            req.Foto,
		Telefono:        req.Telefono,
		Activo:          true,
	}
	if req.Activo != nil {
		instructor.Activo = *req.Activo
	}

	response, err := c.InstructorService.Crear(instructor)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, response)
}

// Update godoc
// @Summary Reemplazar un instructor
// @Tags instructores
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID del instructor"
// @Param body body InstructorRequest true "Datos del instructor"
// @Success 200 {object} util.Response{data=service.InstructorResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructores/{id} [put]
func (c *InstructorController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req InstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	instructor, err := c.InstructorService.ObtenerModelo(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	instructor.Biografia = req.Biografia
	instructor.Especialidad = req.Especialidad
	instructor.ExperienciaAnos = *req.ExperienciaAnos
	instructor.Foto = req.Foto
	instructor.Telefono = req.Telefono
	if req.Activo != nil {
		instructor.Activo = *req.Activo
	}

	response, err := c.InstructorService.Actualizar(instructor)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, response)
}

// Patch godoc
// @Summary Modificar parcialmente un instructor
// @Tags instructores
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID del instructor"
// @Param body body InstructorPatchRequest true "Campos a modificar"
// @Success 200 {object} util.Response{data=service.InstructorResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructores/{id} [patch]
func (c *InstructorController) Patch(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req InstructorPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	instructor, err := c.InstructorService.ObtenerModelo(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if req.Biografia != nil {
		instructor.Biografia = *req.Biografia
	}
	if req.Especialidad != nil {
		instructor.Especialidad = *req.Especialidad
	}
	if req.ExperienciaAnos != nil {
		instructor.ExperienciaAnos = *req.ExperienciaAnos
	}
	if req.Foto != nil {
		instructor.Foto = *req.Foto
	}
	if req.Telefono != nil {
		instructor.Telefono = *req.Telefono
	}
	if req.Activo != nil {
		instructor.Activo = *req.Activo
	}

	response, err := c.InstructorService.Actualizar(instructor)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, response)
}

// Delete godoc
// @Summary Desactivar un instructor
// @Description Baja logica, el registro se conserva
// @Tags instructores
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID del instructor"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructores/{id} [delete]
func (c *InstructorController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.InstructorService.Desactivar(id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mensaje": "Instructor desactivado"})
}

// Cursos godoc
// @Summary Cursos de un instructor
// @Description Lista los cursos activos dictados por el instructor
// @Tags instructores
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID del instructor"
// @Success 200 {object} util.Response{data=[]service.CursoResponse}
// @Failure 404 {object} util.Response
// @Router /api/instructores/{id}/cursos [get]
func (c *InstructorController) Cursos(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	cursos, err := c.InstructorService.Cursos(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, cursos)
}

// SubirFoto godoc
// @Summary Subir foto del instructor
// @Tags instructores
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID del instructor"
// @Param foto formData file true "Imagen de perfil"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructores/{id}/foto [post]
func (c *InstructorController) SubirFoto(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("foto")
	if err != nil {
		util.BadRequest(ctx, "Archivo requerido")
		return
	}

	url, err := c.InstructorService.SubirFoto(ctx.Request.Context(), id, file)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"foto": url})
}
