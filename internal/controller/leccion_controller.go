package controller

import (
	"cursos_backend/internal/model"
	"cursos_backend/internal/service"
	"cursos_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeccionController struct {
	LeccionService *service.LeccionService
}

func NewLeccionController(leccionService *service.LeccionService) *LeccionController {
	return &LeccionController{LeccionService: leccionService}
}

// swagger:model LeccionRequest
type LeccionRequest struct {
	Titulo          string `json:"titulo" binding:"required,max=200"`
	CursoID         uint   `json:"curso_id" binding:"required"`
	Tipo            string `json:"tipo" binding:"required"`
	Contenido       string `json:"contenido"`
	VideoURL        string `json:"video_url"`
	Archivo         string `json:"archivo"`
	DuracionMinutos int    `json:"duracion_minutos"`
	Orden           *int   `json:"orden"`
	Gratuita        bool   `json:"gratuita"`
	Activa          *bool  `json:"activa"`
}

// swagger:model LeccionPatchRequest
type LeccionPatchRequest struct {
	Titulo          *string `json:"titulo"`
	Tipo            *string `json:"tipo"`
	Contenido       *string `json:"contenido"`
	VideoURL        *string `json:"video_url"`
	Archivo         *string `json:"archivo"`
	DuracionMinutos *int    `json:"duracion_minutos"`
	Orden           *int    `json:"orden"`
	Gratuita        *bool   `json:"gratuita"`
	Activa          *bool   `json:"activa"`
}

// List godoc
// @Summary Listar lecciones
// @Description Devuelve las lecciones activas agrupadas por curso y orden
// @Tags lecciones
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Leccion}
// @Router /api/lecciones [get]
func (c *LeccionController) List(ctx *gin.Context) {
	lecciones, err := c.LeccionService.Listar()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, lecciones)
}

// Get godoc
// @Summary Obtener una leccion
// @Tags lecciones
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la leccion"
// @Success 200 {object} util.Response{data=model.Leccion}
// @Failure 404 {object} util.Response
// @Router /api/lecciones/{id} [get]
func (c *LeccionController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	leccion, err := c.LeccionService.Obtener(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, leccion)
}

// Create godoc
// @Summary Crear una leccion
// @Tags lecciones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body LeccionRequest true "Datos de la leccion"
// @Success 201 {object} util.Response{data=model.Leccion}
// @Failure 400 {object} util.Response
// @Router /api/lecciones [post]
func (c *LeccionController) Create(ctx *gin.Context) {
	var req LeccionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	leccion := &model.Leccion{
		Titulo:          req.Titulo,
		CursoID:         req.CursoID,
		Tipo:            model.TipoLeccion(req.Tipo),
		Contenido:       req.Contenido,
		VideoURL:        req.VideoURL,
		Archivo:         req.Archivo,
		DuracionMinutos: req.DuracionMinutos,
		Orden:           1,
		Gratuita:        req.Gratuita,
		Activa:          true,
	}
	if req.Orden != nil {
		leccion.Orden = *req.Orden
	}
	if req.Activa != nil {
		leccion.Activa = *req.Activa
	}

	if err := c.LeccionService.Crear(leccion); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, leccion)
}

// Update godoc
// @Summary Reemplazar una leccion
// @Tags lecciones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la leccion"
// @Param body body LeccionRequest true "Datos de la leccion"
// @Success 200 {object} util.Response{data=model.Leccion}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lecciones/{id} [put]
func (c *LeccionController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req LeccionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	leccion, err := c.LeccionService.Obtener(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	leccion.Titulo = req.Titulo
	leccion.Tipo = model.TipoLeccion(req.Tipo)
	leccion.Contenido = req.Contenido
	leccion.VideoURL = req.VideoURL
	leccion.Archivo = req.Archivo
	leccion.DuracionMinutos = req.DuracionMinutos
	leccion.Gratuita = req.Gratuita
	if req.Orden != nil {
		leccion.Orden = *req.Orden
	}
	if req.Activa != nil {
		leccion.Activa = *req.Activa
	}

	if err := c.LeccionService.Actualizar(leccion); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, leccion)
}

// Patch godoc
// @Summary Modificar parcialmente una leccion
// @Tags lecciones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la leccion"
// @Param body body LeccionPatchRequest true "Campos a modificar"
// @Success 200 {object} util.Response{data=model.Leccion}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lecciones/{id} [patch]
func (c *LeccionController) Patch(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req LeccionPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	leccion, err := c.LeccionService.Obtener(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if req.Titulo != nil {
		leccion.Titulo = *req.Titulo
	}
	if req.Tipo != nil {
		leccion.Tipo = model.TipoLeccion(*req.Tipo)
	}
	if req.Contenido != nil {
		leccion.Contenido = *req.Contenido
	}
	if req.VideoURL != nil {
		leccion.VideoURL = *req.VideoURL
	}
	if req.Archivo != nil {
		leccion.Archivo = *req.Archivo
	}
	if req.DuracionMinutos != nil {
		leccion.DuracionMinutos = *req.DuracionMinutos
	}
	if req.Orden != nil {
		leccion.Orden = *req.Orden
	}
	if req.Gratuita != nil {
		leccion.Gratuita = *req.Gratuita
	}
	if req.Activa != nil {
		leccion.Activa = *req.Activa
	}

	if err := c.LeccionService.Actualizar(leccion); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, leccion)
}

// Delete godoc
// @Summary Desactivar una leccion
// @Description Baja logica, el registro se conserva
// @Tags lecciones
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la leccion"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lecciones/{id} [delete]
func (c *LeccionController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.LeccionService.Desactivar(id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mensaje": "Leccion desactivada"})
}

// SubirArchivo godoc
// @Summary Subir archivo de la leccion
// @Description Adjunta un archivo y, para videos, completa la duracion
// @Tags lecciones
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la leccion"
// @Param archivo formData file true "Archivo adjunto"
// @Success 200 {object} util.Response{data=model.Leccion}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lecciones/{id}/archivo [post]
func (c *LeccionController) SubirArchivo(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("archivo")
	if err != nil {
		util.BadRequest(ctx, "Archivo requerido")
		return
	}

	leccion, err := c.LeccionService.SubirArchivo(ctx.Request.Context(), id, file)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, leccion)
}
