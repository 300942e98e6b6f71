package controller

import (
	"cursos_backend/internal/model"
	"cursos_backend/internal/service"
	"cursos_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CursoController struct {
	CursoService *service.CursoService
}

func NewCursoController(cursoService *service.CursoService) *CursoController {
	return &CursoController{CursoService: cursoService}
}

// swagger:model CursoRequest
type CursoRequest struct {
	Titulo        string  `json:"titulo" binding:"required,max=200"`
	Descripcion   string  `json:"descripcion" binding:"required"`
	InstructorID  uint    `json:"instructor_id" binding:"required"`
	CategoriaID   uint    `json:"categoria_id" binding:"required"`
	Precio        float64 `json:"precio" binding:"required"`
	Nivel         string  `json:"nivel" binding:"required"`
	DuracionHoras int     `json:"duracion_horas" binding:"required"`
	Imagen        string  `json:"imagen"`
	Requisitos    string  `json:"requisitos"`
	Activo        *bool   `json:"activo"`
}

// swagger:model CursoPatchRequest
type CursoPatchRequest struct {
	Titulo        *string  `json:"titulo"`
	Descripcion   *string  `json:"descripcion"`
	InstructorID  *uint    `json:"instructor_id"`
	CategoriaID   *uint    `json:"categoria_id"`
	Precio        *float64 `json:"precio"`
	Nivel         *string  `json:"nivel"`
	DuracionHoras *int     `json:"duracion_horas"`
	Imagen        *string  `json:"imagen"`
	Requisitos    *string  `json:"requisitos"`
	Activo        *bool    `json:"activo"`
}

// List godoc
// @Summary Listar cursos
// @Description Devuelve los cursos activos, los mas recientes primero
// @Tags cursos
// @Produce json
// @Success 200 {object} util.Response{data=[]service.CursoResponse}
// @Router /api/cursos [get]
func (c *CursoController) List(ctx *gin.Context) {
	cursos, err := c.CursoService.Listar()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, cursos)
}

// Get godoc
// @Summary Detalle de un curso
// @Description Devuelve el curso con sus lecciones activas ordenadas
// @Tags cursos
// @Produce json
// @Param id path int true "ID del curso"
// @Success 200 {object} util.Response{data=service.CursoDetailResponse}
// @Failure 404 {object} util.Response
// @Router /api/cursos/{id} [get]
func (c *CursoController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	curso, err := c.CursoService.Detalle(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, curso)
}

// Create godoc
// @Summary Crear un curso
// @Tags cursos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CursoRequest true "Datos del curso"
// @Success 201 {object} util.Response{data=service.CursoResponse}
// @Failure 400 {object} util.Response
// @Router /api/cursos [post]
func (c *CursoController) Create(ctx *gin.Context) {
	var req CursoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	curso := &model.Curso{
		Titulo:        req.Titulo,
		Descripcion:   req.Descripcion,
		InstructorID:  req.InstructorID,
		CategoriaID:   req.CategoriaID,
		Precio:        req.Precio,
		Nivel:         model.NivelCurso(req.Nivel),
		DuracionHoras: req.DuracionHoras,
		Imagen:        req.Imagen,
		Requisitos:    req.Requisitos,
		Activo:        true,
	}
	if req.Activo != nil {
		curso.Activo = *req.Activo
	}

	response, err := c.CursoService.Crear(curso)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, response)
}

// Update godoc
// @Summary Reemplazar un curso
// @Tags cursos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID del curso"
// @Param body body CursoRequest true "Datos del curso"
// @Success 200 {object} util.Response{data=service.CursoResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/cursos/{id} [put]
func (c *CursoController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req CursoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	curso, err := c.CursoService.ObtenerModelo(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	curso.Titulo = req.Titulo
	curso.Descripcion = req.Descripcion
	curso.InstructorID = req.InstructorID
	curso.CategoriaID = req.CategoriaID
	curso.Precio = req.Precio
	curso.Nivel = model.NivelCurso(req.Nivel)
	curso.DuracionHoras = req.DuracionHoras
	curso.Imagen = req.Imagen
	curso.Requisitos = req.Requisitos
	if req.Activo != nil {
		curso.Activo = *req.Activo
	}

	response, err := c.CursoService.Actualizar(curso)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, response)
}

// Patch godoc
// @Summary Modificar parcialmente un curso
// @Tags cursos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID del curso"
// @Param body body CursoPatchRequest true "Campos a modificar"
// @Success 200 {object} util.Response{data=service.CursoResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/cursos/{id} [patch]
func (c *CursoController) Patch(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req CursoPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	curso, err := c.CursoService.ObtenerModelo(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if req.Titulo != nil {
		curso.Titulo = *req.Titulo
	}
	if req.Descripcion != nil {
		curso.Descripcion = *req.Descripcion
	}
	if req.InstructorID != nil {
		curso.InstructorID = *req.InstructorID
	}
	if req.CategoriaID != nil {
		curso.CategoriaID = *req.CategoriaID
	}
	if req.Precio != nil {
		curso.Precio = *req.Precio
	}
	if req.Nivel != nil {
		curso.Nivel = model.NivelCurso(*req.Nivel)
	}
	if req.DuracionHoras != nil {
		curso.DuracionHoras = *req.DuracionHoras
	}
	if req.Imagen != nil {
		curso.Imagen = *req.Imagen
	}
	if req.Requisitos != nil {
		curso.Requisitos = *req.Requisitos
	}
	if req.Activo != nil {
		curso.Activo = *req.Activo
	}

	response, err := c.CursoService.Actualizar(curso)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, response)
}

// Delete godoc
// @Summary Desactivar un curso
// @Description Baja logica, el registro se conserva
// @Tags cursos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID del curso"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/cursos/{id} [delete]
func (c *CursoController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.CursoService.Desactivar(id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mensaje": "Curso desactivado"})
}

// Populares godoc
// @Summary Cursos populares
// @Description Los diez cursos con mas matriculas
// @Tags cursos
// @Produce json
// @Success 200 {object} util.Response{data=[]service.CursoResponse}
// @Router /api/cursos/populares [get]
func (c *CursoController) Populares(ctx *gin.Context) {
	cursos, err := c.CursoService.Populares()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, cursos)
}

// PorCategoria godoc
// @Summary Cursos por categoria
// @Tags cursos
// @Produce json
// @Param categoria query int true "ID de la categoria"
// @Success 200 {object} util.Response{data=[]service.CursoResponse}
// @Failure 400 {object} util.Response
// @Router /api/cursos/por_categoria [get]
func (c *CursoController) PorCategoria(ctx *gin.Context) {
	raw := ctx.Query("categoria")
	if raw == "" {
		util.BadRequest(ctx, "Parametro categoria requerido")
		return
	}

	categoriaID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Parametro categoria invalido")
		return
	}

	cursos, err := c.CursoService.PorCategoria(uint(categoriaID))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, cursos)
}

// Buscar godoc
// @Summary Buscar cursos
// @Description Combina texto libre y filtros, ordenado por popularidad
// @Tags cursos
// @Produce json
// @Param q query string false "Texto a buscar en titulo, descripcion o instructor"
// @Param categoria query int false "ID de la categoria"
// @Param nivel query string false "Nivel del curso"
// @Param precio_max query number false "Precio maximo"
// @Success 200 {object} util.Response{data=service.BuscarResultado}
// @Router /api/buscar [get]
func (c *CursoController) Buscar(ctx *gin.Context) {
	resultado, err := c.CursoService.Buscar(
		ctx.Query("q"),
		ctx.Query("categoria"),
		ctx.Query("nivel"),
		ctx.Query("precio_max"),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, resultado)
}

// SubirImagen godoc
// @Summary Subir imagen del curso
// @Tags cursos
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID del curso"
// @Param imagen formData file true "Imagen de portada"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/cursos/{id}/imagen [post]
func (c *CursoController) SubirImagen(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("imagen")
	if err != nil {
		util.BadRequest(ctx, "Archivo requerido")
		return
	}

	url, err := c.CursoService.SubirImagen(ctx.Request.Context(), id, file)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"imagen": url})
}
