package controller

import (
	"cursos_backend/internal/model"
	"cursos_backend/internal/service"
	"cursos_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoriaController struct {
	CategoriaService *service.CategoriaService
}

func NewCategoriaController(categoriaService *service.CategoriaService) *CategoriaController {
	return &CategoriaController{CategoriaService: categoriaService}
}

// swagger:model CategoriaRequest
type CategoriaRequest struct {
	Nombre      string `json:"nombre" binding:"required,max=100"`
	Descripcion string `json:"descripcion"`
	Icono       string `json:"icono"`
	Activa      *bool  `json:"activa"`
}

// swagger:model CategoriaPatchRequest
type CategoriaPatchRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Icono       *string `json:"icono"`
	Activa      *bool   `json:"activa"`
}

// List godoc
// @Summary Listar categorias
// @Description Devuelve las categorias activas ordenadas por nombre
// @Tags categorias
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Categoria}
// @Router /api/categorias [get]
func (c *CategoriaController) List(ctx *gin.Context) {
	categorias, err := c.CategoriaService.Listar()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, categorias)
}

// Get godoc
// @Summary Obtener una categoria
// @Tags categorias
// @Produce json
// @Param id path int true "ID de la categoria"
// @Success 200 {object} util.Response{data=model.Categoria}
// @Failure 404 {object} util.Response
// @Router /api/categorias/{id} [get]
func (c *CategoriaController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	categoria, err := c.CategoriaService.Obtener(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, categoria)
}

// Create godoc
// @Summary Crear una categoria
// @Tags categorias
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CategoriaRequest true "Datos de la categoria"
// @Success 201 {object} util.Response{data=model.Categoria}
// @Failure 400 {object} util.Response
// @Router /api/categorias [post]
func (c *CategoriaController) Create(ctx *gin.Context) {
	var req CategoriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	categoria := &model.Categoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Icono:       req.Icono,
		Activa:      true,
	}
	if req.Activa != nil {
		categoria.Activa = *req.Activa
	}

	if err := c.CategoriaService.Crear(categoria); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, categoria)
}

// Update godoc
// @Summary Reemplazar una categoria
// @Tags categorias
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la categoria"
// @Param body body CategoriaRequest true "Datos de la categoria"
// @Success 200 {object} util.Response{data=model.Categoria}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/categorias/{id} [put]
func (c *CategoriaController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req CategoriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	categoria, err := c.CategoriaService.Obtener(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	categoria.Nombre = req.Nombre
	categoria.Descripcion = req.Descripcion
	categoria.Icono = req.Icono
	if req.Activa != nil {
		categoria.Activa = *req.Activa
	}

	if err := c.CategoriaService.Actualizar(categoria); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, categoria)
}

// Patch godoc
// @Summary Modificar parcialmente una categoria
// @Tags categorias
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la categoria"
// @Param body body CategoriaPatchRequest true "Campos a modificar"
// @Success 200 {object} util.Response{data=model.Categoria}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/categorias/{id} [patch]
func (c *CategoriaController) Patch(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req CategoriaPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	categoria, err := c.CategoriaService.Obtener(id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if req.Nombre != nil {
		categoria.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		categoria.Descripcion = *req.Descripcion
	}
	if req.Icono != nil {
		categoria.Icono = *req.Icono
	}
	if req.Activa != nil {
		categoria.Activa = *req.Activa
	}

	if err := c.CategoriaService.Actualizar(categoria); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, categoria)
}

// Delete godoc
// @Summary Desactivar una categoria
// @Description Baja logica, el registro se conserva
// @Tags categorias
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID de la categoria"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/categorias/{id} [delete]
func (c *CategoriaController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.CategoriaService.Desactivar(id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mensaje": "Categoria desactivada"})
}
