package util

import (
	"cursos_backend/internal/model"
	"cursos_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Response is the common envelope for every JSON reply.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Recurso no encontrado")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// ValidationFailed renders a business-rule violation as a 400 carrying the
// field -> message map.
func ValidationFailed(c *gin.Context, fields model.ValidationErrors) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: "datos invalidos",
		Data:    gin.H{"errores": fields},
	})
}

// HandleError maps service errors onto the HTTP taxonomy: validation
// failures become 400 with the field map, unknown ids become 404,
// everything else is logged and hidden behind a 500.
func HandleError(c *gin.Context, err error) {
	var verrs model.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		ValidationFailed(c, verrs)
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrNotFound):
		NotFound(c)
	default:
		LogInternalError(c, err)
	}
}
