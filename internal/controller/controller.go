package controller

import (
	"cursos_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads a numeric path parameter. On failure it writes the 400
// itself and the handler just returns.
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID invalido")
		return 0, false
	}
	return uint(id), true
}
