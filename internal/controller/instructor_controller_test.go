package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"cursos_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearInstructorExigeRolAdmin(t *testing.T) {
	env := newTestEnv(t)

	payload := gin.H{
		"user_id":          env.estudiante.ID,
		"especialidad":     "Bases de datos",
		"experiencia_anos": 3,
		"telefono":         "61234567",
	}

	prohibido := env.request(t, http.MethodPost, "/api/instructores", env.token(t, env.estudiante), payload)
	assert.Equal(t, http.StatusForbidden, prohibido.Code)

	permitido := env.request(t, http.MethodPost, "/api/instructores", env.token(t, env.admin), payload)
	require.Equal(t, http.StatusCreated, permitido.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.Instructor{}).Where("user_id = ?", env.estudiante.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEliminarInstructorExigeRolAdmin(t *testing.T) {
	env := newTestEnv(t)
	ruta := fmt.Sprintf("/api/instructores/%d", env.instructor.ID)

	prohibido := env.request(t, http.MethodDelete, ruta, env.token(t, env.estudiante), nil)
	assert.Equal(t, http.StatusForbidden, prohibido.Code)

	var intacto model.Instructor
	require.NoError(t, env.db.First(&intacto, env.instructor.ID).Error)
	assert.True(t, intacto.Activo)

	permitido := env.request(t, http.MethodDelete, ruta, env.token(t, env.admin), nil)
	require.Equal(t, http.StatusOK, permitido.Code)

	var dado model.Instructor
	require.NoError(t, env.db.First(&dado, env.instructor.ID).Error)
	assert.False(t, dado.Activo)
}
