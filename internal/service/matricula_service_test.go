package service_test

import (
	"testing"
	"time"

	"cursos_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMatricularYConsultar(t *testing.T) {
	f := newFixtures(t)
	svc := newMatriculaService(f)

	matricula, err := svc.Matricular(f.estudiante.ID, f.curso.ID)
	require.NoError(t, err)
	assert.Zero(t, matricula.Progreso)
	assert.False(t, matricula.Completado)
	assert.True(t, matricula.Activa)
	assert.Equal(t, f.curso.ID, matricula.Curso.ID)
	assert.EqualValues(t, 1, matricula.Curso.NumeroEstudiantes)

	listado, err := svc.Listar(f.estudiante.ID)
	require.NoError(t, err)
	assert.Len(t, listado, 1)
}

func TestMatricularCursoInactivo(t *testing.T) {
	f := newFixtures(t)
	svc := newMatriculaService(f)
	require.NoError(t, f.db.Model(f.curso).Update("activo", false).Error)

	_, err := svc.Matricular(f.estudiante.ID, f.curso.ID)

	var verrs model.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "El curso no existe o esta inactivo", verrs["curso"])
}

func TestActualizarProgresoCompletaEnCien(t *testing.T) {
	f := newFixtures(t)
	svc := newMatriculaService(f)

	matricula, err := svc.Matricular(f.estudiante.ID, f.curso.ID)
	require.NoError(t, err)

	avanzada, err := svc.ActualizarProgreso(matricula.ID, f.estudiante.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, avanzada.Progreso)
	assert.False(t, avanzada.Completado)
	assert.Nil(t, avanzada.FechaCompletado)

	completa, err := svc.ActualizarProgreso(matricula.ID, f.estudiante.ID, 100)
	require.NoError(t, err)
	assert.True(t, completa.Completado)
	require.NotNil(t, completa.FechaCompletado)
	primera := *completa.FechaCompletado

	// Submitting 100 again re-stamps the completion time.
	time.Sleep(10 * time.Millisecond)
	otraVez, err := svc.ActualizarProgreso(matricula.ID, f.estudiante.ID, 100)
	require.NoError(t, err)
	require.NotNil(t, otraVez.FechaCompletado)
	assert.True(t, otraVez.FechaCompletado.After(primera))

	// Dropping below 100 keeps the completion flag as it was recorded.
	retroceso, err := svc.ActualizarProgreso(matricula.ID, f.estudiante.ID, 80)
	require.NoError(t, err)
	assert.Equal(t, 80, retroceso.Progreso)
	assert.True(t, retroceso.Completado)
}

func TestActualizarProgresoAjeno(t *testing.T) {
	f := newFixtures(t)
	svc := newMatriculaService(f)

	matricula, err := svc.Matricular(f.estudiante.ID, f.curso.ID)
	require.NoError(t, err)

	intruso := &model.User{
		Username: "intruso", FirstName: "Max", LastName: "Paz",
		Email: "intruso@example.com", Password: "x", Role: model.Estudiante,
	}
	require.NoError(t, f.db.Create(intruso).Error)

	_, err = svc.ActualizarProgreso(matricula.ID, intruso.ID, 10)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCalificarNoTocaProgreso(t *testing.T) {
	f := newFixtures(t)
	svc := newMatriculaService(f)

	matricula, err := svc.Matricular(f.estudiante.ID, f.curso.ID)
	require.NoError(t, err)

	_, err = svc.ActualizarProgreso(matricula.ID, f.estudiante.ID, 40)
	require.NoError(t, err)

	cuatro := 4
	comentario := "Muy buen curso"
	calificada, err := svc.Calificar(matricula.ID, f.estudiante.ID, &cuatro, &comentario)
	require.NoError(t, err)
	require.NotNil(t, calificada.Calificacion)
	assert.Equal(t, 4, *calificada.Calificacion)
	assert.Equal(t, "Muy buen curso", calificada.Comentario)
	assert.Equal(t, 40, calificada.Progreso)

	// The rating feeds straight into the course average.
	assert.InDelta(t, 4.0, calificada.Curso.CalificacionPromedio, 0.001)
}

func TestCalificarFueraDeRango(t *testing.T) {
	f := newFixtures(t)
	svc := newMatriculaService(f)

	matricula, err := svc.Matricular(f.estudiante.ID, f.curso.ID)
	require.NoError(t, err)

	cero := 0
	_, err = svc.Calificar(matricula.ID, f.estudiante.ID, &cero, nil)

	var verrs model.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "calificacion")
}

func TestBajaYRematricula(t *testing.T) {
	f := newFixtures(t)
	svc := newMatriculaService(f)

	primera, err := svc.Matricular(f.estudiante.ID, f.curso.ID)
	require.NoError(t, err)

	_, err = svc.Matricular(f.estudiante.ID, f.curso.ID)
	var verrs model.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	require.NoError(t, svc.Baja(primera.ID, f.estudiante.ID))

	_, err = svc.Obtener(primera.ID, f.estudiante.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	segunda, err := svc.Matricular(f.estudiante.ID, f.curso.ID)
	require.NoError(t, err)
	assert.NotEqual(t, primera.ID, segunda.ID)
	assert.Zero(t, segunda.Progreso)
}
