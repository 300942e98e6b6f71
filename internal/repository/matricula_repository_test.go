package repository_test

import (
	"testing"

	"cursos_backend/internal/model"
	"cursos_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFindOwnedNoFiltraALosDemas(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMatriculaRepository(db)

	instructor := crearInstructor(t, db, "owned")
	categoria := crearCategoria(t, db, "Owned")
	curso := crearCurso(t, db, instructor.ID, categoria.ID, "Privado", 30, model.NivelPrincipiante)

	duena := crearUsuario(t, db, "owned_a")
	otro := crearUsuario(t, db, "owned_b")
	matricula := crearMatricula(t, db, duena.ID, curso.ID, true, nil)

	propia, err := repo.FindOwned(matricula.ID, duena.ID)
	require.NoError(t, err)
	assert.Equal(t, matricula.ID, propia.ID)
	assert.Equal(t, curso.ID, propia.Curso.ID)

	// Probing somebody else's enrollment looks exactly like a missing id.
	_, err = repo.FindOwned(matricula.ID, otro.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByEstudianteExcluyeBajas(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMatriculaRepository(db)

	instructor := crearInstructor(t, db, "listado")
	categoria := crearCategoria(t, db, "Listado")
	cursoA := crearCurso(t, db, instructor.ID, categoria.ID, "Listado A", 30, model.NivelPrincipiante)
	cursoB := crearCurso(t, db, instructor.ID, categoria.ID, "Listado B", 30, model.NivelPrincipiante)

	alumno := crearUsuario(t, db, "listado_a")
	vigente := crearMatricula(t, db, alumno.ID, cursoA.ID, true, nil)
	crearMatricula(t, db, alumno.ID, cursoB.ID, false, nil)

	matriculas, err := repo.FindByEstudiante(alumno.ID)
	require.NoError(t, err)
	require.Len(t, matriculas, 1)
	assert.Equal(t, vigente.ID, matriculas[0].ID)
}

func TestDeactivateSoloDelPropietario(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMatriculaRepository(db)

	instructor := crearInstructor(t, db, "baja")
	categoria := crearCategoria(t, db, "Baja")
	curso := crearCurso(t, db, instructor.ID, categoria.ID, "Baja", 30, model.NivelPrincipiante)

	duena := crearUsuario(t, db, "baja_a")
	otro := crearUsuario(t, db, "baja_b")
	matricula := crearMatricula(t, db, duena.ID, curso.ID, true, nil)

	err := repo.Deactivate(matricula.ID, otro.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Deactivate(matricula.ID, duena.ID))

	// A second withdrawal finds nothing active.
	err = repo.Deactivate(matricula.ID, duena.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
