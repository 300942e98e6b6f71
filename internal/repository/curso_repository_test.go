package repository_test

import (
	"testing"

	"cursos_backend/internal/model"
	"cursos_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsSoloCuentaMatriculasActivas(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCursoRepository(db)

	instructor := crearInstructor(t, db, "stats")
	categoria := crearCategoria(t, db, "Stats")
	curso := crearCurso(t, db, instructor.ID, categoria.ID, "Con bajas", 30, model.NivelPrincipiante)

	a := crearUsuario(t, db, "stats_a")
	b := crearUsuario(t, db, "stats_b")
	c := crearUsuario(t, db, "stats_c")

	crearMatricula(t, db, a.ID, curso.ID, true, intPtr(4))
	crearMatricula(t, db, b.ID, curso.ID, true, nil)
	crearMatricula(t, db, c.ID, curso.ID, false, intPtr(1))

	stats, err := repo.Stats([]uint{curso.ID})
	require.NoError(t, err)

	// The withdrawn student counts for nothing, and the unrated one is
	// skipped by the average.
	assert.EqualValues(t, 2, stats[curso.ID].NumeroEstudiantes)
	assert.InDelta(t, 4.0, stats[curso.ID].CalificacionPromedio, 0.001)
}

func TestStatsCursoSinCalificaciones(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCursoRepository(db)

	instructor := crearInstructor(t, db, "sincal")
	categoria := crearCategoria(t, db, "SinCal")
	curso := crearCurso(t, db, instructor.ID, categoria.ID, "Sin notas", 30, model.NivelPrincipiante)

	a := crearUsuario(t, db, "sincal_a")
	crearMatricula(t, db, a.ID, curso.ID, true, nil)

	stats, err := repo.Stats([]uint{curso.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats[curso.ID].NumeroEstudiantes)
	assert.Zero(t, stats[curso.ID].CalificacionPromedio)

	// A course nobody enrolled in simply has no entry; callers read the
	// zero value.
	vacio, err := repo.Stats([]uint{9999})
	require.NoError(t, err)
	assert.Zero(t, vacio[9999].NumeroEstudiantes)
}

func TestPopularesOrdenaPorMatriculas(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCursoRepository(db)

	instructor := crearInstructor(t, db, "pop")
	categoria := crearCategoria(t, db, "Pop")

	poco := crearCurso(t, db, instructor.ID, categoria.ID, "Poco popular", 30, model.NivelPrincipiante)
	medio := crearCurso(t, db, instructor.ID, categoria.ID, "Medio popular", 30, model.NivelIntermedio)
	mucho := crearCurso(t, db, instructor.ID, categoria.ID, "Muy popular", 30, model.NivelAvanzado)

	for i, curso := range []*model.Curso{poco, medio, mucho} {
		for j := 0; j <= i*2; j++ {
			alumno := crearUsuario(t, db, curso.Titulo[:4]+string(rune('a'+j)))
			crearMatricula(t, db, alumno.ID, curso.ID, true, nil)
		}
	}

	cursos, err := repo.Populares(10)
	require.NoError(t, err)
	require.Len(t, cursos, 3)
	assert.Equal(t, mucho.ID, cursos[0].ID)
	assert.Equal(t, medio.ID, cursos[1].ID)
	assert.Equal(t, poco.ID, cursos[2].ID)

	limitados, err := repo.Populares(2)
	require.NoError(t, err)
	assert.Len(t, limitados, 2)
}

func TestBuscarPorTextoEInstructor(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCursoRepository(db)

	instructor := crearInstructor(t, db, "buscar")
	categoria := crearCategoria(t, db, "Buscar")

	crearCurso(t, db, instructor.ID, categoria.ID, "Fotografia nocturna", 30, model.NivelPrincipiante)
	crearCurso(t, db, instructor.ID, categoria.ID, "Cocina basica", 30, model.NivelPrincipiante)

	porTitulo, err := repo.Buscar("FOTOGRAFIA", 0, "", nil)
	require.NoError(t, err)
	require.Len(t, porTitulo, 1)
	assert.Equal(t, "Fotografia nocturna", porTitulo[0].Titulo)

	// The instructor's last name also matches, case-insensitively.
	porApellido, err := repo.Buscar("mamani", 0, "", nil)
	require.NoError(t, err)
	assert.Len(t, porApellido, 2)

	nada, err := repo.Buscar("inexistente", 0, "", nil)
	require.NoError(t, err)
	assert.Empty(t, nada)
}

func TestBuscarCombinaFiltros(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCursoRepository(db)

	instructor := crearInstructor(t, db, "filtros")
	catA := crearCategoria(t, db, "FiltroA")
	catB := crearCategoria(t, db, "FiltroB")

	caro := crearCurso(t, db, instructor.ID, catA.ID, "Go avanzado", 100, model.NivelAvanzado)
	barato := crearCurso(t, db, instructor.ID, catA.ID, "Go basico", 20, model.NivelPrincipiante)
	crearCurso(t, db, instructor.ID, catB.ID, "Otro tema", 20, model.NivelPrincipiante)

	precioMax := 50.0
	cursos, err := repo.Buscar("go", catA.ID, string(model.NivelPrincipiante), &precioMax)
	require.NoError(t, err)
	require.Len(t, cursos, 1)
	assert.Equal(t, barato.ID, cursos[0].ID)

	soloCategoria, err := repo.Buscar("", catA.ID, "", nil)
	require.NoError(t, err)
	assert.Len(t, soloCategoria, 2)

	soloNivel, err := repo.Buscar("", 0, string(model.NivelAvanzado), nil)
	require.NoError(t, err)
	require.Len(t, soloNivel, 1)
	assert.Equal(t, caro.ID, soloNivel[0].ID)
}

func TestBuscarTrataComodinesComoTexto(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCursoRepository(db)

	instructor := crearInstructor(t, db, "comodines")
	categoria := crearCategoria(t, db, "Comodines")

	conSigno := crearCurso(t, db, instructor.ID, categoria.ID, "Descuento 100%", 30, model.NivelPrincipiante)
	crearCurso(t, db, instructor.ID, categoria.ID, "Descuento 1000", 30, model.NivelPrincipiante)

	// "%" and "_" in the query are literal characters, not wildcards.
	cursos, err := repo.Buscar("100%", 0, "", nil)
	require.NoError(t, err)
	require.Len(t, cursos, 1)
	assert.Equal(t, conSigno.ID, cursos[0].ID)

	nada, err := repo.Buscar("100_", 0, "", nil)
	require.NoError(t, err)
	assert.Empty(t, nada)
}

func TestBuscarExcluyeInactivos(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCursoRepository(db)

	instructor := crearInstructor(t, db, "inactivos")
	categoria := crearCategoria(t, db, "Inactivos")

	activo := crearCurso(t, db, instructor.ID, categoria.ID, "Visible", 30, model.NivelPrincipiante)
	oculto := crearCurso(t, db, instructor.ID, categoria.ID, "Oculto", 30, model.NivelPrincipiante)
	require.NoError(t, repo.Deactivate(oculto.ID))

	cursos, err := repo.Buscar("", 0, "", nil)
	require.NoError(t, err)
	require.Len(t, cursos, 1)
	assert.Equal(t, activo.ID, cursos[0].ID)

	listado, err := repo.FindActivos()
	require.NoError(t, err)
	assert.Len(t, listado, 1)

	_, err = repo.FindActivoByID(oculto.ID)
	assert.Error(t, err)
}

func TestFindActivoByIDPrecargaLecciones(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCursoRepository(db)

	instructor := crearInstructor(t, db, "lecciones")
	categoria := crearCategoria(t, db, "Lecciones")
	curso := crearCurso(t, db, instructor.ID, categoria.ID, "Con lecciones", 30, model.NivelPrincipiante)

	require.NoError(t, db.Create(&model.Leccion{Titulo: "Segunda", CursoID: curso.ID, Tipo: model.TipoTexto, Orden: 2}).Error)
	require.NoError(t, db.Create(&model.Leccion{Titulo: "Primera", CursoID: curso.ID, Tipo: model.TipoTexto, Orden: 1}).Error)

	cargado, err := repo.FindActivoByID(curso.ID)
	require.NoError(t, err)
	require.Len(t, cargado.Lecciones, 2)
	assert.Equal(t, "Primera", cargado.Lecciones[0].Titulo)
	assert.Equal(t, "Segunda", cargado.Lecciones[1].Titulo)
	assert.Equal(t, instructor.User.Username, cargado.Instructor.User.Username)
}
