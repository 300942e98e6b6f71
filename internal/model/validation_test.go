package model_test

import (
	"fmt"
	"strings"
	"testing"

	"cursos_backend/internal/model"
	"cursos_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func crearUsuario(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:  username,
		FirstName: "Ana",
		LastName:  "Rojas",
		Email:     username + "@example.com",
		Password:  "x",
		Role:      model.Estudiante,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func crearInstructor(t *testing.T, db *gorm.DB, username string) *model.Instructor {
	t.Helper()
	user := crearUsuario(t, db, username)
	instructor := &model.Instructor{
		UserID:          user.ID,
		Especialidad:    "Backend",
		ExperienciaAnos: 5,
		Telefono:        "71234567",
		Activo:          true,
	}
	require.NoError(t, db.Create(instructor).Error)
	return instructor
}

func crearCurso(t *testing.T, db *gorm.DB, instructorID uint) *model.Curso {
	t.Helper()
	categoria := &model.Categoria{Nombre: "Cat " + t.Name(), Activa: true}
	require.NoError(t, db.Create(categoria).Error)

	curso := &model.Curso{
		Titulo:        "Curso de prueba",
		Descripcion:   "desc",
		InstructorID:  instructorID,
		CategoriaID:   categoria.ID,
		Precio:        20,
		Nivel:         model.NivelPrincipiante,
		DuracionHoras: 10,
		Activo:        true,
	}
	require.NoError(t, db.Create(curso).Error)
	return curso
}

func TestInstructorTelefonoInvalido(t *testing.T) {
	db := newTestDB(t)
	user := crearUsuario(t, db, "telinv")

	casos := []string{"81234567", "7123456", "712345678", "abcdefgh", ""}
	for _, telefono := range casos {
		err := db.Create(&model.Instructor{
			UserID:          user.ID,
			ExperienciaAnos: 1,
			Telefono:        telefono,
		}).Error

		var verrs model.ValidationErrors
		require.ErrorAs(t, err, &verrs, "telefono %q", telefono)
		assert.Contains(t, verrs, "telefono")
	}
}

func TestInstructorExperienciaFueraDeRango(t *testing.T) {
	db := newTestDB(t)
	user := crearUsuario(t, db, "expinv")

	err := db.Create(&model.Instructor{
		UserID:          user.ID,
		ExperienciaAnos: 51,
		Telefono:        "61234567",
	}).Error

	var verrs model.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "experiencia_anos")

	// Zero years is a valid junior instructor.
	require.NoError(t, db.Create(&model.Instructor{
		UserID:          user.ID,
		ExperienciaAnos: 0,
		Telefono:        "61234567",
	}).Error)
}

func TestCursoPrecioMinimo(t *testing.T) {
	db := newTestDB(t)
	instructor := crearInstructor(t, db, "precio")
	categoria := &model.Categoria{Nombre: "Precio", Activa: true}
	require.NoError(t, db.Create(categoria).Error)

	curso := &model.Curso{
		Titulo:        "Barato",
		InstructorID:  instructor.ID,
		CategoriaID:   categoria.ID,
		Precio:        9.99,
		Nivel:         model.NivelPrincipiante,
		DuracionHoras: 5,
	}
	err := db.Create(curso).Error

	var verrs model.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "El precio minimo del curso debe ser 10 Bs.", verrs["precio"])

	// Refusal is atomic: nothing was written.
	var count int64
	db.Model(&model.Curso{}).Count(&count)
	assert.Zero(t, count)

	curso.Precio = model.PrecioMinimo
	require.NoError(t, db.Create(curso).Error)
}

func TestCursoNivelInvalido(t *testing.T) {
	db := newTestDB(t)
	instructor := crearInstructor(t, db, "nivel")
	categoria := &model.Categoria{Nombre: "Nivel", Activa: true}
	require.NoError(t, db.Create(categoria).Error)

	err := db.Create(&model.Curso{
		Titulo:        "Nivel raro",
		InstructorID:  instructor.ID,
		CategoriaID:   categoria.ID,
		Precio:        20,
		Nivel:         "experto",
		DuracionHoras: 5,
	}).Error

	var verrs model.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "nivel")
}

func TestLeccionVideoDuracionMinima(t *testing.T) {
	db := newTestDB(t)
	instructor := crearInstructor(t, db, "video")
	curso := crearCurso(t, db, instructor.ID)

	err := db.Create(&model.Leccion{
		Titulo:          "Video corto",
		CursoID:         curso.ID,
		Tipo:            model.TipoVideo,
		DuracionMinutos: 0,
		Orden:           1,
	}).Error

	var verrs model.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Los videos deben tener al menos 1 minuto de duracion", verrs["duracion_minutos"])

	// The rule only binds videos: a text lesson may have no duration.
	require.NoError(t, db.Create(&model.Leccion{
		Titulo:  "Lectura",
		CursoID: curso.ID,
		Tipo:    model.TipoTexto,
		Orden:   1,
	}).Error)
}

func TestMatriculaProgresoYCalificacion(t *testing.T) {
	db := newTestDB(t)
	instructor := crearInstructor(t, db, "rangos")
	curso := crearCurso(t, db, instructor.ID)
	estudiante := crearUsuario(t, db, "alumno1")

	mala := model.Matricula{EstudianteID: estudiante.ID, CursoID: curso.ID, Progreso: 101, Activa: true}
	var verrs model.ValidationErrors
	require.ErrorAs(t, db.Create(&mala).Error, &verrs)
	assert.Contains(t, verrs, "progreso")

	seis := 6
	mala = model.Matricula{EstudianteID: estudiante.ID, CursoID: curso.ID, Calificacion: &seis, Activa: true}
	require.ErrorAs(t, db.Create(&mala).Error, &verrs)
	assert.Contains(t, verrs, "calificacion")

	cinco := 5
	buena := model.Matricula{EstudianteID: estudiante.ID, CursoID: curso.ID, Progreso: 100, Calificacion: &cinco, Activa: true}
	require.NoError(t, db.Create(&buena).Error)
}

func TestMatriculaDuplicadaRechazada(t *testing.T) {
	db := newTestDB(t)
	instructor := crearInstructor(t, db, "dup")
	curso := crearCurso(t, db, instructor.ID)
	estudiante := crearUsuario(t, db, "alumno2")

	primera := model.Matricula{EstudianteID: estudiante.ID, CursoID: curso.ID, Activa: true}
	require.NoError(t, db.Create(&primera).Error)

	segunda := model.Matricula{EstudianteID: estudiante.ID, CursoID: curso.ID, Activa: true}
	var verrs model.ValidationErrors
	require.ErrorAs(t, db.Create(&segunda).Error, &verrs)
	assert.Equal(t, "Ya estas matriculado en este curso", verrs["curso"])
}

func TestMatriculaNuevaTrasBaja(t *testing.T) {
	db := newTestDB(t)
	instructor := crearInstructor(t, db, "rematricula")
	curso := crearCurso(t, db, instructor.ID)
	estudiante := crearUsuario(t, db, "alumno3")

	primera := model.Matricula{EstudianteID: estudiante.ID, CursoID: curso.ID, Activa: true}
	require.NoError(t, db.Create(&primera).Error)
	require.NoError(t, db.Model(&primera).Update("activa", false).Error)

	// Withdrawal frees the slot for a fresh enrollment.
	segunda := model.Matricula{EstudianteID: estudiante.ID, CursoID: curso.ID, Activa: true}
	require.NoError(t, db.Create(&segunda).Error)
	assert.NotEqual(t, primera.ID, segunda.ID)
}

func TestValidationErrorsMensaje(t *testing.T) {
	errs := model.ValidationErrors{"b": "dos", "a": "uno"}
	assert.Equal(t, "a: uno; b: dos", errs.Error())
}
