package repository_test

import (
	"fmt"
	"strings"
	"testing"

	"cursos_backend/internal/model"
	"cursos_backend/pkg/database"

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
		FirstName: "Luis",
		LastName:  "Mamani",
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
	instructor.User = *user
	return instructor
}

func crearCategoria(t *testing.T, db *gorm.DB, nombre string) *model.Categoria {
	t.Helper()
	categoria := &model.Categoria{Nombre: nombre, Activa: true}
	require.NoError(t, db.Create(categoria).Error)
	return categoria
}

func crearCurso(t *testing.T, db *gorm.DB, instructorID, categoriaID uint, titulo string, precio float64, nivel model.NivelCurso) *model.Curso {
	t.Helper()
	curso := &model.Curso{
		Titulo:        titulo,
		Descripcion:   "desc de " + titulo,
		InstructorID:  instructorID,
		CategoriaID:   categoriaID,
		Precio:        precio,
		Nivel:         nivel,
		DuracionHoras: 10,
		Activo:        true,
	}
	require.NoError(t, db.Create(curso).Error)
	return curso
}

func crearMatricula(t *testing.T, db *gorm.DB, estudianteID, cursoID uint, activa bool, calificacion *int) *model.Matricula {
	t.Helper()
	matricula := &model.Matricula{
		EstudianteID: estudianteID,
		CursoID:      cursoID,
		Calificacion: calificacion,
		Activa:       activa,
	}
	require.NoError(t, db.Create(matricula).Error)
	if !activa {
		// The creation hook only admits active rows; withdraw afterwards.
		require.NoError(t, db.Model(matricula).Update("activa", false).Error)
	}
	return matricula
}

func intPtr(n int) *int { return &n }
