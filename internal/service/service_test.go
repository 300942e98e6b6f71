package service_test

import (
	"fmt"
	"strings"
	"testing"

	"cursos_backend/internal/model"
	"cursos_backend/internal/repository"
	"cursos_backend/internal/service"
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

type fixtures struct {
	db         *gorm.DB
	instructor *model.Instructor
	categoria  *model.Categoria
	curso      *model.Curso
	estudiante *model.User
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()
	db := newTestDB(t)

	profesor := &model.User{
		Username:  "profesor",
		FirstName: "Carla",
		LastName:  "Flores",
		Email:     "profesor@example.com",
		Password:  "x",
		Role:      model.Estudiante,
	}
	require.NoError(t, db.Create(profesor).Error)

	instructor := &model.Instructor{
		UserID:          profesor.ID,
		Especialidad:    "Backend",
		ExperienciaAnos: 5,
		Telefono:        "71234567",
		Activo:          true,
	}
	require.NoError(t, db.Create(instructor).Error)

	categoria := &model.Categoria{Nombre: "Pruebas", Activa: true}
	require.NoError(t, db.Create(categoria).Error)

	curso := &model.Curso{
		Titulo:        "Curso base",
		Descripcion:   "desc",
		InstructorID:  instructor.ID,
		CategoriaID:   categoria.ID,
		Precio:        25,
		Nivel:         model.NivelPrincipiante,
		DuracionHoras: 8,
		Activo:        true,
	}
	require.NoError(t, db.Create(curso).Error)

	estudiante := &model.User{
		Username:  "estudiante",
		FirstName: "Pedro",
		LastName:  "Vargas",
		Email:     "estudiante@example.com",
		Password:  "x",
		Role:      model.Estudiante,
	}
	require.NoError(t, db.Create(estudiante).Error)

	return &fixtures{
		db:         db,
		instructor: instructor,
		categoria:  categoria,
		curso:      curso,
		estudiante: estudiante,
	}
}

func newMatriculaService(f *fixtures) *service.MatriculaService {
	return service.NewMatriculaService(
		repository.NewMatriculaRepository(f.db),
		repository.NewCursoRepository(f.db),
	)
}

func newCursoService(f *fixtures) *service.CursoService {
	return service.NewCursoService(
		repository.NewCursoRepository(f.db),
		repository.NewInstructorRepository(f.db),
		repository.NewCategoriaRepository(f.db),
		nil,
	)
}
