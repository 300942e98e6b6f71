// Carga datos de demostracion para desarrollo local.
//
// Uso: go run scripts/seed_demo.go

package main

import (
	"cursos_backend/internal/config"
	"cursos_backend/internal/model"
	"cursos_backend/internal/util"
	"cursos_backend/pkg/database"
	"cursos_backend/pkg/logger"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("No se pudo leer la configuracion: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("No se pudo interpretar la configuracion: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}

	var count int64
	db.Model(&model.Curso{}).Count(&count)
	if count > 0 {
		log.Println("Ya existen cursos, no se cargan datos de demostracion")
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	profesor := model.User{
		Username:  "mquispe",
		FirstName: "Maria",
		LastName:  "Quispe",
		Email:     "mquispe@example.com",
		Password:  string(hash),
		Role:      model.Estudiante,
	}
	if err := db.Create(&profesor).Error; err != nil {
		log.Fatalf("No se pudo crear el usuario demo: %v", err)
	}

	instructor := model.Instructor{
		UserID:          profesor.ID,
		Biografia:       "Ingeniera de software con enfoque en backend",
		Especialidad:    "Desarrollo web",
		ExperienciaAnos: 8,
		Telefono:        "71234567",
		Activo:          true,
	}
	if err := db.Create(&instructor).Error; err != nil {
		log.Fatalf("No se pudo crear el instructor demo: %v", err)
	}

	var categoria model.Categoria
	if err := db.Where("activa = ?", true).First(&categoria).Error; err != nil {
		log.Fatalf("No hay categorias activas: %v", err)
	}

	curso := model.Curso{
		Titulo:        "Introduccion a Go",
		Descripcion:   "Curso practico de Go desde cero",
		InstructorID:  instructor.ID,
		CategoriaID:   categoria.ID,
		Precio:        50,
		Nivel:         model.NivelPrincipiante,
		DuracionHoras: 12,
		Activo:        true,
	}
	if err := db.Create(&curso).Error; err != nil {
		log.Fatalf("No se pudo crear el curso demo: %v", err)
	}

	lecciones := []model.Leccion{
		{Titulo: "Instalacion y entorno", CursoID: curso.ID, Tipo: model.TipoTexto, Orden: 1, Gratuita: true, Activa: true},
		{Titulo: "Sintaxis basica", CursoID: curso.ID, Tipo: model.TipoVideo, DuracionMinutos: 15, Orden: 2, Activa: true},
		{Titulo: "Evaluacion inicial", CursoID: curso.ID, Tipo: model.TipoQuiz, Orden: 3, Activa: true},
	}
	for i := range lecciones {
		if err := db.Create(&lecciones[i]).Error; err != nil {
			log.Fatalf("No se pudo crear la leccion demo: %v", err)
		}
	}

	log.Printf("Datos de demostracion cargados (%s)", time.Now().Format(util.DateFormat))
}
