package database

import (
	"cursos_backend/internal/config"
	"cursos_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection. Schema migration only runs when
// asked for, via the -migrate and -migrate-only flags.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if migrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	return db, nil
}

// Migrate creates the schema and seeds the default categories. Shared
// with the test helpers, which run it against sqlite.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Instructor{},
		&model.Categoria{},
		&model.Curso{},
		&model.Leccion{},
		&model.Matricula{},
	)
	if err != nil {
		return err
	}

	var count int64
	db.Model(&model.Categoria{}).Count(&count)
	if count == 0 {
		defaultCategorias := []model.Categoria{
			{Nombre: "Programacion", Descripcion: "Desarrollo de software y lenguajes de programacion", Icono: "code", Activa: true},
			{Nombre: "Diseno", Descripcion: "Diseno grafico y experiencia de usuario", Icono: "palette", Activa: true},
			{Nombre: "Negocios", Descripcion: "Emprendimiento, marketing y gestion", Icono: "briefcase", Activa: true},
			{Nombre: "Idiomas", Descripcion: "Aprendizaje de idiomas extranjeros", Icono: "language", Activa: true},
		}
		for _, categoria := range defaultCategorias {
			db.Create(&categoria)
		}
	}

	return nil
}
