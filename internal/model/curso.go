package model

import (
	"time"

	"gorm.io/gorm"
)

type NivelCurso string

const (
	NivelPrincipiante NivelCurso = "principiante"
	NivelIntermedio   NivelCurso = "intermedio"
	NivelAvanzado     NivelCurso = "avanzado"
)

// PrecioMinimo is the floor price for any course, in bolivianos.
const PrecioMinimo = 10.00

// swagger:model Curso
type Curso struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Titulo             string     `gorm:"size:200;not null" json:"titulo"`
	Descripcion        string     `gorm:"size:2000" json:"descripcion"`
	InstructorID       uint       `gorm:"not null;index" json:"instructor_id"`
	Instructor         Instructor `gorm:"constraint:OnDelete:CASCADE" json:"instructor"`
	CategoriaID        uint       `gorm:"not null;index" json:"categoria_id"`
	Categoria          Categoria  `gorm:"constraint:OnDelete:CASCADE" json:"categoria"`
	Precio             float64    `gorm:"type:decimal(8,2);not null" json:"precio"`
	Nivel              NivelCurso `gorm:"size:20;not null" json:"nivel"`
	DuracionHoras      int        `gorm:"not null" json:"duracion_horas"`
	Imagen             string     `gorm:"size:255" json:"imagen"`
	FechaCreacion      time.Time  `gorm:"autoCreateTime;<-:create" json:"fecha_creacion"`
	FechaActualizacion time.Time  `gorm:"autoUpdateTime" json:"fecha_actualizacion"`
	Activo             bool       `gorm:"default:true" json:"activo"`
	Requisitos         string     `gorm:"size:1000" json:"requisitos"`
	Lecciones          []Leccion  `gorm:"foreignKey:CursoID" json:"-"`
}

func (Curso) TableName() string {
	return "cursos"
}

func (c *Curso) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	if c.Precio < PrecioMinimo {
		errs["precio"] = "El precio minimo del curso debe ser 10 Bs."
	}
	switch c.Nivel {
	case NivelPrincipiante, NivelIntermedio, NivelAvanzado:
	default:
		errs["nivel"] = "Nivel invalido, debe ser principiante, intermedio o avanzado"
	}
	if c.DuracionHoras < 1 || c.DuracionHoras > 500 {
		errs["duracion_horas"] = "La duracion debe estar entre 1 y 500 horas"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
