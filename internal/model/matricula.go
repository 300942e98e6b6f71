package model

import (
	"time"

	"gorm.io/gorm"
)

// Matricula links a student to a course and carries the progress,
// completion and rating state of that relationship. The activa flag marks
// withdrawal: inactive rows stay in storage but drop out of every listing.
//
// swagger:model Matricula
type Matricula struct {
	ID              uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	EstudianteID    uint       `gorm:"not null;index:idx_matricula_est_curso" json:"estudiante_id"`
	Estudiante      User       `gorm:"constraint:OnDelete:CASCADE" json:"estudiante"`
	CursoID         uint       `gorm:"not null;index:idx_matricula_est_curso" json:"curso_id"`
	Curso           Curso      `gorm:"constraint:OnDelete:CASCADE" json:"curso"`
	FechaMatricula  time.Time  `gorm:"autoCreateTime;<-:create" json:"fecha_matricula"`
	Progreso        int        `gorm:"default:0" json:"progreso"`
	Completado      bool       `gorm:"default:false" json:"completado"`
	FechaCompletado *time.Time `json:"fecha_completado"`
	Calificacion    *int       `json:"calificacion"`
	Comentario      string     `gorm:"size:500" json:"comentario"`
	Activa          bool       `gorm:"default:true" json:"activa"`
}

func (Matricula) TableName() string {
	return "matriculas"
}

func (m *Matricula) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	if m.Progreso < 0 || m.Progreso > 100 {
		errs["progreso"] = "El progreso debe estar entre 0 y 100"
	}
	if m.Calificacion != nil && (*m.Calificacion < 1 || *m.Calificacion > 5) {
		errs["calificacion"] = "La calificacion debe estar entre 1 y 5"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BeforeCreate rejects a second concurrent active enrollment for the same
// (student, course) pair. Only new rows are checked; updating an existing
// enrollment must not trip over itself.
func (m *Matricula) BeforeCreate(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Matricula{}).
		Where("estudiante_id = ? AND curso_id = ? AND activa = ?", m.EstudianteID, m.CursoID, true).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ValidationErrors{"curso": "Ya estas matriculado en este curso"}
	}
	return nil
}
