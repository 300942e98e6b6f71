package model

import (
	"regexp"
	"time"

	"gorm.io/gorm"
)

// Bolivian mobile numbers: 8 digits starting with 6 or 7.
var telefonoPattern = regexp.MustCompile(`^[67]\d{7}$`)

// swagger:model Instructor
type Instructor struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User            User      `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	Biografia       string    `gorm:"size:1000" json:"biografia"`
	Especialidad    string    `gorm:"size:100" json:"especialidad"`
	ExperienciaAnos int       `gorm:"not null" json:"experiencia_anos"`
	Foto            string    `gorm:"size:255" json:"foto"`
	Telefono        string    `gorm:"size:15" json:"telefono"`
	FechaRegistro   time.Time `gorm:"autoCreateTime;<-:create" json:"fecha_registro"`
	Activo          bool      `gorm:"default:true" json:"activo"`
}

func (Instructor) TableName() string {
	return "instructores"
}

func (i *Instructor) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	if !telefonoPattern.MatchString(i.Telefono) {
		errs["telefono"] = "El telefono debe tener 8 dígitos y comenzar con 6 o 7"
	}
	if i.ExperienciaAnos < 0 || i.ExperienciaAnos > 50 {
		errs["experiencia_anos"] = "Los años de experiencia deben estar entre 0 y 50"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
