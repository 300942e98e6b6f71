package model

import (
	"gorm.io/gorm"
)

type TipoLeccion string

const (
	TipoVideo   TipoLeccion = "video"
	TipoTexto   TipoLeccion = "texto"
	TipoQuiz    TipoLeccion = "quiz"
	TipoArchivo TipoLeccion = "archivo"
)

// swagger:model Leccion
type Leccion struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Titulo          string      `gorm:"size:200;not null" json:"titulo"`
	CursoID         uint        `gorm:"not null;uniqueIndex:idx_leccion_curso_orden" json:"curso_id"`
	Tipo            TipoLeccion `gorm:"size:20;not null" json:"tipo"`
	Contenido       string      `gorm:"type:text" json:"contenido"`
	VideoURL        string      `gorm:"size:255" json:"video_url"`
	Archivo         string      `gorm:"size:255" json:"archivo"`
	DuracionMinutos int         `gorm:"default:0" json:"duracion_minutos"`
	Orden           int         `gorm:"default:1;uniqueIndex:idx_leccion_curso_orden" json:"orden"`
	Gratuita        bool        `gorm:"default:false" json:"gratuita"`
	Activa          bool        `gorm:"default:true" json:"activa"`
}

func (Leccion) TableName() string {
	return "lecciones"
}

func (l *Leccion) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	switch l.Tipo {
	case TipoVideo, TipoTexto, TipoQuiz, TipoArchivo:
	default:
		errs["tipo"] = "Tipo invalido, debe ser video, texto, quiz o archivo"
	}
	if l.Tipo == TipoVideo && l.DuracionMinutos < 1 {
		errs["duracion_minutos"] = "Los videos deben tener al menos 1 minuto de duracion"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
