package model

// swagger:model Categoria
type Categoria struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre      string `gorm:"size:100;uniqueIndex;not null" json:"nombre"`
	Descripcion string `gorm:"size:500" json:"descripcion"`
	Icono       string `gorm:"size:50" json:"icono"`
	Activa      bool   `gorm:"default:true" json:"activa"`
}

func (Categoria) TableName() string {
	return "categorias"
}
