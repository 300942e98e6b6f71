package repository

import (
	"cursos_backend/internal/model"

	"gorm.io/gorm"
)

type LeccionRepository struct {
	DB *gorm.DB
}

func NewLeccionRepository(db *gorm.DB) *LeccionRepository {
	return &LeccionRepository{DB: db}
}

func (r *LeccionRepository) Create(leccion *model.Leccion) error {
	return r.DB.Create(leccion).Error
}

func (r *LeccionRepository) FindActivas() ([]model.Leccion, error) {
	var lecciones []model.Leccion
	err := r.DB.Where("activa = ?", true).Order("curso_id ASC, orden ASC").Find(&lecciones).Error
	return lecciones, err
}

func (r *LeccionRepository) FindActivaByID(id uint) (*model.Leccion, error) {
	var leccion model.Leccion
	err := r.DB.Where("activa = ?", true).First(&leccion, id).Error
	return &leccion, err
}

func (r *LeccionRepository) Update(leccion *model.Leccion) error {
	return r.DB.Save(leccion).Error
}

func (r *LeccionRepository) Deactivate(id uint) error {
	return r.DB.Model(&model.Leccion{}).Where("id = ?", id).Update("activa", false).Error
}
