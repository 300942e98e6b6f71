package repository

import (
	"cursos_backend/internal/model"

	"gorm.io/gorm"
)

type CategoriaRepository struct {
	DB *gorm.DB
}

func NewCategoriaRepository(db *gorm.DB) *CategoriaRepository {
	return &CategoriaRepository{DB: db}
}

func (r *CategoriaRepository) Create(categoria *model.Categoria) error {
	return r.DB.Create(categoria).Error
}

func (r *CategoriaRepository) FindActivas() ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.DB.Where("activa = ?", true).Order("nombre ASC").Find(&categorias).Error
	return categorias, err
}

func (r *CategoriaRepository) FindActivaByID(id uint) (*model.Categoria, error) {
	var categoria model.Categoria
	err := r.DB.Where("activa = ?", true).First(&categoria, id).Error
	return &categoria, err
}

func (r *CategoriaRepository) Update(categoria *model.Categoria) error {
	return r.DB.Save(categoria).Error
}

func (r *CategoriaRepository) Deactivate(id uint) error {
	return r.DB.Model(&model.Categoria{}).Where("id = ?", id).Update("activa", false).Error
}
