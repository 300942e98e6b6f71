package service

import (
	"cursos_backend/internal/model"
	"cursos_backend/internal/repository"
)

type CategoriaService struct {
	CategoriaRepo *repository.CategoriaRepository
}

func NewCategoriaService(categoriaRepo *repository.CategoriaRepository) *CategoriaService {
	return &CategoriaService{CategoriaRepo: categoriaRepo}
}

func (s *CategoriaService) Listar() ([]model.Categoria, error) {
	return s.CategoriaRepo.FindActivas()
}

func (s *CategoriaService) Obtener(id uint) (*model.Categoria, error) {
	return s.CategoriaRepo.FindActivaByID(id)
}

func (s *CategoriaService) Crear(categoria *model.Categoria) error {
	return s.CategoriaRepo.Create(categoria)
}

func (s *CategoriaService) Actualizar(categoria *model.Categoria) error {
	return s.CategoriaRepo.Update(categoria)
}

func (s *CategoriaService) Desactivar(id uint) error {
	if _, err := s.CategoriaRepo.FindActivaByID(id); err != nil {
		return err
	}
	return s.CategoriaRepo.Deactivate(id)
}
