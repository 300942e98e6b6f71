package service

import (
	"context"
	"cursos_backend/internal/model"
	"cursos_backend/internal/repository"
	"cursos_backend/internal/util"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"gorm.io/gorm"
)

type InstructorService struct {
	InstructorRepo *repository.InstructorRepository
	CursoRepo      *repository.CursoRepository
	UserRepo       *repository.UserRepository
	StorageService *StorageService
}

func NewInstructorService(instructorRepo *repository.InstructorRepository, cursoRepo *repository.CursoRepository, userRepo *repository.UserRepository, storageService *StorageService) *InstructorService {
	return &InstructorService{
		InstructorRepo: instructorRepo,
		CursoRepo:      cursoRepo,
		UserRepo:       userRepo,
		StorageService: storageService,
	}
}

func (s *InstructorService) Listar() ([]InstructorResponse, error) {
	instructores, err := s.InstructorRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]InstructorResponse, len(instructores))
	for i, instructor := range instructores {
		responses[i] = newInstructorResponse(instructor)
	}
	return responses, nil
}

func (s *InstructorService) Obtener(id uint) (*InstructorResponse, error) {
	instructor, err := s.InstructorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	response := newInstructorResponse(*instructor)
	return &response, nil
}

// ObtenerModelo returns the raw entity for mutation by the update
// handlers.
func (s *InstructorService) ObtenerModelo(id uint) (*model.Instructor, error) {
	return s.InstructorRepo.FindByID(id)
}

func (s *InstructorService) Crear(instructor *model.Instructor) (*InstructorResponse, error) {
	if _, err := s.UserRepo.FindByID(instructor.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ValidationErrors{"user_id": "El usuario no existe"}
		}
		return nil, err
	}

	if _, err := s.InstructorRepo.FindByUserID(instructor.UserID); err == nil {
		return nil, model.ValidationErrors{"user_id": "El usuario ya es instructor"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.InstructorRepo.Create(instructor); err != nil {
		return nil, err
	}
	return s.Obtener(instructor.ID)
}

func (s *InstructorService) Actualizar(instructor *model.Instructor) (*InstructorResponse, error) {
	if err := s.InstructorRepo.Update(instructor); err != nil {
		return nil, err
	}
	return s.Obtener(instructor.ID)
}

func (s *InstructorService) Desactivar(id uint) error {
	if _, err := s.InstructorRepo.FindByID(id); err != nil {
		return err
	}
	return s.InstructorRepo.Deactivate(id)
}

// Cursos lists the active courses taught by one instructor.
func (s *InstructorService) Cursos(id uint) ([]CursoResponse, error) {
	if _, err := s.InstructorRepo.FindByID(id); err != nil {
		return nil, err
	}

	cursos, err := s.CursoRepo.FindActivosByInstructor(id)
	if err != nil {
		return nil, err
	}
	return buildCursoResponses(s.CursoRepo, cursos)
}

// SubirFoto stores a profile photo for the instructor and records its URL.
func (s *InstructorService) SubirFoto(ctx context.Context, id uint, file *multipart.FileHeader) (string, error) {
	instructor, err := s.InstructorRepo.FindByID(id)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, []string{util.MimeImage}); err != nil {
		return "", model.ValidationErrors{"foto": "El archivo debe ser una imagen"}
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("instructores/%s_%s%s", time.Now().Format("20060102150405"), util.GenerateRandomString(6), ext)

	url, err := s.StorageService.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	instructor.Foto = url
	if err := s.InstructorRepo.Update(instructor); err != nil {
		return "", err
	}
	return url, nil
}
