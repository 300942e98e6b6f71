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
	"strconv"
	"time"

	"gorm.io/gorm"
)

type CursoService struct {
	CursoRepo      *repository.CursoRepository
	InstructorRepo *repository.InstructorRepository
	CategoriaRepo  *repository.CategoriaRepository
	StorageService *StorageService
}

func NewCursoService(cursoRepo *repository.CursoRepository, instructorRepo *repository.InstructorRepository, categoriaRepo *repository.CategoriaRepository, storageService *StorageService) *CursoService {
	return &CursoService{
		CursoRepo:      cursoRepo,
		InstructorRepo: instructorRepo,
		CategoriaRepo:  categoriaRepo,
		StorageService: storageService,
	}
}

// BuscarResultado is the search endpoint payload: total matches plus the
// full serialized list.
//
// swagger:model BuscarResultado
type BuscarResultado struct {
	Total  int             `json:"total"`
	Cursos []CursoResponse `json:"cursos"`
}

func (s *CursoService) Listar() ([]CursoResponse, error) {
	cursos, err := s.CursoRepo.FindActivos()
	if err != nil {
		return nil, err
	}
	return buildCursoResponses(s.CursoRepo, cursos)
}

// Detalle returns the nested view of one active course, lessons included.
func (s *CursoService) Detalle(id uint) (*CursoDetailResponse, error) {
	curso, err := s.CursoRepo.FindActivoByID(id)
	if err != nil {
		return nil, err
	}

	response, err := buildCursoResponse(s.CursoRepo, *curso)
	if err != nil {
		return nil, err
	}

	lecciones := curso.Lecciones
	if lecciones == nil {
		lecciones = []model.Leccion{}
	}
	return &CursoDetailResponse{CursoResponse: *response, Lecciones: lecciones}, nil
}

// ObtenerModelo returns the raw entity for mutation by the update
// handlers.
func (s *CursoService) ObtenerModelo(id uint) (*model.Curso, error) {
	return s.CursoRepo.FindActivoByID(id)
}

func (s *CursoService) Crear(curso *model.Curso) (*CursoResponse, error) {
	if err := s.validarReferencias(curso); err != nil {
		return nil, err
	}

	if err := s.CursoRepo.Create(curso); err != nil {
		return nil, err
	}

	creado, err := s.CursoRepo.FindByID(curso.ID)
	if err != nil {
		return nil, err
	}
	return buildCursoResponse(s.CursoRepo, *creado)
}

func (s *CursoService) Actualizar(curso *model.Curso) (*CursoResponse, error) {
	if err := s.validarReferencias(curso); err != nil {
		return nil, err
	}

	if err := s.CursoRepo.Update(curso); err != nil {
		return nil, err
	}

	// Reload without the active filter: a write that deactivates the
	// course still succeeded and must not answer 404.
	actualizado, err := s.CursoRepo.FindByID(curso.ID)
	if err != nil {
		return nil, err
	}
	return buildCursoResponse(s.CursoRepo, *actualizado)
}

func (s *CursoService) Desactivar(id uint) error {
	if _, err := s.CursoRepo.FindActivoByID(id); err != nil {
		return err
	}
	return s.CursoRepo.Deactivate(id)
}

func (s *CursoService) Populares() ([]CursoResponse, error) {
	cursos, err := s.CursoRepo.Populares(10)
	if err != nil {
		return nil, err
	}
	return buildCursoResponses(s.CursoRepo, cursos)
}

func (s *CursoService) PorCategoria(categoriaID uint) ([]CursoResponse, error) {
	cursos, err := s.CursoRepo.FindActivosByCategoria(categoriaID)
	if err != nil {
		return nil, err
	}
	return buildCursoResponses(s.CursoRepo, cursos)
}

// Buscar combines the optional filters and ranks by enrollment count. A
// malformed precio_max is deliberately ignored rather than rejected.
func (s *CursoService) Buscar(q, categoria, nivel, precioMax string) (*BuscarResultado, error) {
	var precio *float64
	if precioMax != "" {
		if parsed, err := strconv.ParseFloat(precioMax, 64); err == nil {
			precio = &parsed
		}
	}

	cursos, err := s.CursoRepo.Buscar(q, util.MustParseUint(categoria), nivel, precio)
	if err != nil {
		return nil, err
	}

	responses, err := buildCursoResponses(s.CursoRepo, cursos)
	if err != nil {
		return nil, err
	}
	return &BuscarResultado{Total: len(responses), Cursos: responses}, nil
}

// SubirImagen stores a cover image for the course and records its URL.
func (s *CursoService) SubirImagen(ctx context.Context, id uint, file *multipart.FileHeader) (string, error) {
	curso, err := s.CursoRepo.FindActivoByID(id)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, []string{util.MimeImage}); err != nil {
		return "", model.ValidationErrors{"imagen": "El archivo debe ser una imagen"}
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("cursos/%s_%s%s", time.Now().Format("20060102150405"), util.GenerateRandomString(6), ext)

	url, err := s.StorageService.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	curso.Imagen = url
	if err := s.CursoRepo.Update(curso); err != nil {
		return "", err
	}
	return url, nil
}

func (s *CursoService) validarReferencias(curso *model.Curso) error {
	if _, err := s.InstructorRepo.FindByID(curso.InstructorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ValidationErrors{"instructor_id": "El instructor no existe"}
		}
		return err
	}
	if _, err := s.CategoriaRepo.FindActivaByID(curso.CategoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ValidationErrors{"categoria_id": "La categoria no existe o esta inactiva"}
		}
		return err
	}
	return nil
}
