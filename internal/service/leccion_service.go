package service

import (
	"context"
	"cursos_backend/internal/model"
	"cursos_backend/internal/repository"
	"cursos_backend/internal/util"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"
)

type LeccionService struct {
	LeccionRepo    *repository.LeccionRepository
	CursoRepo      *repository.CursoRepository
	StorageService *StorageService
}

func NewLeccionService(leccionRepo *repository.LeccionRepository, cursoRepo *repository.CursoRepository, storageService *StorageService) *LeccionService {
	return &LeccionService{
		LeccionRepo:    leccionRepo,
		CursoRepo:      cursoRepo,
		StorageService: storageService,
	}
}

func (s *LeccionService) Listar() ([]model.Leccion, error) {
	return s.LeccionRepo.FindActivas()
}

func (s *LeccionService) Obtener(id uint) (*model.Leccion, error) {
	return s.LeccionRepo.FindActivaByID(id)
}

func (s *LeccionService) Crear(leccion *model.Leccion) error {
	if _, err := s.CursoRepo.FindActivoByID(leccion.CursoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ValidationErrors{"curso_id": "El curso no existe o esta inactivo"}
		}
		return err
	}
	return s.LeccionRepo.Create(leccion)
}

func (s *LeccionService) Actualizar(leccion *model.Leccion) error {
	return s.LeccionRepo.Update(leccion)
}

func (s *LeccionService) Desactivar(id uint) error {
	if _, err := s.LeccionRepo.FindActivaByID(id); err != nil {
		return err
	}
	return s.LeccionRepo.Deactivate(id)
}

// SubirArchivo stores an attachment for the lesson. Video uploads are
// probed with ffmpeg so the lesson duration gets filled in when the
// client did not send one.
func (s *LeccionService) SubirArchivo(ctx context.Context, id uint, file *multipart.FileHeader) (*model.Leccion, error) {
	leccion, err := s.LeccionRepo.FindActivaByID(id)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{util.MimeVideo, util.MimeImage, util.MimePDF, "text/plain", util.MimeOctetStream})
	if err != nil {
		return nil, model.ValidationErrors{"archivo": "Tipo de archivo no permitido"}
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("lecciones/%s_%s%s", time.Now().Format("20060102150405"), util.GenerateRandomString(6), ext)

	// Videos are spooled to disk first so ffprobe can read them.
	if util.IsVideo(mimeType) {
		if !util.IsAllowedVideoExtension(ext) {
			return nil, model.ValidationErrors{"archivo": "Extension de video no permitida"}
		}

		tmp, err := s.spoolToTemp(src, ext)
		if err != nil {
			return nil, err
		}
		defer os.Remove(tmp)

		if leccion.DuracionMinutos == 0 {
			if info, err := util.GetVideoInfo(tmp); err == nil && info.Duration > 0 {
				leccion.DuracionMinutos = int(math.Ceil(info.Duration / 60))
			}
		}

		url, err := s.StorageService.UploadFile(ctx, filename, tmp, file.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
		leccion.Archivo = url
	} else {
		url, err := s.StorageService.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
		leccion.Archivo = url
	}

	if err := s.LeccionRepo.Update(leccion); err != nil {
		return nil, err
	}
	return leccion, nil
}

func (s *LeccionService) spoolToTemp(src io.Reader, ext string) (string, error) {
	tmp, err := os.CreateTemp("", "leccion_*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
