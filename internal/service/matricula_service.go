package service

import (
	"cursos_backend/internal/model"
	"cursos_backend/internal/repository"
	"errors"
	"time"

	"gorm.io/gorm"
)

type MatriculaService struct {
	MatriculaRepo *repository.MatriculaRepository
	CursoRepo     *repository.CursoRepository
}

func NewMatriculaService(matriculaRepo *repository.MatriculaRepository, cursoRepo *repository.CursoRepository) *MatriculaService {
	return &MatriculaService{
		MatriculaRepo: matriculaRepo,
		CursoRepo:     cursoRepo,
	}
}

func (s *MatriculaService) buildResponse(matricula model.Matricula) (*MatriculaResponse, error) {
	curso, err := buildCursoResponse(s.CursoRepo, matricula.Curso)
	if err != nil {
		return nil, err
	}
	return &MatriculaResponse{Matricula: matricula, Curso: *curso}, nil
}

func (s *MatriculaService) Listar(estudianteID uint) ([]MatriculaResponse, error) {
	matriculas, err := s.MatriculaRepo.FindByEstudiante(estudianteID)
	if err != nil {
		return nil, err
	}

	responses := make([]MatriculaResponse, 0, len(matriculas))
	for _, matricula := range matriculas {
		response, err := s.buildResponse(matricula)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

func (s *MatriculaService) Obtener(id, estudianteID uint) (*MatriculaResponse, error) {
	matricula, err := s.MatriculaRepo.FindOwned(id, estudianteID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(*matricula)
}

// Matricular enrolls the acting user in a course. The student id always
// comes from the session, never from the request body, so nobody can
// enroll somebody else.
func (s *MatriculaService) Matricular(estudianteID, cursoID uint) (*MatriculaResponse, error) {
	if _, err := s.CursoRepo.FindActivoByID(cursoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ValidationErrors{"curso": "El curso no existe o esta inactivo"}
		}
		return nil, err
	}

	matricula := &model.Matricula{
		EstudianteID: estudianteID,
		CursoID:      cursoID,
		Activa:       true,
	}
	if err := s.MatriculaRepo.Create(matricula); err != nil {
		return nil, err
	}
	return s.Obtener(matricula.ID, estudianteID)
}

// Calificar updates the student's rating and comment for an enrollment.
// Progress changes go through ActualizarProgreso, not here.
func (s *MatriculaService) Calificar(id, estudianteID uint, calificacion *int, comentario *string) (*MatriculaResponse, error) {
	matricula, err := s.MatriculaRepo.FindOwned(id, estudianteID)
	if err != nil {
		return nil, err
	}

	if calificacion != nil {
		matricula.Calificacion = calificacion
	}
	if comentario != nil {
		matricula.Comentario = *comentario
	}

	if err := s.MatriculaRepo.Update(matricula); err != nil {
		return nil, err
	}
	return s.Obtener(id, estudianteID)
}

// ActualizarProgreso sets the progress percentage. Hitting 100 marks the
// enrollment completed and stamps the completion time; submitting 100
// again re-stamps it, matching how enrollment completion has always
// behaved.
func (s *MatriculaService) ActualizarProgreso(id, estudianteID uint, progreso int) (*MatriculaResponse, error) {
	matricula, err := s.MatriculaRepo.FindOwned(id, estudianteID)
	if err != nil {
		return nil, err
	}

	matricula.Progreso = progreso
	if progreso == 100 {
		now := time.Now()
		matricula.Completado = true
		matricula.FechaCompletado = &now
	}

	if err := s.MatriculaRepo.Update(matricula); err != nil {
		return nil, err
	}
	return s.Obtener(id, estudianteID)
}

// Baja withdraws the student: the record is deactivated, not deleted, so
// a later re-enrollment starts clean.
func (s *MatriculaService) Baja(id, estudianteID uint) error {
	return s.MatriculaRepo.Deactivate(id, estudianteID)
}
