package service

import (
	"cursos_backend/internal/model"
	"cursos_backend/internal/repository"
)

// InstructorResponse decorates the instructor with the display name built
// from the linked user account.
//
// swagger:model InstructorResponse
type InstructorResponse struct {
	model.Instructor
	NombreCompleto string `json:"nombre_completo"`
}

func newInstructorResponse(instructor model.Instructor) InstructorResponse {
	return InstructorResponse{
		Instructor:     instructor,
		NombreCompleto: instructor.User.NombreCompleto(),
	}
}

// CursoResponse is the summary view of a course: entity fields plus the
// derived enrollment statistics, without lessons.
//
// swagger:model CursoResponse
type CursoResponse struct {
	model.Curso
	Instructor           InstructorResponse `json:"instructor"`
	NumeroEstudiantes    int64              `json:"numero_estudiantes"`
	CalificacionPromedio float64            `json:"calificacion_promedio"`
}

// CursoDetailResponse is the detail view: everything in the summary plus
// the full ordered lesson list.
//
// swagger:model CursoDetailResponse
type CursoDetailResponse struct {
	CursoResponse
	Lecciones []model.Leccion `json:"lecciones"`
}

// swagger:model MatriculaResponse
type MatriculaResponse struct {
	model.Matricula
	Curso CursoResponse `json:"curso"`
}

// buildCursoResponses assembles summary views for a list of courses,
// resolving the derived statistics in a single grouped query.
func buildCursoResponses(repo *repository.CursoRepository, cursos []model.Curso) ([]CursoResponse, error) {
	ids := make([]uint, len(cursos))
	for i, curso := range cursos {
		ids[i] = curso.ID
	}

	stats, err := repo.Stats(ids)
	if err != nil {
		return nil, err
	}

	responses := make([]CursoResponse, len(cursos))
	for i, curso := range cursos {
		responses[i] = CursoResponse{
			Curso:                curso,
			Instructor:           newInstructorResponse(curso.Instructor),
			NumeroEstudiantes:    stats[curso.ID].NumeroEstudiantes,
			CalificacionPromedio: stats[curso.ID].CalificacionPromedio,
		}
	}
	return responses, nil
}

func buildCursoResponse(repo *repository.CursoRepository, curso model.Curso) (*CursoResponse, error) {
	responses, err := buildCursoResponses(repo, []model.Curso{curso})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}
