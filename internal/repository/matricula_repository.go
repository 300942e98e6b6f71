package repository

import (
	"cursos_backend/internal/model"

	"gorm.io/gorm"
)

// MatriculaRepository scopes every lookup to the acting student. The
// predicate lives here, at the data-access boundary, so no handler can
// forget it and leak another user's enrollment records.
type MatriculaRepository struct {
	DB *gorm.DB
}

func NewMatriculaRepository(db *gorm.DB) *MatriculaRepository {
	return &MatriculaRepository{DB: db}
}

func (r *MatriculaRepository) ownedBy(estudianteID uint) *gorm.DB {
	return r.DB.Where("estudiante_id = ? AND activa = ?", estudianteID, true)
}

func (r *MatriculaRepository) Create(matricula *model.Matricula) error {
	return r.DB.Create(matricula).Error
}

func (r *MatriculaRepository) FindByEstudiante(estudianteID uint) ([]model.Matricula, error) {
	var matriculas []model.Matricula
	err := r.ownedBy(estudianteID).
		Preload("Estudiante").
		Preload("Curso.Instructor.User").
		Preload("Curso.Categoria").
		Order("fecha_matricula DESC").
		Find(&matriculas).Error
	return matriculas, err
}

// FindOwned returns the enrollment only when it belongs to the given
// student; anyone probing another user's id gets a not-found.
func (r *MatriculaRepository) FindOwned(id, estudianteID uint) (*model.Matricula, error) {
	var matricula model.Matricula
	err := r.ownedBy(estudianteID).
		Preload("Estudiante").
		Preload("Curso.Instructor.User").
		Preload("Curso.Categoria").
		First(&matricula, id).Error
	return &matricula, err
}

func (r *MatriculaRepository) Update(matricula *model.Matricula) error {
	return r.DB.Omit("Estudiante", "Curso").Save(matricula).Error
}

// Deactivate withdraws the student from the course. The row stays in
// storage so a later re-enrollment creates a fresh record.
func (r *MatriculaRepository) Deactivate(id, estudianteID uint) error {
	result := r.ownedBy(estudianteID).Model(&model.Matricula{}).Where("id = ?", id).Update("activa", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
