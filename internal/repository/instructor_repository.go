package repository

import (
	"cursos_backend/internal/model"

	"gorm.io/gorm"
)

type InstructorRepository struct {
	DB *gorm.DB
}

func NewInstructorRepository(db *gorm.DB) *InstructorRepository {
	return &InstructorRepository{DB: db}
}

func (r *InstructorRepository) Create(instructor *model.Instructor) error {
	return r.DB.Create(instructor).Error
}

// FindAll returns every instructor, active or not, newest registration
// first. Deactivation only hides their courses, not the record itself.
func (r *InstructorRepository) FindAll() ([]model.Instructor, error) {
	var instructores []model.Instructor
	err := r.DB.Preload("User").Order("fecha_registro DESC").Find(&instructores).Error
	return instructores, err
}

func (r *InstructorRepository) FindByID(id uint) (*model.Instructor, error) {
	var instructor model.Instructor
	err := r.DB.Preload("User").First(&instructor, id).Error
	return &instructor, err
}

func (r *InstructorRepository) FindByUserID(userID uint) (*model.Instructor, error) {
	var instructor model.Instructor
	err := r.DB.Preload("User").Where("user_id = ?", userID).First(&instructor).Error
	return &instructor, err
}

// Update omits the preloaded user so Save cannot overwrite an edited
// user_id with the old association's key.
func (r *InstructorRepository) Update(instructor *model.Instructor) error {
	return r.DB.Omit("User").Save(instructor).Error
}

// Deactivate soft-deletes the instructor. Rows are never hard-deleted
// while courses reference them; the cascade FK is only the DB backstop.
func (r *InstructorRepository) Deactivate(id uint) error {
	return r.DB.Model(&model.Instructor{}).Where("id = ?", id).Update("activo", false).Error
}
