package repository

import (
	"cursos_backend/internal/model"
	"strings"

	"gorm.io/gorm"
)

// CursoStats carries the derived fields of a course. They are recomputed
// from the enrollment table on every read and never stored.
type CursoStats struct {
	NumeroEstudiantes    int64
	CalificacionPromedio float64
}

// matriculaCount is the relevance expression used to rank courses in the
// search and popularity listings (total enrollments, most first).
const matriculaCount = "(SELECT COUNT(*) FROM matriculas WHERE matriculas.curso_id = cursos.id)"

// escapeLike neutralizes LIKE wildcards in user input so a search for
// "100%" matches the literal text instead of any prefix. "!" is the
// escape character because mysql and sqlite parse '\' differently.
var escapeLike = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace

type CursoRepository struct {
	DB *gorm.DB
}

func NewCursoRepository(db *gorm.DB) *CursoRepository {
	return &CursoRepository{DB: db}
}

func (r *CursoRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Instructor.User").Preload("Categoria")
}

func (r *CursoRepository) Create(curso *model.Curso) error {
	return r.DB.Create(curso).Error
}

// Update persists the scalar columns only. A plain Save would rewrite
// instructor_id and categoria_id from the preloaded associations and
// undo an edited foreign key.
func (r *CursoRepository) Update(curso *model.Curso) error {
	return r.DB.Omit("Instructor", "Categoria", "Lecciones").Save(curso).Error
}

func (r *CursoRepository) FindActivos() ([]model.Curso, error) {
	var cursos []model.Curso
	err := r.withRelations(r.DB).
		Where("activo = ?", true).
		Order("fecha_creacion DESC").
		Find(&cursos).Error
	return cursos, err
}

// FindByID loads the course regardless of its active flag. The update
// handlers rebuild their response through it, so a write that clears the
// flag still answers with the stored row instead of a not-found.
func (r *CursoRepository) FindByID(id uint) (*model.Curso, error) {
	var curso model.Curso
	err := r.withRelations(r.DB).First(&curso, id).Error
	return &curso, err
}

// FindActivoByID loads one active course with its full lesson list for
// the detail view. Lessons come back in their per-course order.
func (r *CursoRepository) FindActivoByID(id uint) (*model.Curso, error) {
	var curso model.Curso
	err := r.withRelations(r.DB).
		Preload("Lecciones", func(db *gorm.DB) *gorm.DB {
			return db.Order("orden ASC")
		}).
		Where("activo = ?", true).
		First(&curso, id).Error
	return &curso, err
}

func (r *CursoRepository) FindActivosByInstructor(instructorID uint) ([]model.Curso, error) {
	var cursos []model.Curso
	err := r.withRelations(r.DB).
		Where("instructor_id = ? AND activo = ?", instructorID, true).
		Order("fecha_creacion DESC").
		Find(&cursos).Error
	return cursos, err
}

func (r *CursoRepository) FindActivosByCategoria(categoriaID uint) ([]model.Curso, error) {
	var cursos []model.Curso
	err := r.withRelations(r.DB).
		Where("categoria_id = ? AND activo = ?", categoriaID, true).
		Order("fecha_creacion DESC").
		Find(&cursos).Error
	return cursos, err
}

func (r *CursoRepository) Populares(limit int) ([]model.Curso, error) {
	var cursos []model.Curso
	err := r.withRelations(r.DB).
		Where("activo = ?", true).
		Order(matriculaCount + " DESC").
		Limit(limit).
		Find(&cursos).Error
	return cursos, err
}

// Buscar composes the optional search filters with AND and ranks the
// result by enrollment count. Ties keep no particular order.
func (r *CursoRepository) Buscar(q string, categoriaID uint, nivel string, precioMax *float64) ([]model.Curso, error) {
	db := r.withRelations(r.DB).Where("cursos.activo = ?", true)

	if q != "" {
		like := "%" + escapeLike(strings.ToLower(q)) + "%"
		db = db.
			Joins("JOIN instructores ON instructores.id = cursos.instructor_id").
			Joins("JOIN users ON users.id = instructores.user_id").
			Where("LOWER(cursos.titulo) LIKE ? ESCAPE '!' OR LOWER(cursos.descripcion) LIKE ? ESCAPE '!' OR LOWER(users.first_name) LIKE ? ESCAPE '!' OR LOWER(users.last_name) LIKE ? ESCAPE '!'",
				like, like, like, like)
	}
	if categoriaID != 0 {
		db = db.Where("cursos.categoria_id = ?", categoriaID)
	}
	if nivel != "" {
		db = db.Where("cursos.nivel = ?", nivel)
	}
	if precioMax != nil {
		db = db.Where("cursos.precio <= ?", *precioMax)
	}

	var cursos []model.Curso
	err := db.Order(matriculaCount + " DESC").Find(&cursos).Error
	return cursos, err
}

// Stats computes the derived fields for a set of courses in one grouped
// query. AVG skips NULL ratings; courses without rated active enrollments
// report 0, not null.
func (r *CursoRepository) Stats(cursoIDs []uint) (map[uint]CursoStats, error) {
	stats := make(map[uint]CursoStats, len(cursoIDs))
	if len(cursoIDs) == 0 {
		return stats, nil
	}

	var rows []struct {
		CursoID  uint
		Total    int64
		Promedio *float64
	}
	err := r.DB.Model(&model.Matricula{}).
		Select("curso_id, COUNT(*) AS total, AVG(calificacion) AS promedio").
		Where("curso_id IN ? AND activa = ?", cursoIDs, true).
		Group("curso_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		s := CursoStats{NumeroEstudiantes: row.Total}
		if row.Promedio != nil {
			s.CalificacionPromedio = *row.Promedio
		}
		stats[row.CursoID] = s
	}
	return stats, nil
}

func (r *CursoRepository) Deactivate(id uint) error {
	return r.DB.Model(&model.Curso{}).Where("id = ?", id).Update("activo", false).Error
}
