package repositories

import (
	"github.com/yigit/campusregistry/internal/app/models"
)

// StudentRepository holds the students table
type StudentRepository struct {
	table[models.Student]
}

// NewStudentRepository creates an empty student table
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{table: newTable[models.Student]()}
}

// Save stores student under its ID and returns the row it replaced, if any
func (r *StudentRepository) Save(student *models.Student) *models.Student {
	return r.put(student.ID, student)
}

// FindByID returns the stored student. The pointer is live registry state.
func (r *StudentRepository) FindByID(id int64) (*models.Student, bool) {
	return r.get(id)
}

// Delete removes the student and returns it, or nil if it was not stored
func (r *StudentRepository) Delete(id int64) *models.Student {
	return r.remove(id)
}

// Exists reports whether a student with id is stored
func (r *StudentRepository) Exists(id int64) bool {
	_, ok := r.get(id)
	return ok
}

// Count returns the number of stored students
func (r *StudentRepository) Count() int {
	return r.count()
}

// FindAll returns every stored student ordered by ID
func (r *StudentRepository) FindAll() []*models.Student {
	return r.all()
}
