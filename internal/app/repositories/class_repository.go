package repositories

import (
	"github.com/yigit/campusregistry/internal/app/models"
)

// ClassRepository holds the classes table
type ClassRepository struct {
	table[models.Class]
}

// NewClassRepository creates an empty class table
func NewClassRepository() *ClassRepository {
	return &ClassRepository{table: newTable[models.Class]()}
}

// Save stores class under its ID and returns the row it replaced, if any
func (r *ClassRepository) Save(class *models.Class) *models.Class {
	return r.put(class.ID, class)
}

// FindByID returns the stored class. The pointer is live registry state.
func (r *ClassRepository) FindByID(id int64) (*models.Class, bool) {
	return r.get(id)
}

// Delete removes the class and returns it, or nil if it was not stored
func (r *ClassRepository) Delete(id int64) *models.Class {
	return r.remove(id)
}

// Exists reports whether a class with id is stored
func (r *ClassRepository) Exists(id int64) bool {
	_, ok := r.get(id)
	return ok
}

// Count returns the number of stored classes
func (r *ClassRepository) Count() int {
	return r.count()
}

// FindAll returns every stored class ordered by ID
func (r *ClassRepository) FindAll() []*models.Class {
	return r.all()
}
