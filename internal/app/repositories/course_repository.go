package repositories

import (
	"github.com/yigit/campusregistry/internal/app/models"
)

// CourseRepository holds the courses table
type CourseRepository struct {
	table[models.Course]
}

// NewCourseRepository creates an empty course table
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{table: newTable[models.Course]()}
}

// Save stores course under its ID and returns the row it replaced, if any
func (r *CourseRepository) Save(course *models.Course) *models.Course {
	return r.put(course.ID, course)
}

// FindByID returns the stored course. The pointer is live registry state.
func (r *CourseRepository) FindByID(id int64) (*models.Course, bool) {
	return r.get(id)
}

// Delete removes the course and returns it, or nil if it was not stored
func (r *CourseRepository) Delete(id int64) *models.Course {
	return r.remove(id)
}

// Exists reports whether a course with id is stored
func (r *CourseRepository) Exists(id int64) bool {
	_, ok := r.get(id)
	return ok
}

// Count returns the number of stored courses
func (r *CourseRepository) Count() int {
	return r.count()
}

// FindAll returns every stored course ordered by ID
func (r *CourseRepository) FindAll() []*models.Course {
	return r.all()
}
