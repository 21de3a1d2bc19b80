package services

import (
	"context"
	"fmt"

	"github.com/yigit/campusregistry/internal/app/models"
	"github.com/yigit/campusregistry/internal/pkg/apperrors"
)

// CreateStudent stores a new student. A non-nil classID assigns the student
// to that class, which must exist. Reusing an id replaces the old student
// and drops all of its links, unless strict create is on.
func (s *registryServiceImpl) CreateStudent(ctx context.Context, id int64, name string, age uint32, classID *int64) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	previous, exists := s.students.FindByID(id)
	if exists && s.opts.StrictCreate {
		s.logger.Warn().Int64("studentID", id).Msg("Student already exists")
		return fmt.Errorf("error creating student %d: %w", id, apperrors.ErrStudentAlreadyExists)
	}

	var class *models.Class
	if classID != nil {
		var ok bool
		if class, ok = s.classes.FindByID(*classID); !ok {
			s.logger.Warn().
				Int64("studentID", id).
				Int64("classID", *classID).
				Msg("Cannot create student in missing class")
			return fmt.Errorf("error creating student %d: %w", id, apperrors.ErrClassNotFound)
		}
	}

	if exists {
		s.detachStudent(previous)
		s.logger.Debug().Int64("studentID", id).Msg("Overwriting existing student")
	}

	student := models.NewStudent(id, name, age)
	s.students.Save(student)
	if class != nil {
		s.assignToClass(student, class)
	}

	s.logger.Debug().
		Int64("studentID", id).
		Str("name", name).
		Uint32("age", age).
		Msg("Student created")
	return nil
}

// GetStudent returns a copy of the student
func (s *registryServiceImpl) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	student, ok := s.students.FindByID(id)
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student.Clone(), nil
}

// UpdateStudent overwrites name and age. It never creates a student.
func (s *registryServiceImpl) UpdateStudent(ctx context.Context, id int64, name string, age uint32) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	student, ok := s.students.FindByID(id)
	if !ok {
		s.logger.Warn().Int64("studentID", id).Msg("Update of missing student")
		return fmt.Errorf("error updating student %d: %w", id, apperrors.ErrStudentNotFound)
	}
	student.Name = name
	student.Age = age

	s.logger.Debug().Int64("studentID", id).Msg("Student updated")
	return nil
}

// DeleteStudent removes the student from its table and from every roster
func (s *registryServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	student := s.students.Delete(id)
	if student == nil {
		s.logger.Debug().Int64("studentID", id).Msg("Delete of missing student ignored")
		return nil
	}
	s.detachStudent(student)

	s.logger.Debug().Int64("studentID", id).Msg("Student deleted")
	return nil
}

// ListStudents returns one page of students ordered by ID
func (s *registryServiceImpl) ListStudents(ctx context.Context, page, size int) ([]*models.Student, models.PageInfo, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, models.PageInfo{}, err
	}
	defer unlock()

	students, info := paginate(s.students.FindAll(), page, size, (*models.Student).Clone)
	return students, info, nil
}

// detachStudent removes student from every roster it appears on.
// The student's own references are left untouched.
func (s *registryServiceImpl) detachStudent(student *models.Student) {
	if student.ClassID != nil {
		if class, ok := s.classes.FindByID(*student.ClassID); ok {
			class.StudentIDs.Remove(student.ID)
		}
	}
	for courseID := range student.CourseIDs {
		if course, ok := s.courses.FindByID(courseID); ok {
			course.StudentIDs.Remove(student.ID)
		}
	}
	for clubID := range student.ClubIDs {
		if club, ok := s.clubs.FindByID(clubID); ok {
			club.MemberIDs.Remove(student.ID)
		}
	}
}
