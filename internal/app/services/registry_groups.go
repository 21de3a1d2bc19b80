package services

import (
	"context"
	"fmt"

	"github.com/yigit/campusregistry/internal/app/models"
	"github.com/yigit/campusregistry/internal/pkg/apperrors"
)

// CreateClass stores a class with an empty roster. Replacing an existing
// class unassigns every student that was on its roster.
func (s *registryServiceImpl) CreateClass(ctx context.Context, id int64, name string) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if previous, ok := s.classes.FindByID(id); ok {
		if s.opts.StrictCreate {
			s.logger.Warn().Int64("classID", id).Msg("Class already exists")
			return fmt.Errorf("error creating class %d: %w", id, apperrors.ErrClassAlreadyExists)
		}
		s.detachClass(previous)
	}
	s.classes.Save(models.NewClass(id, name))

	s.logger.Debug().Int64("classID", id).Str("name", name).Msg("Class created")
	return nil
}

// GetClass returns a copy of the class
func (s *registryServiceImpl) GetClass(ctx context.Context, id int64) (*models.Class, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	class, ok := s.classes.FindByID(id)
	if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	return class.Clone(), nil
}

// UpdateClass renames a class
func (s *registryServiceImpl) UpdateClass(ctx context.Context, id int64, name string) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	class, ok := s.classes.FindByID(id)
	if !ok {
		s.logger.Warn().Int64("classID", id).Msg("Update of missing class")
		return fmt.Errorf("error updating class %d: %w", id, apperrors.ErrClassNotFound)
	}
	class.Name = name

	s.logger.Debug().Int64("classID", id).Msg("Class updated")
	return nil
}

// DeleteClass removes the class and unassigns its students
func (s *registryServiceImpl) DeleteClass(ctx context.Context, id int64) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	class := s.classes.Delete(id)
	if class == nil {
		return nil
	}
	s.detachClass(class)

	s.logger.Debug().
		Int64("classID", id).
		Int("unassigned", class.StudentIDs.Len()).
		Msg("Class deleted")
	return nil
}

// ListClasses returns one page of classes ordered by ID
func (s *registryServiceImpl) ListClasses(ctx context.Context, page, size int) ([]*models.Class, models.PageInfo, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, models.PageInfo{}, err
	}
	defer unlock()

	classes, info := paginate(s.classes.FindAll(), page, size, (*models.Class).Clone)
	return classes, info, nil
}

func (s *registryServiceImpl) detachClass(class *models.Class) {
	for studentID := range class.StudentIDs {
		if student, ok := s.students.FindByID(studentID); ok && student.InClass(class.ID) {
			student.ClassID = nil
		}
	}
}

// CreateCourse stores a course with no enrollments. Replacing an existing
// course drops it from every enrolled student.
func (s *registryServiceImpl) CreateCourse(ctx context.Context, id int64, name string) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if previous, ok := s.courses.FindByID(id); ok {
		if s.opts.StrictCreate {
			s.logger.Warn().Int64("courseID", id).Msg("Course already exists")
			return fmt.Errorf("error creating course %d: %w", id, apperrors.ErrCourseAlreadyExists)
		}
		s.detachCourse(previous)
	}
	s.courses.Save(models.NewCourse(id, name))

	s.logger.Debug().Int64("courseID", id).Str("name", name).Msg("Course created")
	return nil
}

// GetCourse returns a copy of the course
func (s *registryServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	course, ok := s.courses.FindByID(id)
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course.Clone(), nil
}

// UpdateCourse renames a course
func (s *registryServiceImpl) UpdateCourse(ctx context.Context, id int64, name string) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	course, ok := s.courses.FindByID(id)
	if !ok {
		s.logger.Warn().Int64("courseID", id).Msg("Update of missing course")
		return fmt.Errorf("error updating course %d: %w", id, apperrors.ErrCourseNotFound)
	}
	course.Name = name

	s.logger.Debug().Int64("courseID", id).Msg("Course updated")
	return nil
}

// DeleteCourse removes the course and every enrollment in it
func (s *registryServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	course := s.courses.Delete(id)
	if course == nil {
		return nil
	}
	s.detachCourse(course)

	s.logger.Debug().
		Int64("courseID", id).
		Int("unenrolled", course.StudentIDs.Len()).
		Msg("Course deleted")
	return nil
}

// ListCourses returns one page of courses ordered by ID
func (s *registryServiceImpl) ListCourses(ctx context.Context, page, size int) ([]*models.Course, models.PageInfo, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, models.PageInfo{}, err
	}
	defer unlock()

	courses, info := paginate(s.courses.FindAll(), page, size, (*models.Course).Clone)
	return courses, info, nil
}

func (s *registryServiceImpl) detachCourse(course *models.Course) {
	for studentID := range course.StudentIDs {
		if student, ok := s.students.FindByID(studentID); ok {
			student.CourseIDs.Remove(course.ID)
		}
	}
}

// CreateClub stores a club with no members. Replacing an existing club
// drops it from every member.
func (s *registryServiceImpl) CreateClub(ctx context.Context, id int64, name string) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if previous, ok := s.clubs.FindByID(id); ok {
		if s.opts.StrictCreate {
			s.logger.Warn().Int64("clubID", id).Msg("Club already exists")
			return fmt.Errorf("error creating club %d: %w", id, apperrors.ErrClubAlreadyExists)
		}
		s.detachClub(previous)
	}
	s.clubs.Save(models.NewClub(id, name))

	s.logger.Debug().Int64("clubID", id).Str("name", name).Msg("Club created")
	return nil
}

// GetClub returns a copy of the club
func (s *registryServiceImpl) GetClub(ctx context.Context, id int64) (*models.Club, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	club, ok := s.clubs.FindByID(id)
	if !ok {
		return nil, apperrors.ErrClubNotFound
	}
	return club.Clone(), nil
}

// UpdateClub renames a club
func (s *registryServiceImpl) UpdateClub(ctx context.Context, id int64, name string) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	club, ok := s.clubs.FindByID(id)
	if !ok {
		s.logger.Warn().Int64("clubID", id).Msg("Update of missing club")
		return fmt.Errorf("error updating club %d: %w", id, apperrors.ErrClubNotFound)
	}
	club.Name = name

	s.logger.Debug().Int64("clubID", id).Msg("Club updated")
	return nil
}

// DeleteClub removes the club and every membership in it
func (s *registryServiceImpl) DeleteClub(ctx context.Context, id int64) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	club := s.clubs.Delete(id)
	if club == nil {
		return nil
	}
	s.detachClub(club)

	s.logger.Debug().
		Int64("clubID", id).
		Int("removedMembers", club.MemberIDs.Len()).
		Msg("Club deleted")
	return nil
}

// ListClubs returns one page of clubs ordered by ID
func (s *registryServiceImpl) ListClubs(ctx context.Context, page, size int) ([]*models.Club, models.PageInfo, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, models.PageInfo{}, err
	}
	defer unlock()

	clubs, info := paginate(s.clubs.FindAll(), page, size, (*models.Club).Clone)
	return clubs, info, nil
}

func (s *registryServiceImpl) detachClub(club *models.Club) {
	for studentID := range club.MemberIDs {
		if student, ok := s.students.FindByID(studentID); ok {
			student.ClubIDs.Remove(club.ID)
		}
	}
}
