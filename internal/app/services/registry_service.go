package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/campusregistry/internal/app/models"
	"github.com/yigit/campusregistry/internal/app/repositories"
	"github.com/yigit/campusregistry/internal/pkg/apperrors"
	"github.com/yigit/campusregistry/internal/pkg/helpers"
)

// RegistryService defines the interface for the campus registry.
//
// Every mutation keeps both sides of a relationship in step: a student's
// ClassID, CourseIDs and ClubIDs always mirror the rosters of the classes,
// courses and clubs it points at. Entities returned by the service are copies.
//
// Operations that must act on an entity return the matching not-found error
// from apperrors when it is missing. Operations whose outcome already holds
// (deleting a missing id, removing a link that is not there) succeed
// without changing anything.
type RegistryService interface {
	CreateStudent(ctx context.Context, id int64, name string, age uint32, classID *int64) error
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, name string, age uint32) error
	DeleteStudent(ctx context.Context, id int64) error
	ListStudents(ctx context.Context, page, size int) ([]*models.Student, models.PageInfo, error)

	CreateClass(ctx context.Context, id int64, name string) error
	GetClass(ctx context.Context, id int64) (*models.Class, error)
	UpdateClass(ctx context.Context, id int64, name string) error
	DeleteClass(ctx context.Context, id int64) error
	ListClasses(ctx context.Context, page, size int) ([]*models.Class, models.PageInfo, error)

	CreateCourse(ctx context.Context, id int64, name string) error
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, name string) error
	DeleteCourse(ctx context.Context, id int64) error
	ListCourses(ctx context.Context, page, size int) ([]*models.Course, models.PageInfo, error)

	CreateClub(ctx context.Context, id int64, name string) error
	GetClub(ctx context.Context, id int64) (*models.Club, error)
	UpdateClub(ctx context.Context, id int64, name string) error
	DeleteClub(ctx context.Context, id int64) error
	ListClubs(ctx context.Context, page, size int) ([]*models.Club, models.PageInfo, error)

	EnrollStudentInCourse(ctx context.Context, studentID, courseID int64) error
	RemoveStudentFromCourse(ctx context.Context, studentID, courseID int64) error
	JoinClub(ctx context.Context, studentID, clubID int64) error
	LeaveClub(ctx context.Context, studentID, clubID int64) error
	AssignStudentToClass(ctx context.Context, studentID, classID int64) error
	UnassignStudentFromClass(ctx context.Context, studentID int64) error

	StudentsInClass(ctx context.Context, classID int64) ([]*models.Student, error)
	StudentsInCourse(ctx context.Context, courseID int64) ([]*models.Student, error)
	MembersOfClub(ctx context.Context, clubID int64) ([]*models.Student, error)

	Snapshot(ctx context.Context) (*models.Snapshot, error)
	VerifyConsistency(ctx context.Context) error
}

// RegistryOptions tunes registry behavior
type RegistryOptions struct {
	// StrictCreate makes Create* fail with an AlreadyExists error instead of overwriting
	StrictCreate bool
}

// registryServiceImpl implements RegistryService.
// mu guards every table; a relationship change takes the write lock once so
// both sides change together.
type registryServiceImpl struct {
	mu       sync.RWMutex
	students *repositories.StudentRepository
	classes  *repositories.ClassRepository
	courses  *repositories.CourseRepository
	clubs    *repositories.ClubRepository
	opts     RegistryOptions
	now      func() time.Time
	logger   zerolog.Logger
}

// NewRegistryService creates a new RegistryService over the given tables
func NewRegistryService(repos *repositories.Repositories, opts RegistryOptions, logger zerolog.Logger) RegistryService {
	return &registryServiceImpl{
		students: repos.StudentRepository,
		classes:  repos.ClassRepository,
		courses:  repos.CourseRepository,
		clubs:    repos.ClubRepository,
		opts:     opts,
		now:      time.Now,
		logger:   logger.With().Str("component", "registry").Logger(),
	}
}

func (s *registryServiceImpl) writeLock(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return s.mu.Unlock, nil
}

func (s *registryServiceImpl) readLock(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	return s.mu.RUnlock, nil
}

// paginate slices rows for a 1-based page and builds its PageInfo
func paginate[T any](rows []*T, pageNum, size int, clone func(*T) *T) ([]*T, models.PageInfo) {
	pageNum, size = helpers.NormalizePagination(pageNum, size)
	start, end := helpers.CalculateSliceIndices(pageNum, size, len(rows))

	out := make([]*T, 0, end-start)
	for _, row := range rows[start:end] {
		out = append(out, clone(row))
	}
	return out, helpers.NewPaginationInfo(int64(len(rows)), pageNum, size)
}

// studentsByIDs returns copies of the listed students, skipping ids with no row
func (s *registryServiceImpl) studentsByIDs(ids models.IDSet) []*models.Student {
	out := make([]*models.Student, 0, ids.Len())
	for _, id := range ids.Sorted() {
		if student, ok := s.students.FindByID(id); ok {
			out = append(out, student.Clone())
		}
	}
	return out
}

// StudentsInClass returns the students on a class roster, ordered by ID
func (s *registryServiceImpl) StudentsInClass(ctx context.Context, classID int64) ([]*models.Student, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	class, ok := s.classes.FindByID(classID)
	if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	return s.studentsByIDs(class.StudentIDs), nil
}

// StudentsInCourse returns the students enrolled in a course, ordered by ID
func (s *registryServiceImpl) StudentsInCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	course, ok := s.courses.FindByID(courseID)
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.studentsByIDs(course.StudentIDs), nil
}

// MembersOfClub returns the members of a club, ordered by ID
func (s *registryServiceImpl) MembersOfClub(ctx context.Context, clubID int64) ([]*models.Student, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	club, ok := s.clubs.FindByID(clubID)
	if !ok {
		return nil, apperrors.ErrClubNotFound
	}
	return s.studentsByIDs(club.MemberIDs), nil
}

// Snapshot copies the whole registry
func (s *registryServiceImpl) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	snap := &models.Snapshot{
		ID:       uuid.NewString(),
		TakenAt:  s.now().UTC(),
		Students: make([]*models.Student, 0, s.students.Count()),
		Classes:  make([]*models.Class, 0, s.classes.Count()),
		Courses:  make([]*models.Course, 0, s.courses.Count()),
		Clubs:    make([]*models.Club, 0, s.clubs.Count()),
	}
	for _, student := range s.students.FindAll() {
		snap.Students = append(snap.Students, student.Clone())
	}
	for _, class := range s.classes.FindAll() {
		snap.Classes = append(snap.Classes, class.Clone())
	}
	for _, course := range s.courses.FindAll() {
		snap.Courses = append(snap.Courses, course.Clone())
	}
	for _, club := range s.clubs.FindAll() {
		snap.Clubs = append(snap.Clubs, club.Clone())
	}

	s.logger.Debug().
		Str("snapshotID", snap.ID).
		Int("students", len(snap.Students)).
		Msg("Snapshot taken")
	return snap, nil
}

// VerifyConsistency checks that every forward reference has a matching
// roster entry and the other way round. All violations are reported.
func (s *registryServiceImpl) VerifyConsistency(ctx context.Context) error {
	unlock, err := s.readLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	var errs []error
	violation := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{apperrors.ErrConflict}, args...)...))
	}

	for _, student := range s.students.FindAll() {
		if student.ClassID != nil {
			class, ok := s.classes.FindByID(*student.ClassID)
			if !ok || !class.StudentIDs.Has(student.ID) {
				violation("student %d points at class %d which does not list it", student.ID, *student.ClassID)
			}
		}
		for _, courseID := range student.CourseIDs.Sorted() {
			course, ok := s.courses.FindByID(courseID)
			if !ok || !course.StudentIDs.Has(student.ID) {
				violation("student %d points at course %d which does not list it", student.ID, courseID)
			}
		}
		for _, clubID := range student.ClubIDs.Sorted() {
			club, ok := s.clubs.FindByID(clubID)
			if !ok || !club.MemberIDs.Has(student.ID) {
				violation("student %d points at club %d which does not list it", student.ID, clubID)
			}
		}
	}

	for _, class := range s.classes.FindAll() {
		for _, studentID := range class.StudentIDs.Sorted() {
			student, ok := s.students.FindByID(studentID)
			if !ok || !student.InClass(class.ID) {
				violation("class %d lists student %d which does not point back", class.ID, studentID)
			}
		}
	}
	for _, course := range s.courses.FindAll() {
		for _, studentID := range course.StudentIDs.Sorted() {
			student, ok := s.students.FindByID(studentID)
			if !ok || !student.CourseIDs.Has(course.ID) {
				violation("course %d lists student %d which does not point back", course.ID, studentID)
			}
		}
	}
	for _, club := range s.clubs.FindAll() {
		for _, studentID := range club.MemberIDs.Sorted() {
			student, ok := s.students.FindByID(studentID)
			if !ok || !student.ClubIDs.Has(club.ID) {
				violation("club %d lists student %d which does not point back", club.ID, studentID)
			}
		}
	}

	return errors.Join(errs...)
}
