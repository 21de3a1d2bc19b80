package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yigit/campusregistry/internal/app/repositories"
	"github.com/yigit/campusregistry/internal/app/services"
	"github.com/yigit/campusregistry/internal/pkg/apperrors"
	"github.com/yigit/campusregistry/internal/pkg/logger"
)

func newRegistry() services.RegistryService {
	return services.NewRegistryService(repositories.NewRepositories(), services.RegistryOptions{}, logger.Nop())
}

func TestCreateDefaultDataBuildsDemoRelationships(t *testing.T) {
	t.Parallel()

	svc := newRegistry()
	ctx := context.Background()
	require.NoError(t, CreateDefaultData(ctx, svc, logger.Nop()))

	student, err := svc.GetStudent(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Alice", student.Name)
	require.Equal(t, int64(201), *student.ClassID)
	require.Equal(t, []int64{301}, student.CourseIDs.Sorted())
	require.Equal(t, []int64{101}, student.ClubIDs.Sorted())

	club, err := svc.GetClub(ctx, 101)
	require.NoError(t, err)
	require.Equal(t, "Programming Club", club.Name)
	require.NoError(t, svc.VerifyConsistency(ctx))
}

func TestLoadFixtureAndApply(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
students:
  - {id: 1, name: Alice, age: 20}
  - {id: 2, name: Bob, age: 22}
classes:
  - {id: 201, name: Computer Science}
courses:
  - {id: 301, name: Rust Programming}
  - {id: 302, name: Go Programming}
clubs:
  - {id: 101, name: Programming Club}
enrollments:
  - {student: 1, course: 301}
  - {student: 2, course: 301}
  - {student: 2, course: 302}
memberships:
  - {student: 2, club: 101}
assignments:
  - {student: 1, class: 201}
`), 0o600))

	fixture, err := LoadFixture(path)
	require.NoError(t, err)
	require.Len(t, fixture.Students, 2)

	svc := newRegistry()
	ctx := context.Background()
	require.NoError(t, Apply(ctx, svc, fixture, logger.Nop()))

	enrolled, err := svc.StudentsInCourse(ctx, 301)
	require.NoError(t, err)
	require.Len(t, enrolled, 2)
	bob, err := svc.GetStudent(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{301, 302}, bob.CourseIDs.Sorted())
	require.Nil(t, bob.ClassID)
	require.NoError(t, svc.VerifyConsistency(ctx))
}

func TestApplyJoinsRowErrors(t *testing.T) {
	t.Parallel()

	fixture := &Fixture{
		Students:    []StudentRow{{ID: 1, Name: "Alice", Age: 20}},
		Courses:     []NamedRow{{ID: 301, Name: "Rust Programming"}},
		Enrollments: []EnrollmentRow{{Student: 1, Course: 301}, {Student: 1, Course: 999}},
		Assignments: []AssignmentRow{{Student: 5, Class: 201}},
	}

	svc := newRegistry()
	ctx := context.Background()
	err := Apply(ctx, svc, fixture, logger.Nop())
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	require.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	require.ErrorContains(t, err, "seed enrollments[1]")

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	require.Equal(t, "SEED_ROW", custom.Code)

	student, getErr := svc.GetStudent(ctx, 1)
	require.NoError(t, getErr)
	require.Equal(t, []int64{301}, student.CourseIDs.Sorted())
}

func TestParseFixtureRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := ParseFixture([]byte("teachers:\n  - {id: 1}\n"))
	require.ErrorIs(t, err, apperrors.ErrInvalidFixture)

	empty, err := ParseFixture(nil)
	require.NoError(t, err)
	require.Empty(t, empty.Students)
}
