package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/yigit/campusregistry/internal/app/services"
	"github.com/yigit/campusregistry/internal/pkg/apperrors"
	"gopkg.in/yaml.v3"
)

// Fixture is the on-disk shape of seed data
type Fixture struct {
	Students    []StudentRow    `yaml:"students"`
	Classes     []NamedRow      `yaml:"classes"`
	Courses     []NamedRow      `yaml:"courses"`
	Clubs       []NamedRow      `yaml:"clubs"`
	Enrollments []EnrollmentRow `yaml:"enrollments"`
	Memberships []MembershipRow `yaml:"memberships"`
	Assignments []AssignmentRow `yaml:"assignments"`
}

// StudentRow seeds one student
type StudentRow struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
	Age  uint32 `yaml:"age"`
}

// NamedRow seeds a class, course or club
type NamedRow struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// EnrollmentRow enrolls a student in a course
type EnrollmentRow struct {
	Student int64 `yaml:"student"`
	Course  int64 `yaml:"course"`
}

// MembershipRow adds a student to a club
type MembershipRow struct {
	Student int64 `yaml:"student"`
	Club    int64 `yaml:"club"`
}

// AssignmentRow places a student in a class
type AssignmentRow struct {
	Student int64 `yaml:"student"`
	Class   int64 `yaml:"class"`
}

// DefaultFixture is the demo data set: one student enrolled in a course,
// member of a club and assigned to a class.
func DefaultFixture() *Fixture {
	return &Fixture{
		Students:    []StudentRow{{ID: 1, Name: "Alice", Age: 20}},
		Clubs:       []NamedRow{{ID: 101, Name: "Programming Club"}},
		Classes:     []NamedRow{{ID: 201, Name: "Computer Science"}},
		Courses:     []NamedRow{{ID: 301, Name: "Rust Programming"}},
		Enrollments: []EnrollmentRow{{Student: 1, Course: 301}},
		Memberships: []MembershipRow{{Student: 1, Club: 101}},
		Assignments: []AssignmentRow{{Student: 1, Class: 201}},
	}
}

// LoadFixture reads a YAML fixture from path
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes a YAML fixture. Unknown keys are rejected.
func ParseFixture(data []byte) (*Fixture, error) {
	var fixture Fixture
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fixture); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidFixture, err)
	}
	return &fixture, nil
}

// CreateDefaultData seeds the registry with DefaultFixture
func CreateDefaultData(ctx context.Context, svc services.RegistryService, lgr zerolog.Logger) error {
	lgr.Info().Msg("Creating default registry data...")
	return Apply(ctx, svc, DefaultFixture(), lgr)
}

// Apply creates every entity in the fixture and then links them.
// A failing row does not stop the rest; all failures are returned joined.
func Apply(ctx context.Context, svc services.RegistryService, fixture *Fixture, lgr zerolog.Logger) error {
	var finalErr error
	record := func(section string, row int, err error) {
		if err == nil {
			return
		}
		lgr.Error().Err(err).Str("section", section).Int("row", row).Msg("Error applying seed row")
		finalErr = errors.Join(finalErr, apperrors.NewCustomError(err, fmt.Sprintf("seed %s[%d]: %v", section, row, err)).
			WithCode("SEED_ROW").
			WithDetails(map[string]interface{}{"section": section, "row": row}))
	}

	for i, row := range fixture.Classes {
		record("classes", i, svc.CreateClass(ctx, row.ID, row.Name))
	}
	for i, row := range fixture.Courses {
		record("courses", i, svc.CreateCourse(ctx, row.ID, row.Name))
	}
	for i, row := range fixture.Clubs {
		record("clubs", i, svc.CreateClub(ctx, row.ID, row.Name))
	}
	for i, row := range fixture.Students {
		record("students", i, svc.CreateStudent(ctx, row.ID, row.Name, row.Age, nil))
	}

	for i, row := range fixture.Enrollments {
		record("enrollments", i, svc.EnrollStudentInCourse(ctx, row.Student, row.Course))
	}
	for i, row := range fixture.Memberships {
		record("memberships", i, svc.JoinClub(ctx, row.Student, row.Club))
	}
	for i, row := range fixture.Assignments {
		record("assignments", i, svc.AssignStudentToClass(ctx, row.Student, row.Class))
	}

	lgr.Info().
		Int("students", len(fixture.Students)).
		Int("classes", len(fixture.Classes)).
		Int("courses", len(fixture.Courses)).
		Int("clubs", len(fixture.Clubs)).
		Bool("clean", finalErr == nil).
		Msg("Seed data applied")
	return finalErr
}
