package services

import (
	"context"
	"fmt"

	"github.com/yigit/campusregistry/internal/app/models"
	"github.com/yigit/campusregistry/internal/pkg/apperrors"
)

// EnrollStudentInCourse links a student and a course. Both must exist.
// Enrolling twice is a no-op.
func (s *registryServiceImpl) EnrollStudentInCourse(ctx context.Context, studentID, courseID int64) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	student, ok := s.students.FindByID(studentID)
	if !ok {
		s.logger.Warn().Int64("studentID", studentID).Int64("courseID", courseID).Msg("Enrollment of missing student")
		return fmt.Errorf("error enrolling student %d: %w", studentID, apperrors.ErrStudentNotFound)
	}
	course, ok := s.courses.FindByID(courseID)
	if !ok {
		s.logger.Warn().Int64("studentID", studentID).Int64("courseID", courseID).Msg("Enrollment in missing course")
		return fmt.Errorf("error enrolling student %d: %w", studentID, apperrors.ErrCourseNotFound)
	}

	student.CourseIDs.Add(courseID)
	course.StudentIDs.Add(studentID)

	s.logger.Debug().Int64("studentID", studentID).Int64("courseID", courseID).Msg("Student enrolled in course")
	return nil
}

// RemoveStudentFromCourse unlinks a student and a course. The course may be gone.
func (s *registryServiceImpl) RemoveStudentFromCourse(ctx context.Context, studentID, courseID int64) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	student, ok := s.students.FindByID(studentID)
	if !ok {
		s.logger.Warn().Int64("studentID", studentID).Int64("courseID", courseID).Msg("Unenrollment of missing student")
		return fmt.Errorf("error removing student %d from course: %w", studentID, apperrors.ErrStudentNotFound)
	}

	student.CourseIDs.Remove(courseID)
	if course, ok := s.courses.FindByID(courseID); ok {
		course.StudentIDs.Remove(studentID)
	}

	s.logger.Debug().Int64("studentID", studentID).Int64("courseID", courseID).Msg("Student removed from course")
	return nil
}

// JoinClub makes a student a club member. Both must exist.
func (s *registryServiceImpl) JoinClub(ctx context.Context, studentID, clubID int64) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	student, ok := s.students.FindByID(studentID)
	if !ok {
		s.logger.Warn().Int64("studentID", studentID).Int64("clubID", clubID).Msg("Missing student cannot join club")
		return fmt.Errorf("error joining club %d: %w", clubID, apperrors.ErrStudentNotFound)
	}
	club, ok := s.clubs.FindByID(clubID)
	if !ok {
		s.logger.Warn().Int64("studentID", studentID).Int64("clubID", clubID).Msg("Student cannot join missing club")
		return fmt.Errorf("error joining club %d: %w", clubID, apperrors.ErrClubNotFound)
	}

	student.ClubIDs.Add(clubID)
	club.MemberIDs.Add(studentID)

	s.logger.Debug().Int64("studentID", studentID).Int64("clubID", clubID).Msg("Student joined club")
	return nil
}

// LeaveClub ends a club membership
func (s *registryServiceImpl) LeaveClub(ctx context.Context, studentID, clubID int64) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	student, ok := s.students.FindByID(studentID)
	if !ok {
		s.logger.Warn().Int64("studentID", studentID).Int64("clubID", clubID).Msg("Missing student cannot leave club")
		return fmt.Errorf("error leaving club %d: %w", clubID, apperrors.ErrStudentNotFound)
	}

	student.ClubIDs.Remove(clubID)
	if club, ok := s.clubs.FindByID(clubID); ok {
		club.MemberIDs.Remove(studentID)
	}

	s.logger.Debug().Int64("studentID", studentID).Int64("clubID", clubID).Msg("Student left club")
	return nil
}

// AssignStudentToClass moves a student into a class, leaving any previous
// class first. Both must exist.
func (s *registryServiceImpl) AssignStudentToClass(ctx context.Context, studentID, classID int64) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	student, ok := s.students.FindByID(studentID)
	if !ok {
		s.logger.Warn().Int64("studentID", studentID).Int64("classID", classID).Msg("Assignment of missing student")
		return fmt.Errorf("error assigning student %d: %w", studentID, apperrors.ErrStudentNotFound)
	}
	class, ok := s.classes.FindByID(classID)
	if !ok {
		s.logger.Warn().Int64("studentID", studentID).Int64("classID", classID).Msg("Assignment to missing class")
		return fmt.Errorf("error assigning student %d: %w", studentID, apperrors.ErrClassNotFound)
	}

	s.assignToClass(student, class)

	s.logger.Debug().Int64("studentID", studentID).Int64("classID", classID).Msg("Student assigned to class")
	return nil
}

// UnassignStudentFromClass clears a student's class
func (s *registryServiceImpl) UnassignStudentFromClass(ctx context.Context, studentID int64) error {
	unlock, err := s.writeLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	student, ok := s.students.FindByID(studentID)
	if !ok {
		s.logger.Warn().Int64("studentID", studentID).Msg("Unassignment of missing student")
		return fmt.Errorf("error unassigning student %d: %w", studentID, apperrors.ErrStudentNotFound)
	}
	if student.ClassID == nil {
		return nil
	}

	previous := *student.ClassID
	s.leaveClass(student)

	s.logger.Debug().Int64("studentID", studentID).Int64("classID", previous).Msg("Student unassigned from class")
	return nil
}

// assignToClass points student at class and updates both rosters
func (s *registryServiceImpl) assignToClass(student *models.Student, class *models.Class) {
	if student.InClass(class.ID) {
		class.StudentIDs.Add(student.ID)
		return
	}
	s.leaveClass(student)

	classID := class.ID
	student.ClassID = &classID
	class.StudentIDs.Add(student.ID)
}

func (s *registryServiceImpl) leaveClass(student *models.Student) {
	if student.ClassID == nil {
		return
	}
	if class, ok := s.classes.FindByID(*student.ClassID); ok {
		class.StudentIDs.Remove(student.ID)
	}
	student.ClassID = nil
}
