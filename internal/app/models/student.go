package models

// Student is a registry student together with its forward references
type Student struct {
	ID        int64  `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Age       uint32 `json:"age" yaml:"age"`
	ClassID   *int64 `json:"classId,omitempty" yaml:"classId,omitempty"` // nil when unassigned
	CourseIDs IDSet  `json:"courseIds" yaml:"courseIds"`
	ClubIDs   IDSet  `json:"clubIds" yaml:"clubIds"`
}

// NewStudent creates a student with empty relationship sets
func NewStudent(id int64, name string, age uint32) *Student {
	return &Student{
		ID:        id,
		Name:      name,
		Age:       age,
		CourseIDs: IDSet{},
		ClubIDs:   IDSet{},
	}
}

// InClass reports whether the student is assigned to classID
func (s *Student) InClass(classID int64) bool {
	return s.ClassID != nil && *s.ClassID == classID
}

// Clone returns a deep copy of the student
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	out := *s
	if s.ClassID != nil {
		classID := *s.ClassID
		out.ClassID = &classID
	}
	out.CourseIDs = s.CourseIDs.Clone()
	out.ClubIDs = s.ClubIDs.Clone()
	return &out
}
