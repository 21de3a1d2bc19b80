package models

// Course represents a course students can enroll in
type Course struct {
	ID         int64  `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	StudentIDs IDSet  `json:"studentIds" yaml:"studentIds"` // enrolled students
}

// NewCourse creates a course with no enrolled students
func NewCourse(id int64, name string) *Course {
	return &Course{ID: id, Name: name, StudentIDs: IDSet{}}
}

// Clone returns a deep copy of the course
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	out := *c
	out.StudentIDs = c.StudentIDs.Clone()
	return &out
}
