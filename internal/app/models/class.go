package models

// Class is a homeroom class; StudentIDs is its roster
type Class struct {
	ID         int64  `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	StudentIDs IDSet  `json:"studentIds" yaml:"studentIds"`
}

// NewClass creates a class with an empty roster
func NewClass(id int64, name string) *Class {
	return &Class{ID: id, Name: name, StudentIDs: IDSet{}}
}

// Clone returns a deep copy of the class
func (c *Class) Clone() *Class {
	if c == nil {
		return nil
	}
	out := *c
	out.StudentIDs = c.StudentIDs.Clone()
	return &out
}
