package models

// Club represents a student club
type Club struct {
	ID        int64  `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	MemberIDs IDSet  `json:"memberIds" yaml:"memberIds"`
}

// NewClub creates a club with no members
func NewClub(id int64, name string) *Club {
	return &Club{ID: id, Name: name, MemberIDs: IDSet{}}
}

// Clone returns a deep copy of the club
func (c *Club) Clone() *Club {
	if c == nil {
		return nil
	}
	out := *c
	out.MemberIDs = c.MemberIDs.Clone()
	return &out
}
