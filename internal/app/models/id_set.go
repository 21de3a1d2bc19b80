package models

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"
)

// IDSet is an unordered set of entity ids.
// The zero value is ready for reads; use NewIDSet or Add to populate it.
type IDSet map[int64]struct{}

// NewIDSet creates a set holding the given ids
func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id and reports whether it was newly added
func (s IDSet) Add(id int64) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Remove deletes id and reports whether it was present
func (s IDSet) Remove(id int64) bool {
	if _, ok := s[id]; !ok {
		return false
	}
	delete(s, id)
	return true
}

// Has reports whether id is in the set
func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set
func (s IDSet) Len() int {
	return len(s)
}

// Clone returns an independent copy. A nil set clones to an empty set.
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the ids in ascending order
func (s IDSet) Sorted() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MarshalJSON encodes the set as a sorted array
func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of ids
func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}

// MarshalYAML encodes the set as a sorted sequence
func (s IDSet) MarshalYAML() (interface{}, error) {
	return s.Sorted(), nil
}

// UnmarshalYAML decodes a YAML sequence of ids
func (s *IDSet) UnmarshalYAML(value *yaml.Node) error {
	var ids []int64
	if err := value.Decode(&ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}
