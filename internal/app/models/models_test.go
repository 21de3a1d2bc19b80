package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIDSetAddRemove(t *testing.T) {
	t.Parallel()

	s := NewIDSet(3)
	require.True(t, s.Add(1))
	require.False(t, s.Add(1))
	require.True(t, s.Has(3))
	require.True(t, s.Remove(3))
	require.False(t, s.Remove(3))
	require.Equal(t, []int64{1}, s.Sorted())

	var nilSet IDSet
	require.False(t, nilSet.Has(1))
	require.NotNil(t, nilSet.Clone())
}

func TestIDSetEncodesSorted(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewIDSet(30, 10, 20))
	require.NoError(t, err)
	require.JSONEq(t, `[10,20,30]`, string(data))

	var decoded IDSet
	require.NoError(t, json.Unmarshal([]byte(`[5,5,6]`), &decoded))
	require.Equal(t, 2, decoded.Len())

	out, err := yaml.Marshal(map[string]IDSet{"ids": NewIDSet(2, 1)})
	require.NoError(t, err)
	require.Regexp(t, `(?s)ids:\s*- 1\s*- 2\s*$`, string(out))
}

func TestStudentCloneIsDeep(t *testing.T) {
	t.Parallel()

	classID := int64(201)
	s := NewStudent(1, "Alice", 20)
	s.ClassID = &classID
	s.CourseIDs.Add(301)

	c := s.Clone()
	*c.ClassID = 999
	c.CourseIDs.Add(302)
	c.ClubIDs.Add(101)

	require.Equal(t, int64(201), *s.ClassID)
	require.Equal(t, []int64{301}, s.CourseIDs.Sorted())
	require.Zero(t, s.ClubIDs.Len())
	require.True(t, c.InClass(999))
	require.False(t, s.InClass(999))

	var none *Student
	require.Nil(t, none.Clone())
}
