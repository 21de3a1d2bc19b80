package repositories

import (
	"sort"
)

// table is a map-backed entity table keyed by id.
// It is not safe for concurrent use; callers serialize access.
type table[T any] struct {
	rows map[int64]*T
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[int64]*T)}
}

// put inserts or replaces the row stored under id and returns the previous row
func (t *table[T]) put(id int64, row *T) (previous *T) {
	previous = t.rows[id]
	t.rows[id] = row
	return previous
}

func (t *table[T]) get(id int64) (*T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// remove deletes id and returns the removed row, or nil
func (t *table[T]) remove(id int64) *T {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	delete(t.rows, id)
	return row
}

func (t *table[T]) count() int {
	return len(t.rows)
}

// ids returns every key in ascending order
func (t *table[T]) ids() []int64 {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// all returns every row ordered by id
func (t *table[T]) all() []*T {
	ids := t.ids()
	rows := make([]*T, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, t.rows[id])
	}
	return rows
}
