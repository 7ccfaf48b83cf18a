// Package tables holds the fixed lookup tables of the world generation
// ruleset. Each table is keyed by a closed range of throw results or
// attribute values; looking up a key outside that range is a contract breach.
package tables

import (
	"github.com/KirkDiggler/starjumper/internal/errors"
)

// Table maps the integer keys first..first+len(values)-1 to values.
type Table[T any] struct {
	name   string
	first  int
	values []T
}

// New returns a table named name whose first value is keyed by first.
func New[T any](name string, first int, values ...T) Table[T] {
	return Table[T]{name: name, first: first, values: values}
}

// Name returns the table name used in errors.
func (t Table[T]) Name() string {
	return t.name
}

// Min returns the smallest valid key.
func (t Table[T]) Min() int {
	return t.first
}

// Max returns the largest valid key.
func (t Table[T]) Max() int {
	return t.first + len(t.values) - 1
}

// Lookup returns the value for key, or an OUT_OF_RANGE error.
func (t Table[T]) Lookup(key int) (T, error) {
	if key < t.Min() || key > t.Max() {
		var zero T
		return zero, errors.OutOfRangef("key %d outside %s table [%d, %d]", key, t.name, t.Min(), t.Max()).
			WithMeta("table", t.name).
			WithMeta("key", key)
	}
	return t.values[key-t.first], nil
}

// At returns the value for key and panics when key is outside the table.
// Generation uses At because every key it computes is in range by
// construction; a panic here means the arithmetic upstream is wrong.
func (t Table[T]) At(key int) T {
	v, err := t.Lookup(key)
	if err != nil {
		panic(err)
	}
	return v
}
