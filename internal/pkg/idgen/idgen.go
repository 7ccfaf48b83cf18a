// Package idgen issues IDs for stored worlds and subsectors.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator issues a new ID on every call.
type Generator interface {
	Generate() string
}

// UUIDGenerator issues random UUIDs, optionally behind a prefix such as
// "world".
type UUIDGenerator struct {
	prefix string
}

// NewUUID returns a UUIDGenerator. An empty prefix yields bare UUIDs.
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns prefix_<uuid>.
func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

// SequentialGenerator issues 1, 2, 3 and so on, for tests that need
// predictable IDs. It is safe for concurrent use.
type SequentialGenerator struct {
	prefix string
	last   atomic.Uint64
}

// NewSequential returns a SequentialGenerator starting at 1.
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns prefix_<n>.
func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.last.Add(1), 10))
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
