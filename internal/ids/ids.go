// Package ids hands out game identifiers behind an interface so tests can
// pin them.
package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator creates unique identifiers
type Generator interface {
	New() string
}

// RandomGenerator issues random (version 4) UUIDs
type RandomGenerator struct{}

// NewRandomGenerator creates a generator backed by google/uuid
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// New returns a fresh UUID string
func (g *RandomGenerator) New() string {
	return uuid.NewString()
}

// SequenceGenerator issues prefix-1, prefix-2, ... in call order
type SequenceGenerator struct {
	prefix string
	next   atomic.Int64
}

// NewSequenceGenerator creates a deterministic generator
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// New returns the next identifier in the sequence
func (g *SequenceGenerator) New() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}
