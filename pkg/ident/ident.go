// Package ident generates identifiers, colors and random values.
//
// [NewID] uses random UUIDs and is meant for production ids. [Generator]
// draws from a seeded PCG source so that demos and tests can reproduce the
// exact same sequence.
package ident

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// shortLen is the number of hex characters kept from a UUID.
const shortLen = 8

// NewID returns prefix followed by the first characters of a random UUID,
// e.g. "tip-3f2a9c1d". An empty prefix returns the short UUID alone.
func NewID(prefix string) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")[:shortLen]
	if prefix == "" {
		return s
	}
	return prefix + "-" + s
}

// Generator produces deterministic pseudo-random values.
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (g *Generator) Intn(n int) int {
	return g.rng.IntN(n)
}

// Color returns a random "#rrggbb" color string.
func (g *Generator) Color() string {
	return fmt.Sprintf("#%06x", g.rng.Uint32()&0xffffff)
}

// ID returns prefix followed by 8 hex characters from the generator. The
// output is a valid UUID-shaped suffix but carries no uniqueness guarantee
// beyond the generator's sequence.
func (g *Generator) ID(prefix string) string {
	var b [16]byte
	for i := range b {
		b[i] = byte(g.rng.Uint32())
	}
	u, _ := uuid.FromBytes(b[:])
	s := strings.ReplaceAll(u.String(), "-", "")[:shortLen]
	if prefix == "" {
		return s
	}
	return prefix + "-" + s
}
