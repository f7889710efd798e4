// Package lthashtest provides deterministic pseudo-random object
// generators for lthash's property-based tests. It is test-only: the
// Mersenne Twister it wraps is not suitable for anything
// security-sensitive, only for generating reproducible fixtures.
package lthashtest

import (
	"math/rand"

	"github.com/seehuhn/mt19937"
)

// Gen generates deterministic byte-slice "objects" and keys for
// feeding into lthash instances under test.
type Gen struct {
	rng *rand.Rand
}

// New returns a Gen seeded deterministically from seed: the same seed
// always produces the same sequence of objects, across machines and Go
// versions, so failures reproduce exactly from the seed alone.
func New(seed int64) *Gen {
	src := mt19937.New()
	src.Seed(seed)
	return &Gen{rng: rand.New(src)}
}

// Object returns a pseudo-random byte slice of length n, suitable for
// passing to Add/Remove.
func (g *Gen) Object(n int) []byte {
	b := make([]byte, n)
	g.rng.Read(b)
	return b
}

// Objects returns count pseudo-random objects, each between minLen and
// maxLen bytes long (inclusive).
func (g *Gen) Objects(count, minLen, maxLen int) [][]byte {
	objs := make([][]byte, count)
	for i := range objs {
		n := minLen
		if maxLen > minLen {
			n += g.rng.Intn(maxLen - minLen + 1)
		}
		objs[i] = g.Object(n)
	}
	return objs
}

// Key returns a pseudo-random key of length n, typically
// blake2xb.MinKeySize..blake2xb.MaxKeySize.
func (g *Gen) Key(n int) []byte { return g.Object(n) }

// Permutation returns a pseudo-random permutation of [0, n).
func (g *Gen) Permutation(n int) []int { return g.rng.Perm(n) }
