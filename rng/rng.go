// Package rng owns the single seeded random source a Solver run threads
// through every randomized decision: initial surveys, clause shuffling,
// WalkSAT initialization and tie-breaking, and bias tie-breaking. Callers
// should never fall back to math/rand's process-global generator.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand"
)

// New returns a *math/rand.Rand seeded deterministically from seed, unless
// seed is 0, in which case a fresh seed is drawn from the OS's entropy
// source.
func New(seed int64) *mrand.Rand {
	if seed == 0 {
		seed = freshSeed()
	}
	return mrand.New(mrand.NewSource(seed))
}

func freshSeed() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<62))
	if err != nil {
		// crypto/rand is expected to never fail on a sane OS; rather than
		// panic, fall back to a direct 8-byte read from the same source,
		// masked to 62 bits (a failed read leaves the buffer zero).
		var buf [8]byte
		_, _ = rand.Read(buf[:])
		return int64(binary.BigEndian.Uint64(buf[:]) & (1<<62 - 1))
	}
	return n.Int64()
}
