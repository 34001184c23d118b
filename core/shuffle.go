package core

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
)

// RandSource provides the pseudo-random draws consumed by Shuffle.
// This interface enables dependency injection for deterministic testing.
type RandSource interface {
	// Intn returns an integer in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// digestRand is the protocol's frozen reference generator: SHA-256 in
// counter mode over the 32-byte big-endian seed.
//
// Block i is SHA256(seed_32_bytes || counter_as_big_endian_uint64), and each
// block is consumed as four big-endian uint64 words in order. The scheme is
// part of the public protocol (see README.md): any language with SHA-256 can
// reproduce the word stream, which is the whole point of freezing it here
// instead of leaning on some standard library's unversioned PRNG internals.
type digestRand struct {
	seed [32]byte
	ctr  uint64
	buf  [32]byte
	off  int
}

// NewSeededSource returns the reference generator for the given seed.
// Panics if the seed is wider than 256 bits; seeds produced by DeriveSeed
// always fit.
func NewSeededSource(seed *big.Int) RandSource {
	dr := &digestRand{}
	seed.FillBytes(dr.seed[:])
	dr.off = len(dr.buf)
	return dr
}

// next64 returns the next big-endian uint64 word of the counter-mode stream.
func (dr *digestRand) next64() uint64 {
	if dr.off == len(dr.buf) {
		var block [40]byte
		copy(block[:32], dr.seed[:])
		binary.BigEndian.PutUint64(block[32:], dr.ctr)
		dr.ctr++
		dr.buf = sha256.Sum256(block[:])
		dr.off = 0
	}
	v := binary.BigEndian.Uint64(dr.buf[dr.off : dr.off+8])
	dr.off += 8
	return v
}

// Intn returns a uniform integer in [0, n) via rejection sampling: words at
// or above the largest 64-bit multiple of n are discarded, so the final
// reduction carries no modulo bias. Panics if n <= 0 (programmer error).
func (dr *digestRand) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("digestRand.Intn: n must be positive, got %d", n))
	}
	un := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%un
	for {
		if v := dr.next64(); v < limit {
			return int(v % un)
		}
	}
}

// Shuffle returns a deterministic permutation of the canonical list driven
// by src. The input is cloned first; the canonical order stays intact for
// hashing and display.
//
// The permutation is a descending Fisher-Yates: for i from len-1 down to 1,
// draw j uniform in [0, i] and swap. Together with the generator above this
// fixes the exact mapping from seed to ranking.
func Shuffle(canonical []string, src RandSource) []string {
	shuffled := make([]string, len(canonical))
	copy(shuffled, canonical)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
