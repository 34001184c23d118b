package core

import (
	"errors"
	"math/big"
)

// ErrEmptyParticipantList is returned when no usable names remain after
// trimming and blank-line filtering. A draw over zero participants is
// meaningless, so this aborts the draw.
var ErrEmptyParticipantList = errors.New("participant list is empty")

// ErrInvalidWinnerCount is returned when the requested winner count is not
// positive. Counts larger than the participant total are clamped, not
// rejected.
var ErrInvalidWinnerCount = errors.New("winner count must be at least 1")

// DrawResult contains the complete outcome of running a draw.
// Every field is derived from the participant list and the signal; two runs
// with the same inputs produce identical results.
type DrawResult struct {
	// Participants is the canonical (sorted) list the hashes were computed
	// over, duplicates included
	Participants []string

	// Winners are the top-ranked participants in rank order (index 0 is rank 1)
	Winners []string

	// Ranking is the full deterministic ordering over every participant slot,
	// duplicates included
	Ranking []string

	// Commitment is the hash of the canonical list alone, published before
	// the signal is known
	Commitment string

	// DigestHex is the hash of the canonical list combined with the signal
	DigestHex string

	// Seed is the digest interpreted as a big-endian unsigned integer; it is
	// the sole input to the shuffle generator
	Seed *big.Int

	// TotalCount is the number of participant slots after canonicalization
	TotalCount int
}
