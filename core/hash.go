package core

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"
)

// The canonical byte layout joins names with a newline. Names are trimmed
// single lines, so a newline can never occur inside a name and the join is
// collision-free: ["Ali", "ceBob"] and ["Alice", "Bob"] hash differently.
// This layout is frozen as part of the public protocol; verifiers in any
// language must reproduce it byte for byte.

// ComputeListCommitment computes the participant-list commitment.
// This is the value the organizer publishes before the signal exists:
// it pins the exact multiset of participants without revealing anything
// about the outcome.
//
// Formula: SHA256(name_1 + "\n" + name_2 + ... + "\n" + name_k)
// over the canonical (sorted) list, lowercase hex.
func ComputeListCommitment(canonical []string) string {
	hash := sha256.Sum256([]byte(strings.Join(canonical, "\n")))
	return fmt.Sprintf("%x", hash)
}

// DeriveSeed computes the draw digest and the shuffle seed from the
// canonical list and the revealed signal.
//
// Formula: SHA256(join(canonical, "\n") + signal)
//
// The digest is returned as lowercase hex for display and, interpreted as a
// base-256 big-endian unsigned integer, as the seed. No modular reduction is
// applied: the full 256-bit value seeds the generator, so every bit of the
// digest influences the permutation.
//
// The signal is an opaque byte string. An empty signal is legal here and
// simply contributes nothing to the hashed bytes; the surrounding protocol
// is expected to supply a non-empty revealed value.
func DeriveSeed(canonical []string, signal string) (string, *big.Int) {
	data := strings.Join(canonical, "\n") + signal
	digest := sha256.Sum256([]byte(data))
	seed := new(big.Int).SetBytes(digest[:])
	return fmt.Sprintf("%x", digest), seed
}
