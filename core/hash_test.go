package core

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestComputeListCommitment(t *testing.T) {
	canonical := []string{"Alice", "Bob"}

	commitment := ComputeListCommitment(canonical)

	// SHA-256 hex is 64 lowercase hex characters
	check.Equal(t, 64, len(commitment))
	for _, c := range commitment {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("ComputeListCommitment() contains non-hex character: %c", c)
		}
	}

	// Verify exact hash calculation against the frozen byte layout
	expected := fmt.Sprintf("%x", sha256.Sum256([]byte("Alice\nBob")))
	check.Equal(t, expected, commitment)

	// Pinned protocol vector
	check.Equal(t, "19f31aa76a0fd0e84e90caf3f0d0a18b787ccb4819bcb2ac4288a0c869eb1f07", commitment)
}

func TestComputeListCommitment_DelimiterPreventsCollisions(t *testing.T) {
	// The newline join keeps ["Ali","ceBob"] distinct from ["Alice","Bob"]
	c1 := ComputeListCommitment([]string{"Ali", "ceBob"})
	c2 := ComputeListCommitment([]string{"Alice", "Bob"})

	check.NotEqual(t, c1, c2)
}

func TestComputeListCommitment_DuplicateChangesCommitment(t *testing.T) {
	c1 := ComputeListCommitment([]string{"Alice", "Bob"})
	c2 := ComputeListCommitment([]string{"Alice", "Bob", "Bob"})

	check.NotEqual(t, c1, c2)
}

func TestDeriveSeed(t *testing.T) {
	canonical := []string{"Alice", "Bob"}

	digestHex, seed := DeriveSeed(canonical, "43")

	// Verify exact hash calculation against the frozen byte layout:
	// newline-joined canonical list with the signal appended directly
	digest := sha256.Sum256([]byte("Alice\nBob43"))
	check.Equal(t, fmt.Sprintf("%x", digest), digestHex)

	// The seed is the digest as a big-endian unsigned integer, full width
	check.Equal(t, 0, seed.Cmp(new(big.Int).SetBytes(digest[:])))

	// Pinned protocol vector
	check.Equal(t, "23127b469fedd6e7c17216449aab53b7458fb2333579ae2720ec2c771cf33e01", digestHex)
	check.Equal(t, "15863603766419752310706605096905781690021889546864912346325227581528014536193", seed.String())
}

func TestDeriveSeed_Deterministic(t *testing.T) {
	canonical := []string{"Alice", "Bob", "Charlie"}

	d1, s1 := DeriveSeed(canonical, "signal")
	d2, s2 := DeriveSeed(canonical, "signal")

	check.Equal(t, d1, d2)
	check.Equal(t, 0, s1.Cmp(s2))
}

func TestDeriveSeed_SignalSensitivity(t *testing.T) {
	canonical := []string{"Alice", "Bob", "Charlie"}

	d1, _ := DeriveSeed(canonical, "Signal A")
	d2, _ := DeriveSeed(canonical, "Signal B")

	check.NotEqual(t, d1, d2)
}

func TestDeriveSeed_ListSensitivity(t *testing.T) {
	d1, _ := DeriveSeed([]string{"Alice", "Bob"}, "43")
	d2, _ := DeriveSeed([]string{"Alice", "Bob", "Bob"}, "43")

	check.NotEqual(t, d1, d2)
}

func TestDeriveSeed_EmptySignalIsLegal(t *testing.T) {
	digestHex, seed := DeriveSeed([]string{"Alice", "Bob"}, "")

	check.Equal(t, fmt.Sprintf("%x", sha256.Sum256([]byte("Alice\nBob"))), digestHex)
	check.NotNil(t, seed)
}
