package drawapi

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/opendraw/opendraw/core"
)

// AlgorithmID identifies the frozen draw algorithm a record was produced
// with: SHA-256 commitment hashing, SHA-256 counter-mode generator, and a
// descending Fisher-Yates shuffle. Verifiers refuse records carrying any
// other tag rather than silently computing a different permutation.
const AlgorithmID = "sha256-ctr-fy/v1"

// DrawRecord is the published, re-verifiable form of a completed draw.
// It carries every input a third party needs to recompute the result
// (canonical participants, signal, requested winner count) alongside the
// outputs being claimed (commitment, digest, seed, winners).
type DrawRecord struct {
	// ID uniquely identifies this record; it carries no protocol meaning
	ID string `json:"id" cbor:"id"`

	// CreatedAt is when the draw was run; informational only
	CreatedAt time.Time `json:"created_at" cbor:"created_at"`

	// Algorithm is the frozen algorithm tag, always AlgorithmID for records
	// produced by this tool
	Algorithm string `json:"algorithm" cbor:"algorithm"`

	// Participants is the canonical (sorted) list, duplicates included
	Participants []string `json:"participants" cbor:"participants"`

	// Signal is the revealed public signal, verbatim
	Signal string `json:"signal" cbor:"signal"`

	// WinnerCount is the requested top-N before clamping
	WinnerCount int `json:"winner_count" cbor:"winner_count"`

	// Commitment is the pre-reveal participant-list hash, lowercase hex
	Commitment string `json:"commitment" cbor:"commitment"`

	// Digest is the list+signal hash, lowercase hex
	Digest string `json:"digest" cbor:"digest"`

	// Seed is the digest as a decimal big integer
	Seed string `json:"seed" cbor:"seed"`

	// Winners are the claimed top-N in rank order
	Winners []string `json:"winners" cbor:"winners"`
}

// NewDrawRecord builds a record from a completed draw.
// The signal and requested winner count are restated here because the
// result only carries derived values; a verifier replays from the inputs.
func NewDrawRecord(result *core.DrawResult, signal string, winnerCount int) *DrawRecord {
	return &DrawRecord{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Algorithm:    AlgorithmID,
		Participants: append([]string(nil), result.Participants...),
		Signal:       signal,
		WinnerCount:  winnerCount,
		Commitment:   result.Commitment,
		Digest:       result.DigestHex,
		Seed:         result.Seed.String(),
		Winners:      append([]string(nil), result.Winners...),
	}
}

// SeedInt parses the record's decimal seed field.
func (r *DrawRecord) SeedInt() (*big.Int, error) {
	seed, ok := new(big.Int).SetString(r.Seed, 10)
	if !ok {
		return nil, fmt.Errorf("malformed seed %q: not a decimal integer", r.Seed)
	}
	return seed, nil
}

// cborEnc uses canonical encode options so two independent encoders emit
// byte-identical records for the same content.
var cborEnc = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// EncodeJSON serializes the record as indented JSON, the human-published form.
func (r *DrawRecord) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode draw record: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a JSON draw record.
func DecodeJSON(data []byte) (*DrawRecord, error) {
	var rec DrawRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode draw record: %w", err)
	}
	return &rec, nil
}

// EncodeCBOR serializes the record in canonical CBOR, the compact archival form.
func (r *DrawRecord) EncodeCBOR() ([]byte, error) {
	data, err := cborEnc.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode draw record: %w", err)
	}
	return data, nil
}

// DecodeCBOR parses a CBOR draw record.
func DecodeCBOR(data []byte) (*DrawRecord, error) {
	var rec DrawRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode draw record: %w", err)
	}
	return &rec, nil
}
