package validation

import (
	"fmt"

	"github.com/opendraw/opendraw/core"
	"github.com/opendraw/opendraw/drawapi"
)

// VerifyDrawRecord independently re-verifies a published draw record:
// - Participant-list commitment matches the record's participants
// - Draw digest matches participants + signal
// - Seed is the digest interpreted as a big-endian integer
// - Winner list matches the deterministic shuffle for that seed
//
// The verifier trusts nothing in the record beyond the raw inputs
// (participants, signal, winner count); every output field is recomputed
// from scratch and compared.
//
// Returns:
//   - DrawValidationResult with detailed results (call result.IsValid() to
//     check overall status)
//   - error if verification cannot be performed (e.g., malformed record)
func VerifyDrawRecord(rec *drawapi.DrawRecord) (*DrawValidationResult, error) {
	if rec == nil {
		return nil, fmt.Errorf("draw record is nil")
	}

	result := &DrawValidationResult{}

	if rec.Algorithm != drawapi.AlgorithmID {
		result.ValidationDetails = append(result.ValidationDetails,
			fmt.Sprintf("Unsupported algorithm %q: this verifier implements %q", rec.Algorithm, drawapi.AlgorithmID))
		return result, nil
	}
	result.AlgorithmSupported = true
	result.ValidationDetails = append(result.ValidationDetails,
		fmt.Sprintf("Algorithm supported: %s", rec.Algorithm))

	recomputed, err := core.RunDraw(rec.Participants, rec.Signal, rec.WinnerCount)
	if err != nil {
		return nil, fmt.Errorf("recompute draw: %w", err)
	}

	result.CommitmentValid = validateCommitment(rec, recomputed, result)
	result.DigestValid = validateDigest(rec, recomputed, result)
	result.SeedValid = validateSeed(rec, recomputed, result)
	result.WinnersValid = validateWinners(rec, recomputed, result)

	return result, nil
}

func validateCommitment(rec *drawapi.DrawRecord, recomputed *core.DrawResult, result *DrawValidationResult) bool {
	if rec.Commitment == recomputed.Commitment {
		result.ValidationDetails = append(result.ValidationDetails,
			fmt.Sprintf("Commitment matches participant list: %s", rec.Commitment))
		return true
	}
	result.ValidationDetails = append(result.ValidationDetails,
		fmt.Sprintf("Commitment mismatch: record has %s, participants hash to %s", rec.Commitment, recomputed.Commitment))
	return false
}

func validateDigest(rec *drawapi.DrawRecord, recomputed *core.DrawResult, result *DrawValidationResult) bool {
	if rec.Digest == recomputed.DigestHex {
		result.ValidationDetails = append(result.ValidationDetails,
			fmt.Sprintf("Digest matches participants + signal: %s", rec.Digest))
		return true
	}
	result.ValidationDetails = append(result.ValidationDetails,
		fmt.Sprintf("Digest mismatch: record has %s, recomputed %s", rec.Digest, recomputed.DigestHex))
	return false
}

func validateSeed(rec *drawapi.DrawRecord, recomputed *core.DrawResult, result *DrawValidationResult) bool {
	seed, err := rec.SeedInt()
	if err != nil {
		result.ValidationDetails = append(result.ValidationDetails,
			fmt.Sprintf("Seed unparseable: %v", err))
		return false
	}
	if seed.Cmp(recomputed.Seed) == 0 {
		result.ValidationDetails = append(result.ValidationDetails, "Seed matches digest")
		return true
	}
	result.ValidationDetails = append(result.ValidationDetails,
		fmt.Sprintf("Seed mismatch: record has %s, digest yields %s", seed.String(), recomputed.Seed.String()))
	return false
}

func validateWinners(rec *drawapi.DrawRecord, recomputed *core.DrawResult, result *DrawValidationResult) bool {
	if len(rec.Winners) != len(recomputed.Winners) {
		result.ValidationDetails = append(result.ValidationDetails,
			fmt.Sprintf("Winner count mismatch: record lists %d, shuffle yields %d", len(rec.Winners), len(recomputed.Winners)))
		return false
	}
	for i := range rec.Winners {
		if rec.Winners[i] != recomputed.Winners[i] {
			result.ValidationDetails = append(result.ValidationDetails,
				fmt.Sprintf("Winner mismatch at rank %d: record lists %q, shuffle yields %q", i+1, rec.Winners[i], recomputed.Winners[i]))
			return false
		}
	}
	result.ValidationDetails = append(result.ValidationDetails,
		fmt.Sprintf("All %d winners match the deterministic shuffle", len(rec.Winners)))
	return true
}
