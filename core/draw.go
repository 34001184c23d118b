package core

import "fmt"

// RunDraw executes the core draw logic: canonicalize → commit → derive → shuffle.
//
// Parameters:
//   - names: Raw participant names in any order; duplicates are distinct slots
//   - signal: The revealed public signal, treated as an opaque string
//   - n: Requested winner count; clamped to the participant total
//
// Returns:
//   - DrawResult with winners, the full ranking, commitment, digest and seed
//   - ErrInvalidWinnerCount when n <= 0, ErrEmptyParticipantList when no
//     usable names remain
//
// The computation is pure and single-pass: identical inputs always produce
// an identical result, and permuting the input names changes nothing.
func RunDraw(names []string, signal string, n int) (*DrawResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWinnerCount, n)
	}

	canonical, err := Canonicalize(names)
	if err != nil {
		return nil, err
	}

	commitment := ComputeListCommitment(canonical)
	digestHex, seed := DeriveSeed(canonical, signal)
	ranking := Shuffle(canonical, NewSeededSource(seed))

	if n > len(ranking) {
		n = len(ranking)
	}
	winners := make([]string, n)
	copy(winners, ranking[:n])

	return &DrawResult{
		Participants: canonical,
		Winners:      winners,
		Ranking:      ranking,
		Commitment:   commitment,
		DigestHex:    digestHex,
		Seed:         seed,
		TotalCount:   len(ranking),
	}, nil
}
