package validation

// DrawValidationResult contains the outcome of re-verifying a draw record.
// Each field covers one published claim; ValidationDetails accumulates a
// human-readable audit trail of every comparison made.
type DrawValidationResult struct {
	AlgorithmSupported bool
	CommitmentValid    bool
	DigestValid        bool
	SeedValid          bool
	WinnersValid       bool
	ValidationDetails  []string
}

// IsValid returns true if every verification check passed.
func (r *DrawValidationResult) IsValid() bool {
	return r.AlgorithmSupported && r.CommitmentValid && r.DigestValid && r.SeedValid && r.WinnersValid
}
