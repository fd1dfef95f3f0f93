package split

// EqualStrategy implements the Strategy interface for equal splits.
//
// The caller is expected to have pre-computed the per-head share; this
// strategy only checks that every submitted value matches total/count.
type EqualStrategy struct{}

// Type returns the split type identifier
func (s *EqualStrategy) Type() Type {
	return TypeEqual
}

// Validate checks that every split carries exactly the per-head share.
func (s *EqualStrategy) Validate(totalAmount float64, splits []Split) error {
	if err := validateCommon(totalAmount, splits); err != nil {
		return err
	}

	share := totalAmount / float64(len(splits))
	for _, sp := range splits {
		if !withinTolerance(sp.Value, share) {
			return ErrEqualSplitMismatch
		}
	}
	return nil
}
