package split

// ExactStrategy implements the Strategy interface for exact (unequal)
// amount splits: each participant owes a specific amount and the amounts
// must sum to the expense total.
type ExactStrategy struct{}

// Type returns the split type identifier
func (s *ExactStrategy) Type() Type {
	return TypeExact
}

// Validate checks that the submitted amounts sum to the total.
func (s *ExactStrategy) Validate(totalAmount float64, splits []Split) error {
	if err := validateCommon(totalAmount, splits); err != nil {
		return err
	}

	var sum float64
	for _, sp := range splits {
		sum += sp.Value
	}
	if !withinTolerance(sum, totalAmount) {
		return ErrExactSumMismatch
	}
	return nil
}
