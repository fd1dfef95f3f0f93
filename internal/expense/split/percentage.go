package split

// PercentageStrategy implements the Strategy interface for percentage
// splits. Values are percentages in [0,100] and must sum to 100; the
// rewrite into absolute amounts happens downstream, after validation.
type PercentageStrategy struct{}

// Type returns the split type identifier
func (s *PercentageStrategy) Type() Type {
	return TypePercentage
}

// Validate checks that every value is a percentage and that they sum to 100.
func (s *PercentageStrategy) Validate(totalAmount float64, splits []Split) error {
	if err := validateCommon(totalAmount, splits); err != nil {
		return err
	}

	var sum float64
	for _, sp := range splits {
		if sp.Value > 100 {
			return ErrPercentageOutOfRange
		}
		sum += sp.Value
	}
	if !withinTolerance(sum, 100) {
		return ErrPercentageSumMismatch
	}
	return nil
}
