package split

import (
	"errors"
	"fmt"
	"math"
)

// Type identifies a split strategy.
type Type string

const (
	TypeEqual      Type = "EQUAL"
	TypeExact      Type = "EXACT"
	TypePercentage Type = "PERCENTAGE"
)

// Split is one participant's portion of an expense as submitted by the
// caller. The meaning of Value depends on the strategy: an absolute amount
// for EQUAL and EXACT, a percentage in [0,100] for PERCENTAGE.
type Split struct {
	UserID string  `json:"user_id"`
	Value  float64 `json:"value"`
}

// Strategy validates a proposed division of an expense. Strategies never
// rewrite values; converting percentages into amounts is the expense
// service's job, after validation passes.
type Strategy interface {
	// Validate checks the splits against the expense total for this strategy.
	Validate(totalAmount float64, splits []Split) error

	// Type returns the strategy's identifier.
	Type() Type
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the given type
func (f *Factory) Create(t Type) (Strategy, error) {
	switch t {
	case TypeEqual:
		return &EqualStrategy{}, nil
	case TypeExact:
		return &ExactStrategy{}, nil
	case TypePercentage:
		return &PercentageStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSplitType, t)
	}
}

// CreateFromString creates a strategy from a string type (useful for API requests)
func (f *Factory) CreateFromString(t string) (Strategy, error) {
	return f.Create(Type(t))
}

var (
	ErrEmptySplits           = errors.New("at least one split is required")
	ErrNegativeAmount        = errors.New("amounts cannot be negative")
	ErrEqualSplitMismatch    = errors.New("equal split amounts do not match the per-head share")
	ErrExactSumMismatch      = errors.New("exact split amounts must sum to the total amount")
	ErrPercentageSumMismatch = errors.New("percentages must sum to 100")
	ErrPercentageOutOfRange  = errors.New("percentage must be between 0 and 100")
	ErrUnknownSplitType      = errors.New("unknown split type")
)

// tolerance is the absolute epsilon applied to every sum/share comparison.
const tolerance = 1e-4

// validateCommon applies the checks shared by every strategy: a non-empty
// split set, a non-negative total, and non-negative values.
func validateCommon(totalAmount float64, splits []Split) error {
	if len(splits) == 0 {
		return ErrEmptySplits
	}
	if totalAmount < 0 {
		return ErrNegativeAmount
	}
	for _, s := range splits {
		if s.Value < 0 {
			return ErrNegativeAmount
		}
	}
	return nil
}

// withinTolerance reports whether a and b differ by at most the epsilon.
func withinTolerance(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}
