package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreate(t *testing.T) {
	f := NewFactory()

	tests := []struct {
		name     string
		input    Type
		wantType Type
		wantErr  error
	}{
		{name: "equal", input: TypeEqual, wantType: TypeEqual},
		{name: "exact", input: TypeExact, wantType: TypeExact},
		{name: "percentage", input: TypePercentage, wantType: TypePercentage},
		{name: "unknown", input: Type("HALFSIES"), wantErr: ErrUnknownSplitType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := f.Create(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, s.Type())
		})
	}
}

func TestFactoryCreateFromString(t *testing.T) {
	f := NewFactory()

	s, err := f.CreateFromString("PERCENTAGE")
	require.NoError(t, err)
	assert.Equal(t, TypePercentage, s.Type())

	_, err = f.CreateFromString("")
	assert.ErrorIs(t, err, ErrUnknownSplitType)
}

func TestEqualStrategyValidate(t *testing.T) {
	s := &EqualStrategy{}

	tests := []struct {
		name    string
		total   float64
		splits  []Split
		wantErr error
	}{
		{
			name:   "three equal shares",
			total:  900,
			splits: []Split{{UserID: "u1", Value: 300}, {UserID: "u2", Value: 300}, {UserID: "u3", Value: 300}},
		},
		{
			name:   "single participant",
			total:  42.5,
			splits: []Split{{UserID: "u1", Value: 42.5}},
		},
		{
			name:   "share within tolerance",
			total:  100,
			splits: []Split{{UserID: "u1", Value: 33.3334}, {UserID: "u2", Value: 33.3333}, {UserID: "u3", Value: 33.3333}},
		},
		{
			name:    "one share off",
			total:   900,
			splits:  []Split{{UserID: "u1", Value: 300.1}, {UserID: "u2", Value: 300}, {UserID: "u3", Value: 299.9}},
			wantErr: ErrEqualSplitMismatch,
		},
		{
			name:    "empty split set",
			total:   900,
			splits:  nil,
			wantErr: ErrEmptySplits,
		},
		{
			name:    "negative total",
			total:   -10,
			splits:  []Split{{UserID: "u1", Value: -10}},
			wantErr: ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate(tt.total, tt.splits)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExactStrategyValidate(t *testing.T) {
	s := &ExactStrategy{}

	tests := []struct {
		name    string
		total   float64
		splits  []Split
		wantErr error
	}{
		{
			name:   "amounts sum to total",
			total:  500,
			splits: []Split{{UserID: "u1", Value: 400}, {UserID: "u2", Value: 100}},
		},
		{
			name:   "sum within tolerance",
			total:  100,
			splits: []Split{{UserID: "u1", Value: 66.66665}, {UserID: "u2", Value: 33.33340}},
		},
		{
			name:    "sum short of total",
			total:   500,
			splits:  []Split{{UserID: "u1", Value: 400}, {UserID: "u2", Value: 99.99}},
			wantErr: ErrExactSumMismatch,
		},
		{
			name:    "sum over total",
			total:   500,
			splits:  []Split{{UserID: "u1", Value: 400}, {UserID: "u2", Value: 100.5}},
			wantErr: ErrExactSumMismatch,
		},
		{
			name:    "negative amount",
			total:   500,
			splits:  []Split{{UserID: "u1", Value: 600}, {UserID: "u2", Value: -100}},
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "empty split set",
			total:   500,
			splits:  []Split{},
			wantErr: ErrEmptySplits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate(tt.total, tt.splits)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPercentageStrategyValidate(t *testing.T) {
	s := &PercentageStrategy{}

	tests := []struct {
		name    string
		total   float64
		splits  []Split
		wantErr error
	}{
		{
			name:   "fifty fifty",
			total:  200,
			splits: []Split{{UserID: "u1", Value: 50}, {UserID: "u2", Value: 50}},
		},
		{
			name:   "uneven percentages",
			total:  1000,
			splits: []Split{{UserID: "u1", Value: 70}, {UserID: "u2", Value: 20}, {UserID: "u3", Value: 10}},
		},
		{
			name:    "sum under 100",
			total:   200,
			splits:  []Split{{UserID: "u1", Value: 50}, {UserID: "u2", Value: 49.99}},
			wantErr: ErrPercentageSumMismatch,
		},
		{
			name:    "percentage above 100",
			total:   200,
			splits:  []Split{{UserID: "u1", Value: 150}},
			wantErr: ErrPercentageOutOfRange,
		},
		{
			name:    "negative percentage",
			total:   200,
			splits:  []Split{{UserID: "u1", Value: 120}, {UserID: "u2", Value: -20}},
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "empty split set",
			total:   200,
			splits:  nil,
			wantErr: ErrEmptySplits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate(tt.total, tt.splits)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
