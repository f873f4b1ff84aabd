package sdt

import (
	"math"

	"sigdetect/internal/errors"
)

// NewStrict is New with fail-fast validation: every count must be finite
// and non-negative. The returned error carries errors.CodeInvalidArgument.
func NewStrict(hits, misses, falseAlarms, correctRejections float64) (Record, error) {
	r := New(hits, misses, falseAlarms, correctRejections)
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate reports the first count that is negative, NaN or infinite.
func (r Record) Validate() error {
	return r.check(true)
}

// CheckFinite reports the first NaN or infinite count and lets negative
// counts through. Rates of a record that passes are never NaN.
func (r Record) CheckFinite() error {
	return r.check(false)
}

func (r Record) check(nonNegative bool) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"hits", r.hits},
		{"misses", r.misses},
		{"false_alarms", r.falseAlarms},
		{"correct_rejections", r.correctRejections},
	}
	for _, f := range fields {
		switch {
		case math.IsNaN(f.value), math.IsInf(f.value, 0):
			return errors.Newf(errors.CodeInvalidArgument, "%s must be finite, got %v", f.name, f.value)
		case nonNegative && f.value < 0:
			return errors.Newf(errors.CodeInvalidArgument, "%s must be non-negative, got %v", f.name, f.value)
		}
	}
	return nil
}
