package sdt

// Record is an immutable set of outcome counts for one observer or condition.
// Counts are float64 so that corrected or weighted tallies can be stored
// as-is; New performs no validation.
type Record struct {
	hits              float64
	misses            float64
	falseAlarms       float64
	correctRejections float64
}

// New stores the four counts verbatim.
func New(hits, misses, falseAlarms, correctRejections float64) Record {
	return Record{
		hits:              hits,
		misses:            misses,
		falseAlarms:       falseAlarms,
		correctRejections: correctRejections,
	}
}

// FromCounts builds a Record from integer tallies.
func FromCounts(hits, misses, falseAlarms, correctRejections int) Record {
	return New(float64(hits), float64(misses), float64(falseAlarms), float64(correctRejections))
}

// Hits is the count of signal trials answered "present".
func (r Record) Hits() float64 { return r.hits }

// Misses is the count of signal trials answered "absent".
func (r Record) Misses() float64 { return r.misses }

// FalseAlarms is the count of noise trials answered "present".
func (r Record) FalseAlarms() float64 { return r.falseAlarms }

// CorrectRejections is the count of noise trials answered "absent".
func (r Record) CorrectRejections() float64 { return r.correctRejections }

// SignalTrials is the number of signal-present trials.
func (r Record) SignalTrials() float64 { return r.hits + r.misses }

// NoiseTrials is the number of signal-absent trials.
func (r Record) NoiseTrials() float64 { return r.falseAlarms + r.correctRejections }

// HitRate returns hits / (hits + misses), or 0 unless hits + misses is positive.
func (r Record) HitRate() float64 {
	return safeRate(r.hits, r.SignalTrials())
}

// FalseAlarmRate returns falseAlarms / (falseAlarms + correctRejections),
// or 0 unless the noise trial count is positive.
func (r Record) FalseAlarmRate() float64 {
	return safeRate(r.falseAlarms, r.NoiseTrials())
}

// DPrime returns the sensitivity index using the standard normal probit.
func (r Record) DPrime() float64 {
	return defaultCalculator.DPrime(r)
}

// Criterion returns the response bias index using the standard normal probit.
// Positive values are conservative, negative values liberal.
func (r Record) Criterion() float64 {
	return defaultCalculator.Criterion(r)
}

// Metrics returns all four derived values.
func (r Record) Metrics() Metrics {
	return defaultCalculator.Metrics(r)
}

// A rate is only defined over a positive trial count; zero, negative and NaN
// denominators all give 0.
func safeRate(num, denom float64) float64 {
	if !(denom > 0) {
		return 0
	}
	return num / denom
}
