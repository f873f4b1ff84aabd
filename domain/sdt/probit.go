package sdt

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ClampBound keeps rates away from 0 and 1, where the probit is infinite.
const ClampBound = 1e-5

// Probit maps a probability in (0,1) to a standard normal z-score.
// gonum's distuv.Normal satisfies it.
type Probit interface {
	Quantile(p float64) float64
}

// Metrics is the full set of derived values for a Record.
type Metrics struct {
	HitRate        float64 `json:"hit_rate"`
	FalseAlarmRate float64 `json:"false_alarm_rate"`
	DPrime         float64 `json:"d_prime"`
	Criterion      float64 `json:"criterion"`
}

// Calculator derives d′ and C with a pluggable probit.
type Calculator struct {
	probit Probit
}

var defaultCalculator = NewCalculator(nil)

// NewCalculator returns a Calculator backed by p, or by the unit normal
// distribution when p is nil.
func NewCalculator(p Probit) *Calculator {
	if p == nil {
		p = distuv.UnitNormal
	}
	return &Calculator{probit: p}
}

// ClampRate restricts p to [ClampBound, 1-ClampBound]. NaN maps to the lower bound.
func ClampRate(p float64) float64 {
	if math.IsNaN(p) {
		return ClampBound
	}
	return math.Min(math.Max(p, ClampBound), 1-ClampBound)
}

func (c *Calculator) zScores(r Record) (zHit, zFA float64) {
	zHit = c.probit.Quantile(ClampRate(r.HitRate()))
	zFA = c.probit.Quantile(ClampRate(r.FalseAlarmRate()))
	return zHit, zFA
}

// DPrime returns Φ⁻¹(H) − Φ⁻¹(FA) over clamped rates.
func (c *Calculator) DPrime(r Record) float64 {
	zHit, zFA := c.zScores(r)
	return zHit - zFA
}

// Criterion returns −0.5 × (Φ⁻¹(H) + Φ⁻¹(FA)) over clamped rates.
func (c *Calculator) Criterion(r Record) float64 {
	zHit, zFA := c.zScores(r)
	return -0.5 * (zHit + zFA)
}

// Metrics returns both rates with d′ and C from a single pair of probit calls.
func (c *Calculator) Metrics(r Record) Metrics {
	zHit, zFA := c.zScores(r)
	return Metrics{
		HitRate:        r.HitRate(),
		FalseAlarmRate: r.FalseAlarmRate(),
		DPrime:         zHit - zFA,
		Criterion:      -0.5 * (zHit + zFA),
	}
}
