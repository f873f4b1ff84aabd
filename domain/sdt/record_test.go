package sdt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestRecord_ReferenceScenario(t *testing.T) {
	rec := New(5, 2, 8, 2)

	assert.InDelta(t, 5.0/7.0, rec.HitRate(), 1e-12)
	assert.InDelta(t, 0.8, rec.FalseAlarmRate(), 1e-12)

	zHit := distuv.UnitNormal.Quantile(5.0 / 7.0)
	zFA := distuv.UnitNormal.Quantile(0.8)
	assert.InDelta(t, zHit-zFA, rec.DPrime(), 1e-12)
	assert.InDelta(t, -0.5*(zHit+zFA), rec.Criterion(), 1e-12)

	assert.InDelta(t, -0.27567, rec.DPrime(), 1e-4)
	assert.InDelta(t, -0.70379, rec.Criterion(), 1e-4)
}

func TestRecord_AllZeroCounts(t *testing.T) {
	rec := New(0, 0, 0, 0)

	assert.Equal(t, 0.0, rec.HitRate())
	assert.Equal(t, 0.0, rec.FalseAlarmRate())

	d := rec.DPrime()
	c := rec.Criterion()
	assert.False(t, math.IsNaN(d) || math.IsInf(d, 0), "d' should be finite, got %v", d)
	assert.False(t, math.IsNaN(c) || math.IsInf(c, 0), "criterion should be finite, got %v", c)

	// Both rates clamp to the same lower bound.
	assert.Equal(t, 0.0, d)
	assert.InDelta(t, -distuv.UnitNormal.Quantile(ClampBound), c, 1e-12)
	assert.InDelta(t, 4.2649, c, 1e-3)
}

func TestRecord_RateFormulas(t *testing.T) {
	cases := []struct {
		name            string
		rec             Record
		hitRate, faRate float64
	}{
		{"typical", New(30, 10, 5, 45), 0.75, 0.1},
		{"perfect hits", New(5, 0, 1, 1), 1, 0.5},
		{"no hits", New(0, 9, 0, 3), 0, 0},
		{"no signal trials", New(0, 0, 2, 6), 0, 0.25},
		{"no noise trials", New(3, 1, 0, 0), 0.75, 0},
		{"fractional counts", New(2.5, 2.5, 0.5, 1.5), 0.5, 0.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.hitRate, tc.rec.HitRate(), 1e-12)
			assert.InDelta(t, tc.faRate, tc.rec.FalseAlarmRate(), 1e-12)
		})
	}
}

func TestRecord_RatesWithinUnitInterval(t *testing.T) {
	for h := 0; h <= 6; h++ {
		for m := 0; m <= 6; m++ {
			rec := FromCounts(h, m, m, h)
			assert.GreaterOrEqual(t, rec.HitRate(), 0.0)
			assert.LessOrEqual(t, rec.HitRate(), 1.0)
			assert.GreaterOrEqual(t, rec.FalseAlarmRate(), 0.0)
			assert.LessOrEqual(t, rec.FalseAlarmRate(), 1.0)
		}
	}
}

func TestRecord_PerfectHitRateIsFinite(t *testing.T) {
	for _, fa := range []Record{New(5, 0, 0, 10), New(5, 0, 3, 7), New(5, 0, 10, 0)} {
		d := fa.DPrime()
		require.False(t, math.IsInf(d, 0), "d' infinite for %+v", fa)
		require.False(t, math.IsNaN(d), "d' NaN for %+v", fa)
	}

	rec := New(5, 0, 0, 10)
	assert.InDelta(t, 2*distuv.UnitNormal.Quantile(1-ClampBound), rec.DPrime(), 1e-6)
	assert.Greater(t, rec.DPrime(), 8.0)
}

func TestRecord_DPrimeMonotonic(t *testing.T) {
	// hit rate increases with hits, false-alarm rate held at 0.3
	prev := math.Inf(-1)
	for hits := 0; hits <= 10; hits++ {
		d := FromCounts(hits, 10-hits, 3, 7).DPrime()
		assert.Greater(t, d, prev, "d' should increase with hit rate (hits=%d)", hits)
		prev = d
	}

	// false-alarm rate increases, hit rate held at 0.7
	prev = math.Inf(1)
	for fa := 0; fa <= 10; fa++ {
		d := FromCounts(7, 3, fa, 10-fa).DPrime()
		assert.Less(t, d, prev, "d' should decrease with false-alarm rate (fa=%d)", fa)
		prev = d
	}
}

func TestRecord_CriterionUnbiased(t *testing.T) {
	rec := New(10, 10, 4, 4)

	require.Equal(t, 0.5, rec.HitRate())
	require.Equal(t, 0.5, rec.FalseAlarmRate())
	assert.InDelta(t, 0.0, rec.Criterion(), 1e-15)
	assert.InDelta(t, 0.0, rec.DPrime(), 1e-15)
}

func TestRecord_CriterionSign(t *testing.T) {
	conservative := New(2, 8, 1, 9)
	liberal := New(9, 1, 8, 2)

	assert.Greater(t, conservative.Criterion(), 0.0)
	assert.Less(t, liberal.Criterion(), 0.0)
}

func TestRecord_Idempotent(t *testing.T) {
	rec := New(7, 3, 2, 8)

	first := rec.Metrics()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, rec.Metrics())
		assert.Equal(t, math.Float64bits(first.DPrime), math.Float64bits(rec.DPrime()))
		assert.Equal(t, math.Float64bits(first.Criterion), math.Float64bits(rec.Criterion()))
	}
}

func TestRecord_PermissiveConstruction(t *testing.T) {
	rec := New(-3, 1, 2, -1)

	assert.Equal(t, -3.0, rec.Hits())
	assert.Equal(t, 1.0, rec.Misses())
	assert.Equal(t, 2.0, rec.FalseAlarms())
	assert.Equal(t, -1.0, rec.CorrectRejections())
	assert.Equal(t, -2.0, rec.SignalTrials())
	assert.Equal(t, 1.0, rec.NoiseTrials())
}

func TestRecord_MetricsMatchesAccessors(t *testing.T) {
	rec := New(12, 4, 3, 13)
	m := rec.Metrics()

	assert.Equal(t, rec.HitRate(), m.HitRate)
	assert.Equal(t, rec.FalseAlarmRate(), m.FalseAlarmRate)
	assert.Equal(t, rec.DPrime(), m.DPrime)
	assert.Equal(t, rec.Criterion(), m.Criterion)
}

func TestRecord_RateRequiresPositiveTrialCount(t *testing.T) {
	rec := New(-3, 1, 1, -2)

	assert.Equal(t, 0.0, rec.HitRate())
	assert.Equal(t, 0.0, rec.FalseAlarmRate())

	nan := New(math.NaN(), 2, 4, math.NaN())
	assert.Equal(t, 0.0, nan.HitRate())
	assert.Equal(t, 0.0, nan.FalseAlarmRate())
	assert.Equal(t, 0.0, nan.DPrime())
	assert.InDelta(t, -distuv.UnitNormal.Quantile(ClampBound), nan.Criterion(), 1e-12)
}
