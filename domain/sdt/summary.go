package sdt

import (
	"github.com/montanaflynn/stats"

	"sigdetect/internal/errors"
)

// Pool sums counts across records, treating them as one observer.
func Pool(records ...Record) Record {
	var pooled Record
	for _, r := range records {
		pooled.hits += r.hits
		pooled.misses += r.misses
		pooled.falseAlarms += r.falseAlarms
		pooled.correctRejections += r.correctRejections
	}
	return pooled
}

// Distribution describes one metric across a set of records.
type Distribution struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary holds descriptive statistics of d′ and C across records.
type Summary struct {
	Count     int          `json:"count"`
	DPrime    Distribution `json:"d_prime"`
	Criterion Distribution `json:"criterion"`
}

// Summarize describes d′ and C across records. StdDev is the sample
// standard deviation and is 0 for a single record.
func Summarize(records []Record) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, errors.InvalidArgument("cannot summarize an empty record set")
	}

	dPrimes := make([]float64, len(records))
	criteria := make([]float64, len(records))
	for i, r := range records {
		m := r.Metrics()
		dPrimes[i] = m.DPrime
		criteria[i] = m.Criterion
	}

	dist, err := describe(dPrimes)
	if err != nil {
		return Summary{}, errors.Wrap(err, "summarizing d-prime")
	}
	crit, err := describe(criteria)
	if err != nil {
		return Summary{}, errors.Wrap(err, "summarizing criterion")
	}

	return Summary{
		Count:     len(records),
		DPrime:    dist,
		Criterion: crit,
	}, nil
}

func describe(data []float64) (Distribution, error) {
	var d Distribution
	var err error

	if d.Mean, err = stats.Mean(data); err != nil {
		return d, err
	}
	if d.Median, err = stats.Median(data); err != nil {
		return d, err
	}
	if d.Min, err = stats.Min(data); err != nil {
		return d, err
	}
	if d.Max, err = stats.Max(data); err != nil {
		return d, err
	}
	if len(data) > 1 {
		if d.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return d, err
		}
	}
	return d, nil
}
