package main

import (
	"encoding/json"
	"fmt"
	"io"

	"sigdetect/adapters/counts"
	"sigdetect/domain/sdt"
	"sigdetect/internal/config"
)

type printer struct {
	w    io.Writer
	json bool
	prec int
}

func newPrinter(w io.Writer, cfg *config.Config) *printer {
	return &printer{w: w, json: cfg.Output == config.OutputJSON, prec: cfg.Precision}
}

func (p *printer) encode(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) f(v float64) string {
	return fmt.Sprintf("%.*f", p.prec, v)
}

func (p *printer) metrics(label string, m sdt.Metrics) error {
	if p.json {
		return p.encode(m)
	}
	if label != "" {
		fmt.Fprintf(p.w, "%s\n", label)
	}
	fmt.Fprintf(p.w, "Hit rate: %s\n", p.f(m.HitRate))
	fmt.Fprintf(p.w, "False-alarm rate: %s\n", p.f(m.FalseAlarmRate))
	fmt.Fprintf(p.w, "d': %s\n", p.f(m.DPrime))
	fmt.Fprintf(p.w, "Criterion: %s\n", p.f(m.Criterion))
	return nil
}

func (p *printer) demo(rec sdt.Record) error {
	if p.json {
		return p.encode(map[string]float64{
			"d_prime":   rec.DPrime(),
			"criterion": rec.Criterion(),
		})
	}
	fmt.Fprintf(p.w, "d': %s\n", p.f(rec.DPrime()))
	fmt.Fprintf(p.w, "Criterion: %s\n", p.f(rec.Criterion()))
	return nil
}

type rowResult struct {
	ID string `json:"id"`
	sdt.Metrics
}

func (p *printer) table(rows []counts.Row, pooled sdt.Metrics, summary sdt.Summary) error {
	results := make([]rowResult, len(rows))
	for i, row := range rows {
		results[i] = rowResult{ID: row.ID, Metrics: row.Record.Metrics()}
	}

	if p.json {
		return p.encode(struct {
			Rows    []rowResult `json:"rows"`
			Pooled  sdt.Metrics `json:"pooled"`
			Summary sdt.Summary `json:"summary"`
		}{results, pooled, summary})
	}

	fmt.Fprintf(p.w, "%-16s %10s %10s %10s %10s\n", "id", "H", "FA", "d'", "C")
	for _, r := range results {
		fmt.Fprintf(p.w, "%-16s %10s %10s %10s %10s\n", r.ID, p.f(r.HitRate), p.f(r.FalseAlarmRate), p.f(r.DPrime), p.f(r.Criterion))
	}
	fmt.Fprintf(p.w, "%-16s %10s %10s %10s %10s\n", "(pooled)", p.f(pooled.HitRate), p.f(pooled.FalseAlarmRate), p.f(pooled.DPrime), p.f(pooled.Criterion))

	fmt.Fprintf(p.w, "\nRecords: %d\n", summary.Count)
	for _, d := range []struct {
		name string
		dist sdt.Distribution
	}{{"d'", summary.DPrime}, {"C", summary.Criterion}} {
		fmt.Fprintf(p.w, "%-3s mean %s  median %s  sd %s  min %s  max %s\n",
			d.name, p.f(d.dist.Mean), p.f(d.dist.Median), p.f(d.dist.StdDev), p.f(d.dist.Min), p.f(d.dist.Max))
	}
	return nil
}
