// Package sdt computes signal detection theory metrics for a binary
// detection task from the four outcome counts of a yes/no experiment.
//
// A Record holds hits, misses, false alarms and correct rejections and
// derives four quantities on demand:
//
//   - Hit rate H: hits / (hits + misses)
//   - False-alarm rate FA: falseAlarms / (falseAlarms + correctRejections)
//   - Sensitivity d′: Φ⁻¹(H) − Φ⁻¹(FA)
//   - Criterion C: −0.5 × (Φ⁻¹(H) + Φ⁻¹(FA))
//
// Rates with an empty denominator are 0. Before the probit transform both
// rates are clamped into [ClampBound, 1−ClampBound] so d′ and C stay finite
// for perfect or null performance.
//
// # Usage
//
//	rec := sdt.New(5, 2, 8, 2)
//	fmt.Printf("d' = %.4f, C = %.4f\n", rec.DPrime(), rec.Criterion())
package sdt
