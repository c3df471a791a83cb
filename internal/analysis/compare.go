package analysis

import (
	"fmt"
	"math"

	"github.com/angelcm/ads-insights-go/internal/models"
)

// significantPct is the |percentage| threshold separating "significant"
// from "modest" changes.
const significantPct = 20.0

// Compare aggregates both periods and computes per-metric deltas. A metric
// whose baseline (period 2) value is 0 is omitted from Changes entirely:
// the division is skipped, not zero-filled. Direction uses the change > 0
// boundary, so exactly-equal values report "decrease" at "0.0%".
func Compare(rows1, rows2 []models.MetricsRow, label1, label2 string) models.ComparisonResult {
	t1, t2 := sum(rows1), sum(rows2)

	res := models.ComparisonResult{
		Period1: Aggregate(rows1, label1),
		Period2: Aggregate(rows2, label2),
		Changes: map[string]models.MetricChange{},
	}

	pairs := []struct {
		name   string
		v1, v2 float64
	}{
		{"spend", t1.spend(), t2.spend()},
		{"conversions", t1.conversions, t2.conversions},
		{"clicks", float64(t1.clicks), float64(t2.clicks)},
		{"revenue", t1.revenue, t2.revenue},
	}
	for _, p := range pairs {
		if p.v2 == 0 {
			continue // sin línea base no se emite el delta
		}
		change := p.v1 - p.v2
		pct := change / p.v2 * 100
		ch := models.MetricChange{
			Absolute:   change,
			Percentage: fmt.Sprintf("%.1f%%", pct),
			Direction:  "decrease",
			Magnitude:  "modest",
		}
		if change > 0 {
			ch.Direction = "increase"
		}
		if math.Abs(pct) > significantPct {
			ch.Magnitude = "significant"
		}
		res.Changes[p.name] = ch
	}

	res.Insights = insights(res.Changes, t1, t2, label2)
	return res
}

// insights keeps the deliberate optimistic asymmetry: only conversion
// increases and ROAS improvements produce statements, never decreases.
func insights(changes map[string]models.MetricChange, t1, t2 totals, label2 string) []string {
	var out []string
	if ch, ok := changes["conversions"]; ok && ch.Direction == "increase" {
		out = append(out, fmt.Sprintf("Conversions improved by %s compared to %s", ch.Percentage, label2))
	}
	r1, r2 := t1.roas(), t2.roas()
	if r1 > r2 {
		out = append(out, fmt.Sprintf("ROAS improved by %.2f (%.2f vs %.2f)", r1-r2, r1, r2))
	}
	return out
}
