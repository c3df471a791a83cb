// Package analysis holds the pure transformations over upstream metric
// rows: period aggregation, period-over-period comparison, campaign theme
// matching and seasonal bucketing. No I/O, no shared state.
package analysis

import (
	"fmt"

	"github.com/angelcm/ads-insights-go/internal/models"
)

const microsPerUnit = 1_000_000

// totals keeps money in micros while summing to avoid float drift across
// repeated aggregation; conversion to currency units happens once, at the
// boundary.
type totals struct {
	rows        int
	spendMicros int64
	conversions float64
	clicks      int64
	revenue     float64
	impressions int64
}

func sum(rows []models.MetricsRow) totals {
	var t totals
	for _, r := range rows {
		t.spendMicros += r.CostMicros
		t.conversions += r.Conversions
		t.clicks += r.Clicks
		t.revenue += r.ConvValue
		t.impressions += r.Impressions
		t.rows++
	}
	return t
}

func (t totals) spend() float64 {
	return float64(t.spendMicros) / microsPerUnit
}

func (t totals) roas() float64 {
	if t.spendMicros == 0 {
		return 0
	}
	return t.revenue / t.spend()
}

// Aggregate reduces a row sequence into summary totals plus derived ratios.
// Single pass, order-independent. Every ratio carries an explicit zero
// guard: empty input yields ROAS "0", CTR "0%", conversion rate "0%" and
// never NaN or Infinity.
func Aggregate(rows []models.MetricsRow, label string) models.PeriodMetrics {
	t := sum(rows)
	m := models.PeriodMetrics{
		Label:          label,
		CampaignCount:  t.rows,
		Spend:          round2(t.spend()),
		Conversions:    t.conversions,
		Clicks:         t.clicks,
		Revenue:        round2(t.revenue),
		Impressions:    t.impressions,
		ROAS:           "0",
		ConversionRate: "0%",
		CTR:            "0%",
	}
	if t.spendMicros > 0 {
		m.ROAS = fmt.Sprintf("%.2f", t.roas())
	}
	if t.clicks > 0 {
		m.ConversionRate = fmt.Sprintf("%.2f%%", t.conversions/float64(t.clicks)*100)
	}
	if t.impressions > 0 {
		m.CTR = fmt.Sprintf("%.2f%%", float64(t.clicks)/float64(t.impressions)*100)
	}
	return m
}

func round2(f float64) float64 { return float64(int64(f*100+0.5)) / 100 }
