package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/angelcm/ads-insights-go/internal/models"
)

// seasonOf buckets a 0-based month index: 2-4 Spring, 5-7 Summer, 8-10
// Fall, everything else (11, 0, 1) Winter.
func seasonOf(m time.Month) string {
	idx := int(m) - 1
	switch {
	case idx >= 2 && idx <= 4:
		return "Spring"
	case idx >= 5 && idx <= 7:
		return "Summer"
	case idx >= 8 && idx <= 10:
		return "Fall"
	default:
		return "Winter"
	}
}

type seasonAcc struct {
	spendMicros int64
	conversions float64
	revenue     float64
	rows        int
}

// DetectSeasons buckets rows by calendar month into the four seasons and
// aggregates per-season totals. Rows with unparseable dates are dropped.
// AvgCampaigns divides the row counter by a fixed 3 (assumes exactly three
// months per season); kept as the documented approximation.
func DetectSeasons(rows []models.MetricsRow) map[string]models.SeasonStats {
	acc := map[string]*seasonAcc{}
	for _, r := range rows {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue
		}
		s := seasonOf(d.Month())
		a := acc[s]
		if a == nil {
			a = &seasonAcc{}
			acc[s] = a
		}
		a.spendMicros += r.CostMicros
		a.conversions += r.Conversions
		a.revenue += r.ConvValue
		a.rows++
	}

	out := make(map[string]models.SeasonStats, len(acc))
	for s, a := range acc {
		st := models.SeasonStats{
			Season:       s,
			Spend:        round2(float64(a.spendMicros) / microsPerUnit),
			Conversions:  a.conversions,
			Revenue:      round2(a.revenue),
			ROAS:         "0",
			AvgCampaigns: int(math.Round(float64(a.rows) / 3)),
		}
		if a.spendMicros > 0 {
			st.ROAS = fmt.Sprintf("%.2f", a.revenue/(float64(a.spendMicros)/microsPerUnit))
		}
		out[s] = st
	}
	return out
}
