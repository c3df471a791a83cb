package service

import (
	"fmt"

	"github.com/angelcm/ads-insights-go/internal/models"
)

// Recommendation heuristics are deterministic so responses stay stable for
// identical inputs (the memory log depends on that when matching outcomes).

func comparisonRecommendations(res *models.ComparisonResult) []string {
	var out []string
	if ch, ok := res.Changes["conversions"]; ok && ch.Direction == "increase" && ch.Magnitude == "significant" {
		out = append(out, "Scale the campaigns driving the conversion lift while performance holds.")
	}
	spend, spendOK := res.Changes["spend"]
	revenue, revOK := res.Changes["revenue"]
	if spendOK && revOK && spend.Direction == "increase" && revenue.Direction == "decrease" {
		out = append(out, "Spend grew while revenue fell; review budget allocation across campaigns.")
	}
	if len(out) == 0 {
		out = append(out, fmt.Sprintf("Keep %s and %s under observation for another cycle.", res.Period1.Label, res.Period2.Label))
	}
	return out
}

func seasonalRecommendations(seasons map[string]models.SeasonStats) []string {
	if len(seasons) == 0 {
		return []string{"Not enough data to detect seasonal patterns; widen the date range."}
	}
	best, ok := "", false
	var bestRevenue float64
	for _, name := range []string{"Spring", "Summer", "Fall", "Winter"} {
		st, exists := seasons[name]
		if !exists {
			continue
		}
		if !ok || st.Revenue > bestRevenue {
			best, bestRevenue, ok = name, st.Revenue, true
		}
	}
	return []string{fmt.Sprintf("Front-load budget ahead of %s, historically the strongest season.", best)}
}

func singlePeriodRecommendations(pm models.PeriodMetrics) []string {
	if pm.CampaignCount == 0 {
		return []string{"No rows for this period; check the account id and date range."}
	}
	if pm.ROAS == "0" {
		return []string{"No revenue attributed this period; verify conversion tracking."}
	}
	return []string{fmt.Sprintf("Spend for %s is concentrated in %d rows; review the top spenders first.", pm.Label, pm.CampaignCount)}
}
