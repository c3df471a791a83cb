// Package nlq turns free-text reporting questions into structured query
// parameters: date ranges, intent, campaign filters and report category.
// All parsing is ordered first-match pattern cascades; ambiguity degrades
// to documented defaults instead of failing.
package nlq

import (
	"time"

	"github.com/angelcm/ads-insights-go/internal/models"
)

// Parse runs the four extractors over one query. Pure; safe for concurrent
// use.
func Parse(text string, now time.Time) models.ParsedQuery {
	return models.ParsedQuery{
		Intent:       Classify(text),
		Dates:        ResolveDates(text, now),
		Filters:      ExtractFilters(text),
		AnalysisType: SelectType(text),
	}
}
