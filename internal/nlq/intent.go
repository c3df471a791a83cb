package nlq

import (
	"regexp"

	"github.com/angelcm/ads-insights-go/internal/models"
)

// intentRule pairs one intent with its cue pattern. The rules are evaluated
// in order and the first match wins; no match falls back to single_period.
type intentRule struct {
	Kind models.IntentKind
	re   *regexp.Regexp
}

// The comparison cues are intentionally broader than the date resolver's
// comparison pattern, so a query can classify as comparison while resolving
// to a single interval. Callers execute the single-period path in that case.
var intentRules = []intentRule{
	{models.IntentComparison, regexp.MustCompile(`(?i)\b(compare|compared|comparison|vs|versus|than|last\s+year|previous|year\s+over\s+year|yoy)\b`)},
	{models.IntentSeasonal, regexp.MustCompile(`(?i)\b(seasonal(ity)?|season|holidays?|christmas|summer|winter|spring|fall|quarterly)\b`)},
	{models.IntentCampaignSearch, regexp.MustCompile(`(?i)(campaigns?\s+(with|containing|including|named|called|like)|"[^"]+")`)},
	{models.IntentSinglePeriod, regexp.MustCompile(`(?i)\b(trends?|over\s+time|history|track)\b`)},
}

// Classify labels a query with exactly one intent.
func Classify(query string) models.IntentKind {
	for _, r := range intentRules {
		if r.re.MatchString(query) {
			return r.Kind
		}
	}
	return models.IntentSinglePeriod
}
