package nlq

import (
	"strings"

	"github.com/angelcm/ads-insights-go/internal/models"
)

// typeRule maps query vocabulary to a report category. Ordered priority
// list, case-insensitive substring test, default campaign.
type typeRule struct {
	Type     models.AnalysisType
	keywords []string
}

var typeRules = []typeRule{
	{models.AnalysisKeyword, []string{"keyword", "search term"}},
	{models.AnalysisAd, []string{"ad copy", "headline", "creative", " ads ", " ad "}},
	{models.AnalysisShopping, []string{"shopping", "product"}},
	{models.AnalysisImpressionShare, []string{"impression share", "visibility", "lost impression"}},
}

// SelectType picks the report category for a query.
func SelectType(query string) models.AnalysisType {
	// padded para que los términos de una palabra matcheen en los bordes
	q := " " + strings.ToLower(query) + " "
	for _, r := range typeRules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.Type
			}
		}
	}
	return models.AnalysisCampaign
}
