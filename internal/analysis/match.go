package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/angelcm/ads-insights-go/internal/models"
)

// themeRule is one entry of the fixed theme taxonomy: a label plus a regex
// of keyword alternatives. Evaluated in order; a campaign is emitted once
// per theme whose regex matches both the query and the campaign name.
type themeRule struct {
	Name string
	re   *regexp.Regexp
}

var themes = []themeRule{
	{"holiday", regexp.MustCompile(`(?i)(holiday|christmas|xmas|black\s*friday|cyber\s*monday|prime\s*day|thanksgiving|easter)`)},
	{"seasonal", regexp.MustCompile(`(?i)(season|summer|winter|spring|fall|autumn|back\s*to\s*school)`)},
	{"promotional", regexp.MustCompile(`(?i)(sale|promo|discount|deal|offer|clearance|blowout)`)},
	{"brand", regexp.MustCompile(`(?i)(brand|branded)`)},
	{"conversion", regexp.MustCompile(`(?i)(conversion|remarketing|retargeting|performance)`)},
}

// MatchCampaigns scores campaigns against a query and the theme taxonomy,
// sorted descending by relevance (stable, so input order breaks ties).
// Campaigns with zero token overlap are skipped even when a theme regex
// matches both sides.
func MatchCampaigns(query string, campaigns []models.MetricsRow) []models.CampaignMatch {
	var out []models.CampaignMatch
	for _, c := range campaigns {
		score := relevanceScore(query, c.CampaignName)
		if score <= 0 {
			continue
		}
		name := strings.ToLower(c.CampaignName)
		for _, th := range themes {
			if th.re.MatchString(query) && th.re.MatchString(name) {
				out = append(out, models.CampaignMatch{
					CampaignID:     c.CampaignID,
					CampaignName:   c.CampaignName,
					MatchType:      th.Name,
					RelevanceScore: score,
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RelevanceScore > out[j].RelevanceScore })
	return out
}

// relevanceScore = (query tokens with a substring hit in either direction /
// total query tokens) x 100.
func relevanceScore(query, name string) float64 {
	qTokens := strings.Fields(strings.ToLower(query))
	nTokens := strings.Fields(strings.ToLower(name))
	if len(qTokens) == 0 {
		return 0
	}
	hits := 0
	for _, qt := range qTokens {
		for _, nt := range nTokens {
			if strings.Contains(nt, qt) || strings.Contains(qt, nt) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(qTokens)) * 100
}

// UniqueCampaigns collapses a row sequence (one row per campaign/date/etc.)
// down to one representative row per campaign, keeping first appearance
// order. Identity is the campaign ID when present, the name otherwise.
func UniqueCampaigns(rows []models.MetricsRow) []models.MetricsRow {
	seen := map[string]struct{}{}
	var out []models.MetricsRow
	for _, r := range rows {
		id := r.CampaignID
		if id == "" {
			id = r.CampaignName
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, r)
	}
	return out
}
