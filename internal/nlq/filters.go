package nlq

import "regexp"

var (
	reQuoted         = regexp.MustCompile(`"([^"]+)"`)
	reAfterKeyword   = regexp.MustCompile(`(?i)campaigns?\s+(?:with|containing|including)\s+(\S+)`)
	reBeforeCampaign = regexp.MustCompile(`(?i)(\S+)\s+campaigns?\b`)
)

// ExtractFilters pulls campaign-name filters out of a query: every quoted
// substring, plus the first token after "campaigns with/containing/including"
// or, failing that, the token right before "campaign(s)". De-duplicated,
// order preserved, no case or punctuation normalization.
func ExtractFilters(query string) []string {
	var out []string
	seen := map[string]struct{}{}
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, m := range reQuoted.FindAllStringSubmatch(query, -1) {
		add(m[1])
	}

	if m := reAfterKeyword.FindStringSubmatch(query); m != nil {
		add(m[1])
	} else if m := reBeforeCampaign.FindStringSubmatch(query); m != nil {
		add(m[1])
	}
	return out
}
