package nlq

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/angelcm/ads-insights-go/internal/models"
)

// Patrones en orden de prioridad: el primero que matchea gana.
var (
	reYearOverYear = regexp.MustCompile(`(?i)(same\s+time\s+last\s+year|year\s+over\s+year|yoy|vs\.?\s+last\s+year|compared?\s+(to|with)\s+last\s+year|last\s+year)`)
	rePrimeDay     = regexp.MustCompile(`(?i)prime\s+day`)
	reFromTo       = regexp.MustCompile(`(?i)from\s+(\d{4}-\d{2}-\d{2})\s+to\s+(\d{4}-\d{2}-\d{2})`)
	reMonthYear    = regexp.MustCompile(`(?i)\b([a-z]+)\s+(\d{4})\b`)
)

// primeDayRadius is the half-width of the fixed mid-year holiday window.
const primeDayRadius = 7

// ResolveDates parses a free-text query into one or two labeled intervals.
// Unmatched queries degrade silently to a trailing 30-day window; nothing
// here ever fails.
func ResolveDates(query string, now time.Time) models.DateResolution {
	if reYearOverYear.MatchString(query) {
		if rePrimeDay.MatchString(query) {
			cur := primeDayWindow(now.Year())
			prev := primeDayWindow(now.Year() - 1)
			return models.DateResolution{Primary: cur, Comparison: &prev, Kind: models.RangeComparison}
		}
		cur := monthInterval(now.Year(), now.Month())
		prev := monthInterval(now.Year()-1, now.Month())
		return models.DateResolution{Primary: cur, Comparison: &prev, Kind: models.RangeComparison}
	}

	if m := reFromTo.FindStringSubmatch(query); m != nil {
		start, _ := time.Parse("2006-01-02", m[1])
		end, _ := time.Parse("2006-01-02", m[2])
		iv := models.DateInterval{Start: start, End: end, Label: m[1] + " to " + m[2]}
		return models.DateResolution{Primary: iv, Kind: models.RangeSingle}
	}

	if m := reMonthYear.FindStringSubmatch(query); m != nil {
		year, _ := strconv.Atoi(m[2])
		iv := monthInterval(year, monthFromName(m[1]))
		iv.Label = strings.TrimSpace(m[0]) // la etiqueta conserva el texto original
		return models.DateResolution{Primary: iv, Kind: models.RangeSingle}
	}

	end := dayUTC(now)
	iv := models.DateInterval{Start: end.AddDate(0, 0, -30), End: end, Label: "Last 30 Days"}
	return models.DateResolution{Primary: iv, Kind: models.RangeSingle}
}

// monthInterval covers the full calendar month; the end day comes from the
// calendar itself (28/29/30/31, leap years included).
func monthInterval(year int, m time.Month) models.DateInterval {
	start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return models.DateInterval{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("%s %d", m.String(), year),
	}
}

func primeDayWindow(year int) models.DateInterval {
	center := time.Date(year, time.July, 15, 0, 0, 0, 0, time.UTC)
	return models.DateInterval{
		Start: center.AddDate(0, 0, -primeDayRadius),
		End:   center.AddDate(0, 0, primeDayRadius),
		Label: fmt.Sprintf("Prime Day %d", year),
	}
}

var monthAbbrevs = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// monthFromName accepts full names and 3-letter abbreviations, case
// insensitive. An unrecognized name resolves to January; the upstream
// behavior is kept as-is instead of being turned into an error.
func monthFromName(name string) time.Month {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) > 3 {
		n = n[:3]
	}
	if m, ok := monthAbbrevs[n]; ok {
		return m
	}
	return time.January
}

func dayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
