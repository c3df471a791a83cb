package models

import "time"

// MetricsRow is one reporting record returned by the Ads query API.
// Every field is upstream-provided and untrusted: all of them are optional
// and numeric fields default to 0 when absent. Cost arrives in micros
// (stored integer = real amount x 1,000,000).
type MetricsRow struct {
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Date         string  `json:"date"` // YYYY-MM-DD
	DayOfWeek    string  `json:"day_of_week,omitempty"`
	Device       string  `json:"device,omitempty"`
	ProductTitle string  `json:"product_title,omitempty"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	CostMicros   int64   `json:"cost_micros"`
	Conversions  float64 `json:"conversions"`
	ConvValue    float64 `json:"conversions_value"`
}

// DateInterval is a labeled calendar range. Start <= End is not validated
// on parse; the resolver only emits well-ordered intervals by construction.
type DateInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

type IntentKind string

const (
	IntentComparison     IntentKind = "comparison"
	IntentSeasonal       IntentKind = "seasonal"
	IntentCampaignSearch IntentKind = "campaign_search"
	IntentSinglePeriod   IntentKind = "single_period"
)

const (
	RangeSingle     = "single"
	RangeComparison = "comparison"
)

// DateResolution is the output of the date-range resolver. Comparison is
// nil unless Kind == RangeComparison.
type DateResolution struct {
	Primary    DateInterval  `json:"primary"`
	Comparison *DateInterval `json:"comparison,omitempty"`
	Kind       string        `json:"kind"`
}

type AnalysisType string

const (
	AnalysisKeyword         AnalysisType = "keyword"
	AnalysisAd              AnalysisType = "ad"
	AnalysisShopping        AnalysisType = "shopping"
	AnalysisImpressionShare AnalysisType = "impressionShare"
	AnalysisCampaign        AnalysisType = "campaign"
)

// ParsedQuery combines intent, dates, filters and analysis type for one
// free-text query. Exactly one intent is active; the classifier and the
// date resolver can disagree (the classifier casts a wider net), callers
// treat the resolved range as authoritative for execution.
type ParsedQuery struct {
	Intent       IntentKind     `json:"intent"`
	Dates        DateResolution `json:"date_ranges"`
	Filters      []string       `json:"filters,omitempty"`
	AnalysisType AnalysisType   `json:"analysis_type"`
}

// PeriodMetrics is computed on demand from a row sequence and discarded
// after the response is sent. Ratios are fixed-precision strings at the
// boundary ("0" / "0%" on divide-by-zero), never NaN or Infinity.
type PeriodMetrics struct {
	Label          string  `json:"label"`
	CampaignCount  int     `json:"campaign_count"`
	Spend          float64 `json:"spend"`
	Conversions    float64 `json:"conversions"`
	Clicks         int64   `json:"clicks"`
	Revenue        float64 `json:"revenue"`
	Impressions    int64   `json:"impressions"`
	ROAS           string  `json:"roas"`
	ConversionRate string  `json:"conversion_rate"`
	CTR            string  `json:"ctr"`
}

// MetricChange describes one metric's movement between two periods.
// Direction follows the change > 0 boundary: exactly-equal values report
// "decrease" with "0.0%".
type MetricChange struct {
	Absolute   float64 `json:"absolute"`
	Percentage string  `json:"percentage"`
	Direction  string  `json:"direction"` // increase | decrease
	Magnitude  string  `json:"magnitude"` // significant | modest
}

// ComparisonResult is the output of a two-period comparison. Metrics whose
// baseline (period 2) value is 0 are omitted from Changes entirely.
type ComparisonResult struct {
	Period1  PeriodMetrics           `json:"period1"`
	Period2  PeriodMetrics           `json:"period2"`
	Changes  map[string]MetricChange `json:"changes"`
	Insights []string                `json:"insights"`
}

// CampaignMatch is one campaign scored against a search query. Ordered
// descending by RelevanceScore (0..100); a campaign may appear once per
// matching theme.
type CampaignMatch struct {
	CampaignID     string  `json:"campaign_id,omitempty"`
	CampaignName   string  `json:"campaign_name"`
	MatchType      string  `json:"match_type"`
	RelevanceScore float64 `json:"relevance_score"`
}

// SeasonStats is the per-season aggregate of the seasonal detector.
// AvgCampaigns divides the row counter by a fixed 3 (months per season);
// it is an approximation, not a distinct-campaign count.
type SeasonStats struct {
	Season       string  `json:"season"`
	Spend        float64 `json:"spend"`
	Conversions  float64 `json:"conversions"`
	Revenue      float64 `json:"revenue"`
	ROAS         string  `json:"roas"`
	AvgCampaigns int     `json:"avg_campaigns"`
}
