// Package gads builds and executes searches against the advertising
// platform's query API. Queries are composed as structured values and only
// serialized to query text at the wire boundary.
package gads

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/angelcm/ads-insights-go/internal/models"
)

// Query is a structured search request: fields, resource, conditions and
// ordering. Build serializes it; nothing interpolates raw user text into
// the query outside the escaped condition helpers.
type Query struct {
	fields   []string
	resource string
	conds    []string
	orderBy  string
	limit    int
}

func NewQuery(resource string) *Query {
	return &Query{resource: resource}
}

func (q *Query) Select(fields ...string) *Query {
	q.fields = append(q.fields, fields...)
	return q
}

func (q *Query) Where(cond string) *Query {
	q.conds = append(q.conds, cond)
	return q
}

// WhereDateBetween restricts rows to the interval, inclusive on both ends.
func (q *Query) WhereDateBetween(iv models.DateInterval) *Query {
	return q.Where(fmt.Sprintf("segments.date BETWEEN '%s' AND '%s'",
		iv.Start.Format("2006-01-02"), iv.End.Format("2006-01-02")))
}

// WhereNameContains adds a case-insensitive campaign-name filter. The
// filter text is escaped, never spliced in raw.
func (q *Query) WhereNameContains(filter string) *Query {
	return q.Where(fmt.Sprintf("campaign.name LIKE '%%%s%%'", escape(filter)))
}

func (q *Query) OrderBy(expr string) *Query {
	q.orderBy = expr
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Build serializes the request to query text.
func (q *Query) Build() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(q.fields, ", "))
	b.WriteString(" FROM ")
	b.WriteString(q.resource)
	if len(q.conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.conds, " AND "))
	}
	if q.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.orderBy)
	}
	if q.limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.limit))
	}
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// metricFields are requested by every report shape.
var metricFields = []string{
	"metrics.impressions",
	"metrics.clicks",
	"metrics.cost_micros",
	"metrics.conversions",
	"metrics.conversions_value",
}

// ReportQuery composes the pre-built report shape for an analysis type over
// a date range, optionally filtered by campaign name.
func ReportQuery(t models.AnalysisType, iv models.DateInterval, campaignFilter string) string {
	var q *Query
	switch t {
	case models.AnalysisKeyword:
		q = NewQuery("keyword_view").
			Select("ad_group_criterion.keyword.text", "campaign.id", "campaign.name", "segments.date")
	case models.AnalysisAd:
		q = NewQuery("ad_group_ad").
			Select("ad_group_ad.ad.id", "campaign.id", "campaign.name", "segments.date", "segments.device")
	case models.AnalysisShopping:
		q = NewQuery("shopping_performance_view").
			Select("segments.product_title", "campaign.id", "campaign.name", "segments.date")
	case models.AnalysisImpressionShare:
		q = NewQuery("campaign").
			Select("campaign.id", "campaign.name", "segments.date", "metrics.search_impression_share")
	default:
		q = NewQuery("campaign").
			Select("campaign.id", "campaign.name", "segments.date", "segments.day_of_week")
	}
	q.Select(metricFields...)
	q.WhereDateBetween(iv)
	if campaignFilter != "" {
		q.WhereNameContains(campaignFilter)
	}
	return q.OrderBy("metrics.cost_micros DESC").Build()
}
