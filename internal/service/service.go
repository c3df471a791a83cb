// Package service orchestrates the core flow: parse a free-text query,
// fetch rows through the injected executor, run the right analysis and
// wrap the result in a response envelope.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/angelcm/ads-insights-go/internal/analysis"
	"github.com/angelcm/ads-insights-go/internal/gads"
	"github.com/angelcm/ads-insights-go/internal/memory"
	"github.com/angelcm/ads-insights-go/internal/models"
	"github.com/angelcm/ads-insights-go/internal/nlq"
	"github.com/angelcm/ads-insights-go/internal/obs"
)

type Service struct {
	exec gads.Executor
	mem  memory.Log
	log  *slog.Logger
}

func New(exec gads.Executor, mem memory.Log, log *slog.Logger) *Service {
	return &Service{exec: exec, mem: mem, log: log}
}

// Envelope is the uniform response shape for every query path.
type Envelope struct {
	Summary         string             `json:"summary"`
	Insights        []string           `json:"insights"`
	Recommendations []string           `json:"recommendations"`
	Data            any                `json:"data"`
	Parsed          models.ParsedQuery `json:"parsed"`
	MemoryID        string             `json:"memory_id,omitempty"`
}

// SearchResult is the output of SearchCampaigns.
type SearchResult struct {
	Matches    []models.CampaignMatch `json:"matches"`
	TotalFound int                    `json:"total_found"`
	Insights   []string               `json:"insights"`
}

// ProcessQuery parses text and dispatches to the matching execution path.
// The resolved date range is authoritative: a comparison-classified query
// whose range resolved to a single interval runs the single-period path.
func (s *Service) ProcessQuery(ctx context.Context, accountID, text string, now time.Time) (*Envelope, error) {
	parsed := nlq.Parse(text, now)
	obs.QueriesParsed.WithLabelValues(string(parsed.Intent)).Inc()

	var env *Envelope
	var err error
	switch {
	case parsed.Intent == models.IntentComparison && parsed.Dates.Kind == models.RangeComparison:
		env, err = s.comparisonEnvelope(ctx, accountID, parsed)
	case parsed.Intent == models.IntentSeasonal:
		env, err = s.seasonalEnvelope(ctx, accountID, parsed)
	case parsed.Intent == models.IntentCampaignSearch:
		env, err = s.searchEnvelope(ctx, accountID, text, parsed)
	default:
		env, err = s.singlePeriodEnvelope(ctx, accountID, parsed)
	}
	if err != nil {
		return nil, err
	}
	env.Parsed = parsed
	s.remember(accountID, env)
	return env, nil
}

// ComparePeriods fetches both periods concurrently and compares them.
// Fail-fast: if either side fails the whole comparison fails, no partial
// result. The two fetches may reflect different upstream snapshot times.
func (s *Service) ComparePeriods(ctx context.Context, accountID string, p1, p2 models.DateInterval, t models.AnalysisType, campaignFilter string) (*models.ComparisonResult, error) {
	var rows1, rows2 []models.MetricsRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows1, err = s.exec.Search(gctx, accountID, gads.ReportQuery(t, p1, campaignFilter))
		return err
	})
	g.Go(func() error {
		var err error
		rows2, err = s.exec.Search(gctx, accountID, gads.ReportQuery(t, p2, campaignFilter))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	res := analysis.Compare(rows1, rows2, p1.Label, p2.Label)
	return &res, nil
}

// SearchCampaigns fetches the period's campaigns and ranks them against
// the search text.
func (s *Service) SearchCampaigns(ctx context.Context, accountID, searchText string, dateRange models.DateInterval) (*SearchResult, error) {
	rows, err := s.exec.Search(ctx, accountID, gads.ReportQuery(models.AnalysisCampaign, dateRange, ""))
	if err != nil {
		return nil, err
	}
	campaigns := analysis.UniqueCampaigns(rows)
	matches := analysis.MatchCampaigns(searchText, campaigns)

	res := &SearchResult{Matches: matches, TotalFound: len(matches)}
	res.Insights = append(res.Insights,
		fmt.Sprintf("Found %d of %d campaigns matching your search in %s", len(matches), len(campaigns), dateRange.Label))
	if len(matches) > 0 {
		res.Insights = append(res.Insights,
			fmt.Sprintf("Best match: %q (%s, %.0f%% relevance)", matches[0].CampaignName, matches[0].MatchType, matches[0].RelevanceScore))
	}
	return res, nil
}

func (s *Service) comparisonEnvelope(ctx context.Context, accountID string, parsed models.ParsedQuery) (*Envelope, error) {
	res, err := s.ComparePeriods(ctx, accountID, parsed.Dates.Primary, *parsed.Dates.Comparison, parsed.AnalysisType, firstFilter(parsed.Filters))
	if err != nil {
		return nil, err
	}
	return &Envelope{
		Summary:         fmt.Sprintf("Compared %s against %s", res.Period1.Label, res.Period2.Label),
		Insights:        res.Insights,
		Recommendations: comparisonRecommendations(res),
		Data:            res,
	}, nil
}

func (s *Service) seasonalEnvelope(ctx context.Context, accountID string, parsed models.ParsedQuery) (*Envelope, error) {
	rows, err := s.exec.Search(ctx, accountID, gads.ReportQuery(parsed.AnalysisType, parsed.Dates.Primary, firstFilter(parsed.Filters)))
	if err != nil {
		return nil, err
	}
	seasons := analysis.DetectSeasons(rows)
	env := &Envelope{
		Summary:         fmt.Sprintf("Seasonal breakdown for %s across %d seasons", parsed.Dates.Primary.Label, len(seasons)),
		Recommendations: seasonalRecommendations(seasons),
		Data:            seasons,
	}
	for _, name := range []string{"Spring", "Summer", "Fall", "Winter"} {
		st, ok := seasons[name]
		if !ok {
			continue
		}
		env.Insights = append(env.Insights,
			fmt.Sprintf("%s: spend %.2f, revenue %.2f, ROAS %s", st.Season, st.Spend, st.Revenue, st.ROAS))
	}
	return env, nil
}

func (s *Service) searchEnvelope(ctx context.Context, accountID, text string, parsed models.ParsedQuery) (*Envelope, error) {
	res, err := s.SearchCampaigns(ctx, accountID, text, parsed.Dates.Primary)
	if err != nil {
		return nil, err
	}
	env := &Envelope{
		Summary:  fmt.Sprintf("Campaign search over %s", parsed.Dates.Primary.Label),
		Insights: res.Insights,
		Data:     res,
	}
	if len(res.Matches) == 0 {
		env.Recommendations = append(env.Recommendations, "No campaigns matched; try quoting part of the campaign name.")
	} else {
		env.Recommendations = append(env.Recommendations,
			fmt.Sprintf("Review the %d matched campaigns before changing budgets.", len(res.Matches)))
	}
	return env, nil
}

func (s *Service) singlePeriodEnvelope(ctx context.Context, accountID string, parsed models.ParsedQuery) (*Envelope, error) {
	rows, err := s.exec.Search(ctx, accountID, gads.ReportQuery(parsed.AnalysisType, parsed.Dates.Primary, firstFilter(parsed.Filters)))
	if err != nil {
		return nil, err
	}
	pm := analysis.Aggregate(rows, parsed.Dates.Primary.Label)
	env := &Envelope{
		Summary: fmt.Sprintf("%s: %d rows, spend %.2f, revenue %.2f", pm.Label, pm.CampaignCount, pm.Spend, pm.Revenue),
		Insights: []string{
			fmt.Sprintf("ROAS %s, CTR %s, conversion rate %s", pm.ROAS, pm.CTR, pm.ConversionRate),
		},
		Recommendations: singlePeriodRecommendations(pm),
		Data:            pm,
	}
	return env, nil
}

// remember logs the lead recommendation so an outcome can be attached
// later. Failures are logged, never fatal for the response.
func (s *Service) remember(accountID string, env *Envelope) {
	if len(env.Recommendations) == 0 {
		return
	}
	id, err := s.mem.Record(accountID, env.Recommendations[0])
	if err != nil {
		s.log.Warn("memory record failed", slog.String("err", err.Error()))
		return
	}
	env.MemoryID = id
}

func firstFilter(filters []string) string {
	if len(filters) == 0 {
		return ""
	}
	return filters[0]
}
