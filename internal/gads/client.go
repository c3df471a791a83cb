package gads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/angelcm/ads-insights-go/internal/models"
	"github.com/angelcm/ads-insights-go/internal/obs"
)

// Executor runs one search against one customer account. Implementations
// return the row sequence or an error; the core never retries.
type Executor interface {
	Search(ctx context.Context, accountID, query string) ([]models.MetricsRow, error)
}

// UpstreamError carries the platform's failure message verbatim plus its
// structured error details when present.
type UpstreamError struct {
	Message string
	Details []string
}

func (e *UpstreamError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + " (" + strings.Join(e.Details, "; ") + ")"
}

// Client is the HTTP implementation of Executor.
type Client struct {
	baseURL  string
	devToken string
	httpc    *http.Client
	limiter  *rate.Limiter
	log      *slog.Logger
}

// NewClient builds a search client with a request timeout and a
// client-side rate limiter (qps; burst = ceil(qps), at least 1).
func NewClient(baseURL, devToken string, timeout time.Duration, qps float64, log *slog.Logger) *Client {
	if qps <= 0 {
		qps = 5
	}
	burst := int(qps)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		devToken: devToken,
		httpc:    &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(qps), burst),
		log:      log,
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

// Wire shapes: every field is optional, missing numerics read as 0.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Campaign *struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"campaign"`
	Segments *struct {
		Date         string `json:"date"`
		DayOfWeek    string `json:"dayOfWeek"`
		Device       string `json:"device"`
		ProductTitle string `json:"productTitle"`
	} `json:"segments"`
	Metrics *struct {
		Impressions      int64   `json:"impressions"`
		Clicks           int64   `json:"clicks"`
		CostMicros       int64   `json:"costMicros"`
		Conversions      float64 `json:"conversions"`
		ConversionsValue float64 `json:"conversionsValue"`
	} `json:"metrics"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Details []struct {
			Reason string `json:"reason"`
		} `json:"details"`
	} `json:"error"`
}

// Search issues a single attempt (no retry, no backoff — failures surface
// to the caller as-is) and decodes the row sequence.
func (c *Client) Search(ctx context.Context, accountID, query string) ([]models.MetricsRow, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.baseURL, accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.devToken != "" {
		req.Header.Set("developer-token", c.devToken)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	obs.UpstreamLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		obs.UpstreamRequests.WithLabelValues("error").Inc()
		return nil, &UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()
	obs.UpstreamRequests.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.decodeError(resp)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, &UpstreamError{Message: "malformed search response: " + err.Error()}
	}

	rows := make([]models.MetricsRow, 0, len(sr.Results))
	for _, r := range sr.Results {
		rows = append(rows, toRow(r))
	}
	c.log.Debug("ads search", slog.String("account", accountID), slog.Int("rows", len(rows)))
	return rows, nil
}

func toRow(r searchResult) models.MetricsRow {
	var row models.MetricsRow
	if r.Campaign != nil {
		if r.Campaign.ID != 0 {
			row.CampaignID = strconv.FormatInt(r.Campaign.ID, 10)
		}
		row.CampaignName = r.Campaign.Name
	}
	if r.Segments != nil {
		row.Date = r.Segments.Date
		row.DayOfWeek = r.Segments.DayOfWeek
		row.Device = r.Segments.Device
		row.ProductTitle = r.Segments.ProductTitle
	}
	if r.Metrics != nil {
		row.Impressions = r.Metrics.Impressions
		row.Clicks = r.Metrics.Clicks
		row.CostMicros = r.Metrics.CostMicros
		row.Conversions = r.Metrics.Conversions
		row.ConvValue = r.Metrics.ConversionsValue
	}
	return row
}

func (c *Client) decodeError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var er errorResponse
	if json.Unmarshal(b, &er) == nil && er.Error.Message != "" {
		details := make([]string, 0, len(er.Error.Details))
		for _, d := range er.Error.Details {
			if d.Reason != "" {
				details = append(details, d.Reason)
			}
		}
		return &UpstreamError{Message: er.Error.Message, Details: details}
	}
	return &UpstreamError{Message: fmt.Sprintf("non-2xx: %d body=%s", resp.StatusCode, string(b))}
}
