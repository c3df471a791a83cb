package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelcm/ads-insights-go/internal/gads"
	"github.com/angelcm/ads-insights-go/internal/memory"
	"github.com/angelcm/ads-insights-go/internal/models"
	"github.com/angelcm/ads-insights-go/internal/service"
	"github.com/angelcm/ads-insights-go/internal/utils"
)

type queryRequest struct {
	AccountID string `json:"account_id"`
	Query     string `json:"query"`
}

type intervalPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

type compareRequest struct {
	AccountID      string          `json:"account_id"`
	Period1        intervalPayload `json:"period1"`
	Period2        intervalPayload `json:"period2"`
	AnalysisType   string          `json:"analysis_type"`
	CampaignFilter string          `json:"campaign_filter"`
}

type searchRequest struct {
	AccountID  string `json:"account_id"`
	SearchText string `json:"search_text"`
	From       string `json:"from"`
	To         string `json:"to"`
}

type outcomeRequest struct {
	Outcome string `json:"outcome"`
}

func NewRouter(log *slog.Logger, svc *service.Service, mem memory.Log, allowedOrigins []string) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(utils.CORS(allowedOrigins))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Post("/api/query", func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, 400, "invalid JSON body", "")
			return
		}
		if req.AccountID == "" || req.Query == "" {
			writeError(w, 400, "account_id and query are required", "")
			return
		}
		env, err := svc.ProcessQuery(r.Context(), req.AccountID, req.Query, time.Now())
		if err != nil {
			writeUpstream(w, err)
			return
		}
		writeJSON(w, env)
	})

	mux.Post("/api/compare", func(w http.ResponseWriter, r *http.Request) {
		var req compareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, 400, "invalid JSON body", "")
			return
		}
		p1, err1 := toInterval(req.Period1)
		p2, err2 := toInterval(req.Period2)
		if req.AccountID == "" || err1 != nil || err2 != nil {
			writeError(w, 400, "account_id and two periods (YYYY-MM-DD) are required", "")
			return
		}
		t := models.AnalysisType(req.AnalysisType)
		if t == "" {
			t = models.AnalysisCampaign
		}
		res, err := svc.ComparePeriods(r.Context(), req.AccountID, p1, p2, t, req.CampaignFilter)
		if err != nil {
			writeUpstream(w, err)
			return
		}
		writeJSON(w, res)
	})

	mux.Post("/api/search", func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, 400, "invalid JSON body", "")
			return
		}
		iv, err := toInterval(intervalPayload{Start: req.From, End: req.To, Label: req.From + " to " + req.To})
		if req.AccountID == "" || req.SearchText == "" || err != nil {
			writeError(w, 400, "account_id, search_text, from and to are required", "")
			return
		}
		res, err := svc.SearchCampaigns(r.Context(), req.AccountID, req.SearchText, iv)
		if err != nil {
			writeUpstream(w, err)
			return
		}
		writeJSON(w, res)
	})

	mux.Post("/api/memory/{id}/outcome", func(w http.ResponseWriter, r *http.Request) {
		var req outcomeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Outcome == "" {
			writeError(w, 400, "outcome is required", "")
			return
		}
		id := chi.URLParam(r, "id")
		if err := mem.RecordOutcome(id, req.Outcome); err != nil {
			if errors.Is(err, memory.ErrNotFound) {
				writeError(w, 404, "unknown recommendation id", "")
				return
			}
			writeError(w, 500, err.Error(), "")
			return
		}
		writeJSON(w, map[string]any{"recorded": id})
	})

	return mux
}

func toInterval(p intervalPayload) (models.DateInterval, error) {
	start, err := time.Parse("2006-01-02", p.Start)
	if err != nil {
		return models.DateInterval{}, err
	}
	end, err := time.Parse("2006-01-02", p.End)
	if err != nil {
		return models.DateInterval{}, err
	}
	label := p.Label
	if label == "" {
		label = p.Start + " to " + p.End
	}
	return models.DateInterval{Start: start, End: end, Label: label}, nil
}

// writeUpstream surfaces the platform's message verbatim plus a short
// hint. Upstream failures map to 502; the core performs no retries.
func writeUpstream(w http.ResponseWriter, err error) {
	var ue *gads.UpstreamError
	if errors.As(err, &ue) {
		writeError(w, 502, ue.Error(), "the Ads API rejected the query; check account access and date range")
		return
	}
	writeError(w, 502, err.Error(), "upstream query failed")
}

func writeError(w http.ResponseWriter, code int, msg, hint string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	body := map[string]string{"error": msg}
	if hint != "" {
		body["hint"] = hint
	}
	json.NewEncoder(w).Encode(body)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
