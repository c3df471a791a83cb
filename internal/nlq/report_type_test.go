package nlq

import (
	"testing"

	"github.com/angelcm/ads-insights-go/internal/models"
)

func TestSelectType(t *testing.T) {
	tests := []struct {
		query string
		want  models.AnalysisType
	}{
		{"which KEYWORD drives spend", models.AnalysisKeyword},
		{"best performing ad copy", models.AnalysisAd},
		{"shopping results this month", models.AnalysisShopping},
		{"product performance", models.AnalysisShopping},
		{"impression share lost to budget", models.AnalysisImpressionShare},
		{"overall performance", models.AnalysisCampaign},
	}
	for _, tc := range tests {
		if got := SelectType(tc.query); got != tc.want {
			t.Fatalf("SelectType(%q)=%s, want %s", tc.query, got, tc.want)
		}
	}
}

func TestSelectTypePriorityOrder(t *testing.T) {
	// keyword va antes que shopping en la lista de prioridad
	if got := SelectType("keyword performance for shopping"); got != models.AnalysisKeyword {
		t.Fatalf("expected keyword priority, got %s", got)
	}
}
