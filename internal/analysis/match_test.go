package analysis

import (
	"testing"

	"github.com/angelcm/ads-insights-go/internal/models"
)

func TestMatchCampaignsSummerSale(t *testing.T) {
	campaigns := []models.MetricsRow{
		{CampaignName: "Summer Sale Blowout"},
		{CampaignName: "Winter Clearance"},
	}
	matches := MatchCampaigns("summer sale", campaigns)

	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	for _, m := range matches {
		// un solo campaign distinto: el de score cero queda afuera aunque
		// el tema matchee por los dos lados
		if m.CampaignName != "Summer Sale Blowout" {
			t.Fatalf("unexpected campaign matched: %q", m.CampaignName)
		}
		if m.MatchType != "seasonal" && m.MatchType != "promotional" {
			t.Fatalf("unexpected match type: %q", m.MatchType)
		}
		if m.RelevanceScore <= 0 {
			t.Fatalf("expected positive relevance, got %v", m.RelevanceScore)
		}
	}
}

func TestMatchCampaignsFanOutPerTheme(t *testing.T) {
	campaigns := []models.MetricsRow{{CampaignName: "Summer Sale Blowout"}}
	matches := MatchCampaigns("summer sale", campaigns)

	// la misma campaña sale una vez por cada tema que matchea
	types := map[string]bool{}
	for _, m := range matches {
		types[m.MatchType] = true
	}
	if !types["seasonal"] || !types["promotional"] {
		t.Fatalf("expected seasonal and promotional fan-out, got %v", types)
	}
}

func TestMatchCampaignsSortedByRelevance(t *testing.T) {
	campaigns := []models.MetricsRow{
		{CampaignName: "Holiday Something Unrelated Longer Name"},
		{CampaignName: "Holiday Deals"},
	}
	matches := MatchCampaigns("holiday deals", campaigns)
	for i := 1; i < len(matches); i++ {
		if matches[i-1].RelevanceScore < matches[i].RelevanceScore {
			t.Fatalf("matches not sorted descending: %+v", matches)
		}
	}
	if len(matches) == 0 || matches[0].CampaignName != "Holiday Deals" {
		t.Fatalf("expected Holiday Deals first, got %+v", matches)
	}
}

func TestRelevanceScoreTokenOverlap(t *testing.T) {
	// 2 de 2 tokens pegan → 100
	if got := relevanceScore("summer sale", "Summer Sale Blowout"); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	// 1 de 2 tokens → 50
	if got := relevanceScore("summer shoes", "Summer Sale Blowout"); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
	if got := relevanceScore("", "anything"); got != 0 {
		t.Fatalf("empty query must score 0, got %v", got)
	}
}

func TestUniqueCampaigns(t *testing.T) {
	rows := []models.MetricsRow{
		{CampaignID: "1", CampaignName: "A", Date: "2024-01-01"},
		{CampaignID: "1", CampaignName: "A", Date: "2024-01-02"},
		{CampaignID: "2", CampaignName: "B", Date: "2024-01-01"},
	}
	got := UniqueCampaigns(rows)
	if len(got) != 2 || got[0].CampaignID != "1" || got[1].CampaignID != "2" {
		t.Fatalf("bad dedupe: %+v", got)
	}
}
