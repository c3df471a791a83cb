package analysis

import (
	"reflect"
	"testing"

	"github.com/angelcm/ads-insights-go/internal/models"
)

func sampleRows() []models.MetricsRow {
	return []models.MetricsRow{
		{CampaignName: "A", Date: "2024-06-01", Impressions: 1000, Clicks: 50, CostMicros: 2_000_000, Conversions: 5, ConvValue: 6},
		{CampaignName: "B", Date: "2024-06-02", Impressions: 1000, Clicks: 50, CostMicros: 1_000_000, Conversions: 5, ConvValue: 6},
	}
}

func TestAggregateEmptyNeverNaN(t *testing.T) {
	m := Aggregate(nil, "Empty")

	if m.CampaignCount != 0 || m.Spend != 0 || m.Conversions != 0 {
		t.Fatalf("expected zero totals, got %+v", m)
	}
	if m.ROAS != "0" {
		t.Fatalf("expected ROAS \"0\", got %q", m.ROAS)
	}
	if m.CTR != "0%" || m.ConversionRate != "0%" {
		t.Fatalf("expected \"0%%\" ratios, got ctr=%q cvr=%q", m.CTR, m.ConversionRate)
	}
}

func TestAggregateTotalsAndRatios(t *testing.T) {
	m := Aggregate(sampleRows(), "June 2024")

	if m.Label != "June 2024" || m.CampaignCount != 2 {
		t.Fatalf("bad header: %+v", m)
	}
	if m.Spend != 3.00 {
		t.Fatalf("expected spend 3.00 (micros/1e6), got %v", m.Spend)
	}
	if m.Revenue != 12.00 || m.Clicks != 100 || m.Impressions != 2000 || m.Conversions != 10 {
		t.Fatalf("bad totals: %+v", m)
	}
	if m.ROAS != "4.00" {
		t.Fatalf("expected ROAS \"4.00\", got %q", m.ROAS)
	}
	if m.CTR != "5.00%" {
		t.Fatalf("expected CTR \"5.00%%\", got %q", m.CTR)
	}
	if m.ConversionRate != "10.00%" {
		t.Fatalf("expected conversion rate \"10.00%%\", got %q", m.ConversionRate)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	rows := sampleRows()
	forward := Aggregate(rows, "x")
	reversed := Aggregate([]models.MetricsRow{rows[1], rows[0]}, "x")
	if !reflect.DeepEqual(forward, reversed) {
		t.Fatalf("permuting rows changed the result:\n%+v\n%+v", forward, reversed)
	}
}

func TestAggregateZeroClicksGuard(t *testing.T) {
	rows := []models.MetricsRow{{Impressions: 100, Clicks: 0, CostMicros: 1_000_000}}
	m := Aggregate(rows, "x")
	if m.ConversionRate != "0%" {
		t.Fatalf("expected guarded conversion rate, got %q", m.ConversionRate)
	}
	if m.CTR != "0.00%" {
		t.Fatalf("expected computed CTR with zero clicks, got %q", m.CTR)
	}
}
