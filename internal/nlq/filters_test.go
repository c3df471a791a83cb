package nlq

import (
	"reflect"
	"testing"
)

func TestExtractQuotedFilters(t *testing.T) {
	got := ExtractFilters(`performance for "Brand Exact" and "Shopping - US"`)
	want := []string{"Brand Exact", "Shopping - US"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractAfterKeyword(t *testing.T) {
	got := ExtractFilters("show campaigns containing promo this month")
	if !reflect.DeepEqual(got, []string{"promo"}) {
		t.Fatalf("got %v", got)
	}
}

func TestExtractTokenBeforeCampaign(t *testing.T) {
	got := ExtractFilters("how are brand campaigns doing")
	if !reflect.DeepEqual(got, []string{"brand"}) {
		t.Fatalf("got %v", got)
	}
}

func TestExtractDeduplicates(t *testing.T) {
	// la misma cadena citada dos veces sale una sola vez
	got := ExtractFilters(`"promo" against "promo"`)
	if !reflect.DeepEqual(got, []string{"promo"}) {
		t.Fatalf("got %v", got)
	}
}

func TestExtractNoNormalization(t *testing.T) {
	got := ExtractFilters(`campaigns with PROMO!`)
	if !reflect.DeepEqual(got, []string{"PROMO!"}) {
		t.Fatalf("case and punctuation must be preserved, got %v", got)
	}
}

func TestExtractEmpty(t *testing.T) {
	if got := ExtractFilters("overall spend this month"); len(got) != 0 {
		t.Fatalf("expected no filters, got %v", got)
	}
}
