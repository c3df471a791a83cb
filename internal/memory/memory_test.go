package memory

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestMemLogRoundTrip(t *testing.T) {
	l := NewMemLog()
	id, err := l.Record("123", "Scale the winners")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := l.RecordOutcome(id, "applied, +12% conversions"); err != nil {
		t.Fatalf("outcome: %v", err)
	}
	e, ok := l.Get(id)
	if !ok || e.Outcome != "applied, +12% conversions" || e.AccountID != "123" {
		t.Fatalf("bad entry: %+v", e)
	}
}

func TestMemLogUnknownID(t *testing.T) {
	l := NewMemLog()
	if err := l.RecordOutcome("999", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBoltLogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory", "recs.db")
	l, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer l.Close()

	id1, err := l.Record("123", "first")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	id2, err := l.Record("123", "second")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if id1 == id2 {
		t.Fatalf("ids must be unique: %s / %s", id1, id2)
	}

	if err := l.RecordOutcome(id1, "ignored by client"); err != nil {
		t.Fatalf("outcome: %v", err)
	}
	e, found, err := l.Get(id1)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if e.Recommendation != "first" || e.Outcome != "ignored by client" || e.OutcomeAt == nil {
		t.Fatalf("bad entry: %+v", e)
	}
}

func TestBoltLogUnknownID(t *testing.T) {
	l, err := OpenBolt(filepath.Join(t.TempDir(), "recs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer l.Close()
	if err := l.RecordOutcome("42", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
