package util

import (
	"testing"
	"time"
)

func sp(s string) *string { return &s }

func TestParseDateRange_DateOnly_EndIsExclusiveNextDay(t *testing.T) {
	start, hasStart, end, hasEnd, err := ParseDateRange(sp("2026-03-01"), sp("2026-03-10"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !hasStart || !hasEnd {
		t.Fatalf("expected both bounds, got hasStart=%v hasEnd=%v", hasStart, hasEnd)
	}
	if !start.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected end extended by one day, got: %v", end)
	}
}

func TestParseDateRange_RFC3339_EndKeptExact(t *testing.T) {
	_, _, end, hasEnd, err := ParseDateRange(nil, sp("2026-03-10T12:30:00Z"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !hasEnd {
		t.Fatalf("expected end bound")
	}
	if !end.Equal(time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end: %v", end)
	}
}

func TestParseDateRange_Reversed_Swaps(t *testing.T) {
	start, _, end, _, err := ParseDateRange(sp("2026-03-10"), sp("2026-03-01"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !start.Before(end) {
		t.Fatalf("expected swapped range, got start=%v end=%v", start, end)
	}
}

func TestParseDateRange_Invalid(t *testing.T) {
	_, _, _, _, err := ParseDateRange(sp("01/03/2026"), nil)
	if err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestParseDateRange_NilAndEmpty(t *testing.T) {
	_, hasStart, _, hasEnd, err := ParseDateRange(nil, sp("  "))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hasStart || hasEnd {
		t.Fatalf("expected no bounds, got hasStart=%v hasEnd=%v", hasStart, hasEnd)
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2026, 12)
	if !start.Equal(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", start)
	}
	if !end.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end: %v", end)
	}
}
