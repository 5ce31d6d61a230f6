package gig

import (
	"testing"
	"time"

	"stagelink/models"
)

func terminalGig(status string) models.Gig {
	return models.Gig{ID: "g1", CompanyID: "c1", Status: status}
}

func TestResolveHistoryAnchorPrefersUpdatedAt(t *testing.T) {
	g := terminalGig(models.GigStatusClosed)
	g.UpdatedAt = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	g.EventDate = "2026-03-01"
	g.CreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	anchor, ok := ResolveHistoryAnchor(g)
	if !ok || !anchor.Equal(g.UpdatedAt) {
		t.Fatalf("expected UpdatedAt anchor, got %v (ok=%v)", anchor, ok)
	}
}

func TestResolveHistoryAnchorEventDateWithEndTime(t *testing.T) {
	g := terminalGig(models.GigStatusClosed)
	g.EventDate = "2026-03-07"
	g.StartMinute = iptr(1140)
	g.EndMinute = iptr(1320) // 22:00

	anchor, ok := ResolveHistoryAnchor(g)
	if !ok {
		t.Fatal("expected an anchor")
	}
	want := time.Date(2026, 3, 7, 22, 0, 0, 0, time.UTC)
	if !anchor.Equal(want) {
		t.Fatalf("expected %v, got %v", want, anchor)
	}
}

func TestResolveHistoryAnchorEventDateCrossingMidnight(t *testing.T) {
	g := terminalGig(models.GigStatusClosed)
	g.EventDate = "2026-03-07"
	g.StartMinute = iptr(1380) // 23:00
	g.EndMinute = iptr(60)     // 01:00 next day

	anchor, ok := ResolveHistoryAnchor(g)
	if !ok {
		t.Fatal("expected an anchor")
	}
	// Effective end is 1500 minutes past midnight of the event date.
	want := time.Date(2026, 3, 8, 1, 0, 0, 0, time.UTC)
	if !anchor.Equal(want) {
		t.Fatalf("expected %v, got %v", want, anchor)
	}
}

func TestResolveHistoryAnchorEventDateDefaultsToEndOfDay(t *testing.T) {
	g := terminalGig(models.GigStatusClosed)
	g.EventDate = "2026-03-07"

	anchor, ok := ResolveHistoryAnchor(g)
	if !ok {
		t.Fatal("expected an anchor")
	}
	want := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	if !anchor.Equal(want) {
		t.Fatalf("expected end of day %v, got %v", want, anchor)
	}
}

func TestResolveHistoryAnchorFallsBackToCreatedAt(t *testing.T) {
	g := terminalGig(models.GigStatusCancelled)
	g.EventDate = "not-a-date" // unparsable, skipped
	g.CreatedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	anchor, ok := ResolveHistoryAnchor(g)
	if !ok || !anchor.Equal(g.CreatedAt) {
		t.Fatalf("expected CreatedAt anchor, got %v (ok=%v)", anchor, ok)
	}
}

func TestResolveHistoryAnchorNoneAvailable(t *testing.T) {
	if _, ok := ResolveHistoryAnchor(terminalGig(models.GigStatusClosed)); ok {
		t.Fatal("expected no anchor for a gig without any timestamps")
	}
}

func TestIsInHistoryWindow(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	const window = 14

	anchored := func(status string, anchor time.Time) models.Gig {
		g := terminalGig(status)
		g.UpdatedAt = anchor
		return g
	}

	cases := []struct {
		name string
		gig  models.Gig
		want bool
	}{
		{"recent closed", anchored(models.GigStatusClosed, now.AddDate(0, 0, -3)), true},
		{"recent cancelled", anchored(models.GigStatusCancelled, now.AddDate(0, 0, -3)), true},
		{"exactly at window edge", anchored(models.GigStatusClosed, now.AddDate(0, 0, -window)), true},
		{"just past window", anchored(models.GigStatusClosed, now.AddDate(0, 0, -window).Add(-time.Minute)), false},
		{"future anchor excluded", anchored(models.GigStatusClosed, now.Add(time.Hour)), false},
		{"non-terminal excluded", anchored(models.GigStatusHired, now.AddDate(0, 0, -3)), false},
		{"no anchor excluded", terminalGig(models.GigStatusClosed), false},
	}
	for _, tc := range cases {
		if got := IsInHistoryWindow(tc.gig, now, window); got != tc.want {
			t.Errorf("%s: IsInHistoryWindow = %v, want %v", tc.name, got, tc.want)
		}
	}
}
