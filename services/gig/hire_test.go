package gig

import (
	"errors"
	"testing"

	"stagelink/models"
)

func assertGigCode(t *testing.T, err error, code string) {
	t.Helper()
	var ge *GigError
	if !errors.As(err, &ge) {
		t.Fatalf("expected *GigError, got %T: %v", err, err)
	}
	if ge.Code != code {
		t.Fatalf("expected code %q, got %q (%s)", code, ge.Code, ge.Message)
	}
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func openGig(budget *float64) models.Gig {
	return models.Gig{
		ID:        "g1",
		CompanyID: "c1",
		Title:     "Jazz quartet wanted",
		Budget:    budget,
		Status:    models.GigStatusOpen,
		Version:   1,
	}
}

func scheduledGig(budget *float64) models.Gig {
	g := openGig(budget)
	g.EventDate = "2026-03-07"
	g.StartMinute = iptr(1140)
	g.EndMinute = iptr(1320)
	return g
}

func pendingApp(id, musicianID string, fee *float64) models.Application {
	return models.Application{
		ID:         id,
		GigID:      "g1",
		MusicianID: musicianID,
		Fee:        fee,
		Status:     models.ApplicationStatusPending,
	}
}

func TestEvaluateHireDecisionBudgetExceeded(t *testing.T) {
	g := scheduledGig(fptr(1000))
	apps := []models.Application{
		pendingApp("a1", "m1", fptr(400)),
		pendingApp("a2", "m2", fptr(700)),
	}

	_, err := EvaluateHireDecision(g, apps, []string{"a1", "a2"})
	assertGigCode(t, err, CodeBudgetExceeded)
}

func TestEvaluateHireDecisionNoBudgetSkipsFeeChecks(t *testing.T) {
	g := scheduledGig(nil)
	apps := []models.Application{
		pendingApp("a1", "m1", fptr(400)),
		pendingApp("a2", "m2", fptr(700)),
		pendingApp("a3", "m3", nil), // undeclared fee is fine without a budget
	}

	decision, err := EvaluateHireDecision(g, apps, []string{"a1", "a2"})
	if err != nil {
		t.Fatalf("EvaluateHireDecision: %v", err)
	}
	if len(decision.Hired) != 2 {
		t.Fatalf("expected 2 hired, got %v", decision.Hired)
	}
	if len(decision.Rejected) != 1 || decision.Rejected[0] != "a3" {
		t.Fatalf("expected a3 rejected, got %v", decision.Rejected)
	}
	if decision.TotalFees != nil {
		t.Fatal("fees must not be summed when the gig has no budget")
	}
}

func TestEvaluateHireDecisionWithinBudget(t *testing.T) {
	g := scheduledGig(fptr(1200))
	apps := []models.Application{
		pendingApp("a1", "m1", fptr(400)),
		pendingApp("a2", "m2", fptr(700)),
	}

	decision, err := EvaluateHireDecision(g, apps, []string{"a1", "a2"})
	if err != nil {
		t.Fatalf("EvaluateHireDecision: %v", err)
	}
	if decision.TotalFees == nil || *decision.TotalFees != 1100 {
		t.Fatalf("expected total fees 1100, got %v", decision.TotalFees)
	}
}

func TestEvaluateHireDecisionFeeRequired(t *testing.T) {
	g := scheduledGig(fptr(1000))
	apps := []models.Application{
		pendingApp("a1", "m1", nil),
		pendingApp("a2", "m2", fptr(700)),
	}

	err := func() error {
		_, err := EvaluateHireDecision(g, apps, []string{"a1", "a2"})
		return err
	}()
	assertGigCode(t, err, CodeFeeRequired)

	var ge *GigError
	errors.As(err, &ge)
	if ge.ApplicationID != "a1" {
		t.Fatalf("expected offending application a1, got %q", ge.ApplicationID)
	}
}

func TestEvaluateHireDecisionScheduleRequiredForBulk(t *testing.T) {
	g := openGig(nil) // no schedule
	apps := []models.Application{
		pendingApp("a1", "m1", nil),
		pendingApp("a2", "m2", nil),
	}

	_, err := EvaluateHireDecision(g, apps, []string{"a1", "a2"})
	assertGigCode(t, err, CodeScheduleRequired)

	// Single-candidate hiring does not require a schedule.
	if _, err := EvaluateHireDecision(g, apps, []string{"a1"}); err != nil {
		t.Fatalf("single hire without schedule should succeed: %v", err)
	}
}

func TestEvaluateHireDecisionInvalidSelection(t *testing.T) {
	g := scheduledGig(nil)
	hired := pendingApp("a2", "m2", nil)
	hired.Status = models.ApplicationStatusHired
	foreign := pendingApp("a3", "m3", nil)
	foreign.GigID = "other"
	apps := []models.Application{pendingApp("a1", "m1", nil), hired, foreign}

	cases := [][]string{
		{"a404"},     // unknown application
		{"a2"},       // not pending
		{"a3"},       // belongs to another gig
		{"a1", "a1"}, // duplicate selection
		{},           // empty selection
	}
	for _, sel := range cases {
		_, err := EvaluateHireDecision(g, apps, sel)
		assertGigCode(t, err, CodeInvalidSelection)
	}
}

func TestEvaluateHireDecisionGigNotOpen(t *testing.T) {
	for _, status := range []string{models.GigStatusHired, models.GigStatusClosed, models.GigStatusCancelled} {
		g := scheduledGig(nil)
		g.Status = status
		_, err := EvaluateHireDecision(g, []models.Application{pendingApp("a1", "m1", nil)}, []string{"a1"})
		assertGigCode(t, err, CodeInvalidSelection)
	}
}
