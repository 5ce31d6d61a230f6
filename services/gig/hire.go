package gig

import (
	"fmt"

	"stagelink/models"
)

// HireDecision is the validated outcome of an arbitration, ready for an
// atomic commit. Nothing is mutated until the repository applies it.
type HireDecision struct {
	GigID    string
	Hired    []string
	Rejected []string
	// TotalFees is set only when the gig defines a budget and the selected
	// fees were summed against it.
	TotalFees *float64
}

// EvaluateHireDecision validates a hire selection against the gig's status,
// schedule and budget rules. It is pure: on any failure it returns the
// specific error and no partial decision.
//
// Rules:
//   - the gig must be open or in_review;
//   - hiring more than one candidate requires the gig to define a schedule;
//   - every selected application must be pending and belong to the gig;
//   - when the gig defines a budget, every selected fee must be declared and
//     their sum must not exceed it. Without a budget, fees are not checked:
//     absence of a cap is not a zero cap.
func EvaluateHireDecision(gig models.Gig, apps []models.Application, selectedIDs []string) (HireDecision, error) {
	if !AcceptsApplications(gig.Status) {
		return HireDecision{}, NewInvalidSelectionError(
			fmt.Sprintf("gig is %s and no longer open for hiring", gig.Status))
	}
	if len(selectedIDs) == 0 {
		return HireDecision{}, NewInvalidSelectionError("no applications selected")
	}
	if len(selectedIDs) > 1 && !gig.HasSchedule() {
		return HireDecision{}, NewScheduleRequiredError("hiring multiple candidates requires the gig to define a schedule")
	}

	byID := make(map[string]models.Application, len(apps))
	for _, app := range apps {
		byID[app.ID] = app
	}

	seen := make(map[string]bool, len(selectedIDs))
	var selected []models.Application
	for _, id := range selectedIDs {
		if seen[id] {
			return HireDecision{}, NewInvalidSelectionError(fmt.Sprintf("application %s selected twice", id))
		}
		seen[id] = true

		app, ok := byID[id]
		if !ok || app.GigID != gig.ID {
			return HireDecision{}, NewInvalidSelectionError(fmt.Sprintf("application %s does not belong to this gig", id))
		}
		if app.Status != models.ApplicationStatusPending {
			return HireDecision{}, NewInvalidSelectionError(fmt.Sprintf("application %s is %s, not pending", id, app.Status))
		}
		selected = append(selected, app)
	}

	decision := HireDecision{GigID: gig.ID, Hired: selectedIDs}

	if gig.HasBudget() {
		var total float64
		for _, app := range selected {
			if app.Fee == nil {
				return HireDecision{}, NewFeeRequiredError(app.ID)
			}
			total += *app.Fee
		}
		if total > *gig.Budget {
			return HireDecision{}, NewBudgetExceededError(total, *gig.Budget)
		}
		decision.TotalFees = &total
	}

	for _, app := range apps {
		if app.Status == models.ApplicationStatusPending && !seen[app.ID] {
			decision.Rejected = append(decision.Rejected, app.ID)
		}
	}
	return decision, nil
}
