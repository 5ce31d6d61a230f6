package gig

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stagelink/models"
)

// fakeGigRepo is an in-memory GigRepository whose commit methods apply the
// whole decision or nothing, mirroring the transactional contract.
type fakeGigRepo struct {
	gigs map[string]*models.Gig
	apps map[string]*models.Application

	commitCalls int
}

func newFakeGigRepo() *fakeGigRepo {
	return &fakeGigRepo{
		gigs: make(map[string]*models.Gig),
		apps: make(map[string]*models.Application),
	}
}

func (f *fakeGigRepo) CreateGig(_ context.Context, g *models.Gig) error {
	if g.ID == "" {
		g.ID = fmt.Sprintf("g-%d", len(f.gigs)+1)
	}
	g.Status = models.GigStatusOpen
	g.Version = 1
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	cp := *g
	f.gigs[g.ID] = &cp
	return nil
}

func (f *fakeGigRepo) GetGigByID(_ context.Context, gigID string) (*models.Gig, error) {
	g, ok := f.gigs[gigID]
	if !ok {
		return nil, fmt.Errorf("gig %s not found", gigID)
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGigRepo) ListGigsByCompany(_ context.Context, companyID string) ([]models.Gig, error) {
	var out []models.Gig
	for _, g := range f.gigs {
		if g.CompanyID == companyID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGigRepo) ListGigsByStatus(_ context.Context, statuses []string) ([]models.Gig, error) {
	var out []models.Gig
	for _, g := range f.gigs {
		for _, s := range statuses {
			if g.Status == s {
				out = append(out, *g)
			}
		}
	}
	return out, nil
}

func (f *fakeGigRepo) CreateApplication(_ context.Context, app *models.Application) error {
	if app.ID == "" {
		app.ID = fmt.Sprintf("a-%d", len(f.apps)+1)
	}
	app.Status = models.ApplicationStatusPending
	cp := *app
	f.apps[app.ID] = &cp
	return nil
}

func (f *fakeGigRepo) GetApplicationsByGig(_ context.Context, gigID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range f.apps {
		if app.GigID == gigID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (f *fakeGigRepo) GetActiveApplication(_ context.Context, gigID, musicianID string) (*models.Application, error) {
	for _, app := range f.apps {
		if app.GigID == gigID && app.MusicianID == musicianID && app.IsActive() {
			cp := *app
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeGigRepo) MarkGigInReview(_ context.Context, gigID string, version int) error {
	g, ok := f.gigs[gigID]
	if ok && g.Status == models.GigStatusOpen && g.Version == version {
		g.Status = models.GigStatusInReview
		g.Version++
	}
	return nil
}

func (f *fakeGigRepo) CommitHireDecision(_ context.Context, gigID string, gigVersion int, hiredIDs []string) ([]string, error) {
	f.commitCalls++
	g, ok := f.gigs[gigID]
	if !ok || !AcceptsApplications(g.Status) || g.Version != gigVersion {
		return nil, fmt.Errorf("gig %s is no longer open for hiring", gigID)
	}
	g.Status = models.GigStatusHired
	g.Version++

	hired := make(map[string]bool, len(hiredIDs))
	for _, id := range hiredIDs {
		hired[id] = true
		f.apps[id].Status = models.ApplicationStatusHired
	}
	var rejected []string
	for id, app := range f.apps {
		if app.GigID == gigID && app.Status == models.ApplicationStatusPending && !hired[id] {
			app.Status = models.ApplicationStatusRejected
			rejected = append(rejected, id)
		}
	}
	return rejected, nil
}

func (f *fakeGigRepo) CloseGigWithRejections(_ context.Context, gigID, newStatus string, fromStatuses []string, gigVersion int) ([]string, error) {
	g, ok := f.gigs[gigID]
	if !ok || g.Version != gigVersion {
		return nil, fmt.Errorf("gig %s version mismatch", gigID)
	}
	allowed := false
	for _, s := range fromStatuses {
		if g.Status == s {
			allowed = true
		}
	}
	if !allowed {
		return nil, fmt.Errorf("gig %s cannot transition to %s", gigID, newStatus)
	}
	g.Status = newStatus
	g.Version++

	var rejected []string
	for id, app := range f.apps {
		if app.GigID == gigID && app.Status == models.ApplicationStatusPending {
			app.Status = models.ApplicationStatusRejected
			rejected = append(rejected, id)
		}
	}
	return rejected, nil
}

func seedGigWithApps(t *testing.T, repo *fakeGigRepo, budget *float64, fees []*float64) (*models.Gig, []string) {
	t.Helper()
	ctx := context.Background()

	g := models.Gig{
		CompanyID:   "c1",
		Title:       "Festival opener",
		Budget:      budget,
		EventDate:   "2026-03-07",
		StartMinute: iptr(1140),
		EndMinute:   iptr(1320),
	}
	if err := repo.CreateGig(ctx, &g); err != nil {
		t.Fatalf("CreateGig: %v", err)
	}

	var ids []string
	for i, fee := range fees {
		app := models.Application{
			GigID:      g.ID,
			MusicianID: fmt.Sprintf("m%d", i+1),
			Fee:        fee,
		}
		if err := repo.CreateApplication(ctx, &app); err != nil {
			t.Fatalf("CreateApplication: %v", err)
		}
		ids = append(ids, app.ID)
	}
	return &g, ids
}

func TestEvaluateHireCommitsAtomically(t *testing.T) {
	repo := newFakeGigRepo()
	svc := &DefaultGigService{Repo: repo, WindowDays: 14}

	// No budget set: fees [400, 700] are not checked against any cap.
	g, ids := seedGigWithApps(t, repo, nil, []*float64{fptr(400), fptr(700), fptr(150)})

	result, err := svc.EvaluateHire(context.Background(), g.ID, ids[:2])
	if err != nil {
		t.Fatalf("EvaluateHire: %v", err)
	}
	if len(result.HiredIDs) != 2 {
		t.Fatalf("expected 2 hired, got %v", result.HiredIDs)
	}
	if len(result.RejectedIDs) != 1 || result.RejectedIDs[0] != ids[2] {
		t.Fatalf("expected %s rejected, got %v", ids[2], result.RejectedIDs)
	}
	if repo.gigs[g.ID].Status != models.GigStatusHired {
		t.Fatalf("expected gig hired, got %s", repo.gigs[g.ID].Status)
	}
	for _, id := range ids[:2] {
		if repo.apps[id].Status != models.ApplicationStatusHired {
			t.Fatalf("application %s not hired", id)
		}
	}
	if repo.apps[ids[2]].Status != models.ApplicationStatusRejected {
		t.Fatalf("application %s not rejected", ids[2])
	}
}

func TestEvaluateHireBudgetExceededLeavesStateUntouched(t *testing.T) {
	repo := newFakeGigRepo()
	svc := &DefaultGigService{Repo: repo, WindowDays: 14}

	g, ids := seedGigWithApps(t, repo, fptr(1000), []*float64{fptr(400), fptr(700)})

	_, err := svc.EvaluateHire(context.Background(), g.ID, ids)
	assertGigCode(t, err, CodeBudgetExceeded)

	if repo.commitCalls != 0 {
		t.Fatalf("commit must not be attempted on validation failure, got %d calls", repo.commitCalls)
	}
	if repo.gigs[g.ID].Status != models.GigStatusOpen {
		t.Fatalf("gig status changed to %s", repo.gigs[g.ID].Status)
	}
	for _, id := range ids {
		if repo.apps[id].Status != models.ApplicationStatusPending {
			t.Fatalf("application %s status changed to %s", id, repo.apps[id].Status)
		}
	}
}

func TestEvaluateHireConcurrentLoserFails(t *testing.T) {
	repo := newFakeGigRepo()
	svc := &DefaultGigService{Repo: repo, WindowDays: 14}
	ctx := context.Background()

	g, ids := seedGigWithApps(t, repo, nil, []*float64{fptr(400), fptr(700)})

	if _, err := svc.EvaluateHire(ctx, g.ID, ids[:1]); err != nil {
		t.Fatalf("first hire: %v", err)
	}
	// The gig is now hired; a second attempt must fail as an invalid
	// selection, never double-commit.
	_, err := svc.EvaluateHire(ctx, g.ID, ids[1:])
	assertGigCode(t, err, CodeInvalidSelection)
}

func TestCloseGigRejectsAllPending(t *testing.T) {
	repo := newFakeGigRepo()
	svc := &DefaultGigService{Repo: repo, WindowDays: 14}
	ctx := context.Background()

	g, ids := seedGigWithApps(t, repo, nil, []*float64{fptr(400), fptr(700)})

	if err := svc.CloseGig(ctx, g.ID, models.GigStatusClosed); err != nil {
		t.Fatalf("CloseGig: %v", err)
	}
	if repo.gigs[g.ID].Status != models.GigStatusClosed {
		t.Fatalf("expected closed, got %s", repo.gigs[g.ID].Status)
	}
	for _, id := range ids {
		if repo.apps[id].Status != models.ApplicationStatusRejected {
			t.Fatalf("application %s not rejected, got %s", id, repo.apps[id].Status)
		}
	}

	// Closed is final.
	err := svc.CloseGig(ctx, g.ID, models.GigStatusCancelled)
	assertGigCode(t, err, CodeInvalidTransition)
}

func TestCloseGigAfterHireKeepsHiredApplications(t *testing.T) {
	repo := newFakeGigRepo()
	svc := &DefaultGigService{Repo: repo, WindowDays: 14}
	ctx := context.Background()

	g, ids := seedGigWithApps(t, repo, nil, []*float64{fptr(400), fptr(700)})
	if _, err := svc.EvaluateHire(ctx, g.ID, ids[:1]); err != nil {
		t.Fatalf("EvaluateHire: %v", err)
	}
	if err := svc.CloseGig(ctx, g.ID, models.GigStatusClosed); err != nil {
		t.Fatalf("CloseGig: %v", err)
	}
	if repo.apps[ids[0]].Status != models.ApplicationStatusHired {
		t.Fatalf("hired application must stay hired, got %s", repo.apps[ids[0]].Status)
	}

	// A hired gig cannot be cancelled, only closed.
	g2, _ := seedGigWithApps(t, repo, nil, []*float64{fptr(100)})
	apps, _ := repo.GetApplicationsByGig(ctx, g2.ID)
	if _, err := svc.EvaluateHire(ctx, g2.ID, []string{apps[0].ID}); err != nil {
		t.Fatalf("EvaluateHire: %v", err)
	}
	err := svc.CloseGig(ctx, g2.ID, models.GigStatusCancelled)
	assertGigCode(t, err, CodeInvalidTransition)
}

func TestListGigsViews(t *testing.T) {
	repo := newFakeGigRepo()
	svc := &DefaultGigService{Repo: repo, WindowDays: 14}
	ctx := context.Background()

	open, _ := seedGigWithApps(t, repo, nil, nil)
	recentClosed, _ := seedGigWithApps(t, repo, nil, nil)
	oldClosed, _ := seedGigWithApps(t, repo, nil, nil)

	repo.gigs[recentClosed.ID].Status = models.GigStatusClosed
	repo.gigs[recentClosed.ID].UpdatedAt = time.Now().AddDate(0, 0, -3)
	repo.gigs[oldClosed.ID].Status = models.GigStatusClosed
	repo.gigs[oldClosed.ID].UpdatedAt = time.Now().AddDate(0, 0, -30)

	active, err := svc.ListGigs(ctx, "c1", ViewActive)
	if err != nil {
		t.Fatalf("ListGigs(active): %v", err)
	}
	if len(active) != 1 || active[0].ID != open.ID {
		t.Fatalf("expected only the open gig in active view, got %v", active)
	}

	history, err := svc.ListGigs(ctx, "c1", ViewHistory)
	if err != nil {
		t.Fatalf("ListGigs(history): %v", err)
	}
	if len(history) != 1 || history[0].ID != recentClosed.ID {
		t.Fatalf("expected only the recently closed gig in history, got %v", history)
	}

	all, err := svc.ListGigs(ctx, "c1", ViewAll)
	if err != nil {
		t.Fatalf("ListGigs(all): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected all 3 gigs, got %d", len(all))
	}
}

func TestBrowseOpenGigs(t *testing.T) {
	repo := newFakeGigRepo()
	svc := &DefaultGigService{Repo: repo, WindowDays: 14}
	ctx := context.Background()

	open, _ := seedGigWithApps(t, repo, nil, nil)
	inReview, _ := seedGigWithApps(t, repo, nil, nil)
	repo.gigs[inReview.ID].Status = models.GigStatusInReview
	hired, _ := seedGigWithApps(t, repo, nil, nil)
	repo.gigs[hired.ID].Status = models.GigStatusHired

	gigs, err := svc.BrowseOpenGigs(ctx)
	if err != nil {
		t.Fatalf("BrowseOpenGigs: %v", err)
	}
	if len(gigs) != 2 {
		t.Fatalf("expected 2 browsable gigs, got %d", len(gigs))
	}
	for _, g := range gigs {
		if g.ID != open.ID && g.ID != inReview.ID {
			t.Fatalf("unexpected gig %s (%s) in open listing", g.ID, g.Status)
		}
	}
}

func TestApplyToGigRules(t *testing.T) {
	repo := newFakeGigRepo()
	svc := &DefaultGigService{Repo: repo, WindowDays: 14}
	ctx := context.Background()

	g, _ := seedGigWithApps(t, repo, nil, nil)

	app, err := svc.ApplyToGig(ctx, g.ID, "m1", fptr(300), "pick me")
	if err != nil {
		t.Fatalf("ApplyToGig: %v", err)
	}
	if app.Status != models.ApplicationStatusPending {
		t.Fatalf("expected pending, got %s", app.Status)
	}
	// First application moves the open gig into review.
	if repo.gigs[g.ID].Status != models.GigStatusInReview {
		t.Fatalf("expected in_review, got %s", repo.gigs[g.ID].Status)
	}

	// One active application per musician per gig.
	_, err = svc.ApplyToGig(ctx, g.ID, "m1", nil, "again")
	assertGigCode(t, err, CodeInvalidSelection)

	// No applications once the gig is terminal.
	if err := svc.CloseGig(ctx, g.ID, models.GigStatusCancelled); err != nil {
		t.Fatalf("CloseGig: %v", err)
	}
	_, err = svc.ApplyToGig(ctx, g.ID, "m2", nil, "")
	assertGigCode(t, err, CodeInvalidSelection)
}
