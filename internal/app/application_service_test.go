package app

import (
	"context"
	"testing"

	"gigboard/internal/common"
	"gigboard/internal/domain/application"
	"gigboard/internal/domain/gig"
)

func newApplicationFixture(t *testing.T) (*ApplicationService, *fakeApplicationRepo, *gig.Gig, common.UUID) {
	t.Helper()
	users := newFakeUserRepo()
	gigs := newFakeGigRepo()
	apps := newFakeApplicationRepo(gigs, users)
	service := NewApplicationService(apps, gigs)

	ownerID := common.NewUUID()
	posted, err := gigs.Create(context.Background(), gig.Gig{
		OwnerID:      ownerID,
		Title:        "Mover",
		EmployerName: "Acme",
		Location:     "Pune",
		Pay:          "₹500/day",
		Description:  "Lift boxes",
	})
	if err != nil {
		t.Fatalf("create gig: %v", err)
	}
	return service, apps, posted, ownerID
}

func TestApplicationServiceApply(t *testing.T) {
	service, apps, posted, _ := newApplicationFixture(t)
	workerID := common.NewUUID()

	result, err := service.Apply(context.Background(), workerID, posted.ID, "I can start tomorrow")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.AlreadyApplied {
		t.Fatal("expected fresh application")
	}
	if result.Application.Status != application.StatusPending {
		t.Fatalf("expected PENDING, got %s", result.Application.Status)
	}
	if len(apps.apps) != 1 {
		t.Fatalf("expected one row, got %d", len(apps.apps))
	}
}

func TestApplicationServiceApplyTwiceIsIdempotent(t *testing.T) {
	service, apps, posted, _ := newApplicationFixture(t)
	workerID := common.NewUUID()

	first, err := service.Apply(context.Background(), workerID, posted.ID, "")
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	second, err := service.Apply(context.Background(), workerID, posted.ID, "")
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if !second.AlreadyApplied {
		t.Fatal("expected second apply to report existing application")
	}
	if second.Application.ID != first.Application.ID {
		t.Fatal("expected the same application back")
	}
	if second.Application.Status != application.StatusPending {
		t.Fatalf("expected status unchanged, got %s", second.Application.Status)
	}
	if len(apps.apps) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(apps.apps))
	}
}

func TestApplicationServiceApplyMissingGig(t *testing.T) {
	service, _, _, _ := newApplicationFixture(t)

	_, err := service.Apply(context.Background(), common.NewUUID(), common.NewUUID(), "")
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApplicationServiceSetStatusByOwner(t *testing.T) {
	service, _, posted, ownerID := newApplicationFixture(t)
	workerID := common.NewUUID()

	result, err := service.Apply(context.Background(), workerID, posted.ID, "")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	updated, err := service.SetStatus(context.Background(), ownerID, result.Application.ID, application.StatusAccepted)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Status != application.StatusAccepted {
		t.Fatalf("expected ACCEPTED, got %s", updated.Status)
	}
}

func TestApplicationServiceSetStatusForbiddenForNonOwner(t *testing.T) {
	service, apps, posted, _ := newApplicationFixture(t)
	workerID := common.NewUUID()

	result, err := service.Apply(context.Background(), workerID, posted.ID, "")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// Neither a stranger nor the applicant may decide.
	for _, actor := range []common.UUID{common.NewUUID(), workerID} {
		_, err = service.SetStatus(context.Background(), actor, result.Application.ID, application.StatusRejected)
		if !common.Is(err, common.CodeForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	}
	stored, _ := apps.GetByID(context.Background(), result.Application.ID)
	if stored.Status != application.StatusPending {
		t.Fatalf("expected status untouched, got %s", stored.Status)
	}
}

func TestApplicationServiceTerminalStatusLastWriteWins(t *testing.T) {
	service, apps, posted, ownerID := newApplicationFixture(t)

	result, err := service.Apply(context.Background(), common.NewUUID(), posted.ID, "")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := service.SetStatus(context.Background(), ownerID, result.Application.ID, application.StatusAccepted); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := service.SetStatus(context.Background(), ownerID, result.Application.ID, application.StatusRejected); err != nil {
		t.Fatalf("reject after accept: %v", err)
	}
	stored, _ := apps.GetByID(context.Background(), result.Application.ID)
	if stored.Status != application.StatusRejected {
		t.Fatalf("expected last decision to win, got %s", stored.Status)
	}
}

func TestApplicationServiceSetStatusRejectsUnknownStatus(t *testing.T) {
	service, _, posted, ownerID := newApplicationFixture(t)

	result, err := service.Apply(context.Background(), common.NewUUID(), posted.ID, "")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	_, err = service.SetStatus(context.Background(), ownerID, result.Application.ID, application.Status("MAYBE"))
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceInboxBuckets(t *testing.T) {
	users := newFakeUserRepo()
	gigs := newFakeGigRepo()
	apps := newFakeApplicationRepo(gigs, users)
	service := NewApplicationService(apps, gigs)

	owner, _ := users.Create(context.Background(), userFixture("owner@b.com"))
	worker, _ := users.Create(context.Background(), userFixture("worker@b.com"))

	posted, err := gigs.Create(context.Background(), gig.Gig{OwnerID: owner.ID, Title: "Mover", EmployerName: "Acme", Location: "Pune", Pay: "₹500/day", Description: "Lift boxes"})
	if err != nil {
		t.Fatalf("create gig: %v", err)
	}
	other, err := gigs.Create(context.Background(), gig.Gig{OwnerID: worker.ID, Title: "Painter", EmployerName: "Brush Co", Location: "Pune", Pay: "₹700/day", Description: "Paint walls"})
	if err != nil {
		t.Fatalf("create gig: %v", err)
	}

	// worker applies to owner's gig; owner applies to worker's gig.
	mine, err := service.Apply(context.Background(), owner.ID, other.ID, "")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	received, err := service.Apply(context.Background(), worker.ID, posted.ID, "")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := service.SetStatus(context.Background(), owner.ID, received.Application.ID, application.StatusAccepted); err != nil {
		t.Fatalf("accept: %v", err)
	}

	inbox, err := service.Inbox(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(inbox.MyPending) != 1 || inbox.MyPending[0].ID != mine.Application.ID {
		t.Fatalf("expected own pending application, got %+v", inbox.MyPending)
	}
	if inbox.MyPending[0].GigTitle != "Painter" {
		t.Fatalf("expected joined gig title, got %q", inbox.MyPending[0].GigTitle)
	}
	if len(inbox.ReceivedAccepted) != 1 || inbox.ReceivedAccepted[0].ID != received.Application.ID {
		t.Fatalf("expected received accepted application, got %+v", inbox.ReceivedAccepted)
	}
	if inbox.ReceivedAccepted[0].WorkerEmail != "worker@b.com" {
		t.Fatalf("expected joined applicant, got %+v", inbox.ReceivedAccepted[0])
	}
	if len(inbox.ReceivedPending) != 0 || len(inbox.MyAccepted) != 0 {
		t.Fatal("expected empty remaining buckets")
	}
}
