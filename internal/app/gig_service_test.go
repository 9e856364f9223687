package app

import (
	"context"
	"testing"

	"gigboard/internal/common"
	"gigboard/internal/domain/gig"
)

func validGigInput() GigInput {
	return GigInput{
		Title:        "Mover",
		EmployerName: "Acme",
		Location:     "Pune",
		Pay:          "₹500/day",
		Description:  "Lift boxes",
	}
}

func TestGigServiceCreate(t *testing.T) {
	repo := newFakeGigRepo()
	service := NewGigService(repo)
	ownerID := common.NewUUID()

	in := validGigInput()
	in.Title = "  Mover  "
	in.JobType = "part-time"
	created, err := service.Create(context.Background(), ownerID, in)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Title != "Mover" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.Status != gig.StatusOpen {
		t.Fatalf("expected status open, got %q", created.Status)
	}
	if created.WorkersNeeded != 1 {
		t.Fatalf("expected workers_needed default 1, got %d", created.WorkersNeeded)
	}
	if created.OwnerID != ownerID {
		t.Fatal("expected owner to be set")
	}
}

func TestGigServiceCreateMissingRequiredField(t *testing.T) {
	repo := newFakeGigRepo()
	service := NewGigService(repo)

	for _, blank := range []string{"title", "employer_name", "location", "pay", "description"} {
		in := validGigInput()
		switch blank {
		case "title":
			in.Title = "   "
		case "employer_name":
			in.EmployerName = ""
		case "location":
			in.Location = ""
		case "pay":
			in.Pay = ""
		case "description":
			in.Description = "  "
		}
		_, err := service.Create(context.Background(), common.NewUUID(), in)
		if !common.Is(err, common.CodeValidation) {
			t.Fatalf("blank %s: expected validation error, got %v", blank, err)
		}
		if fields := common.FieldErrors(err); fields[blank] == "" {
			t.Fatalf("blank %s: expected field error, got %v", blank, fields)
		}
	}
	if len(repo.gigs) != 0 {
		t.Fatalf("expected no gigs created, got %d", len(repo.gigs))
	}
}

func TestGigServiceCreateRejectsUnknownJobType(t *testing.T) {
	service := NewGigService(newFakeGigRepo())

	in := validGigInput()
	in.JobType = "gig-economy"
	_, err := service.Create(context.Background(), common.NewUUID(), in)
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGigServiceListNewestOrder(t *testing.T) {
	repo := newFakeGigRepo()
	service := NewGigService(repo)
	ownerID := common.NewUUID()

	for _, title := range []string{"first", "second", "third"} {
		in := validGigInput()
		in.Title = title
		if _, err := service.Create(context.Background(), ownerID, in); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	items, err := service.ListNewest(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 || items[0].Title != "third" || items[2].Title != "first" {
		t.Fatalf("expected newest-first order, got %+v", items)
	}
}

func TestGigServiceListByOwnerCapped(t *testing.T) {
	repo := newFakeGigRepo()
	service := NewGigService(repo)
	ownerID := common.NewUUID()

	for i := 0; i < ProfileGigLimit+3; i++ {
		if _, err := service.Create(context.Background(), ownerID, validGigInput()); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := service.Create(context.Background(), common.NewUUID(), validGigInput()); err != nil {
		t.Fatalf("create other owner: %v", err)
	}

	items, err := service.ListByOwner(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != ProfileGigLimit {
		t.Fatalf("expected %d gigs, got %d", ProfileGigLimit, len(items))
	}
	for _, g := range items {
		if g.OwnerID != ownerID {
			t.Fatal("expected only the owner's gigs")
		}
	}
}
