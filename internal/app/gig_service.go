package app

import (
	"context"
	"strings"

	"gigboard/internal/common"
	"gigboard/internal/domain/gig"
)

const (
	// FeaturedLimit caps the home page feed.
	FeaturedLimit = 6
	// ProfileGigLimit caps the "my postings" list on the profile page.
	ProfileGigLimit = 10
)

type GigService struct {
	repo gig.Repository
}

func NewGigService(repo gig.Repository) *GigService {
	return &GigService{repo: repo}
}

type GigInput struct {
	Title         string
	EmployerName  string
	Location      string
	Pay           string
	Duration      string
	WorkersNeeded int
	JobType       string
	Skills        string
	Schedule      string
	ContactInfo   string
	Description   string
}

func (s *GigService) Create(ctx context.Context, ownerID common.UUID, in GigInput) (*gig.Gig, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.EmployerName = strings.TrimSpace(in.EmployerName)
	in.Location = strings.TrimSpace(in.Location)
	in.Pay = strings.TrimSpace(in.Pay)
	in.Duration = strings.TrimSpace(in.Duration)
	in.JobType = strings.TrimSpace(in.JobType)
	in.Skills = strings.TrimSpace(in.Skills)
	in.Schedule = strings.TrimSpace(in.Schedule)
	in.ContactInfo = strings.TrimSpace(in.ContactInfo)
	in.Description = strings.TrimSpace(in.Description)

	fields := map[string]string{}
	if in.Title == "" {
		fields["title"] = "title is required"
	}
	if in.EmployerName == "" {
		fields["employer_name"] = "employer name is required"
	}
	if in.Location == "" {
		fields["location"] = "location is required"
	}
	if in.Pay == "" {
		fields["pay"] = "pay is required"
	}
	if in.Description == "" {
		fields["description"] = "description is required"
	}
	if !gig.IsValidJobType(in.JobType) {
		fields["job_type"] = "job type must be full-time, part-time, contract, or temporary"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("Please fill all required fields.", fields)
	}

	if in.WorkersNeeded <= 0 {
		in.WorkersNeeded = 1
	}
	return s.repo.Create(ctx, gig.Gig{
		OwnerID:       ownerID,
		Title:         in.Title,
		EmployerName:  in.EmployerName,
		Location:      in.Location,
		Pay:           in.Pay,
		Duration:      in.Duration,
		WorkersNeeded: in.WorkersNeeded,
		JobType:       in.JobType,
		Skills:        in.Skills,
		Schedule:      in.Schedule,
		ContactInfo:   in.ContactInfo,
		Description:   in.Description,
		Status:        gig.StatusOpen,
	})
}

func (s *GigService) ListNewest(ctx context.Context, limit int) ([]gig.Gig, error) {
	return s.repo.ListNewest(ctx, limit)
}

func (s *GigService) ListByOwner(ctx context.Context, ownerID common.UUID) ([]gig.Gig, error) {
	return s.repo.ListByOwner(ctx, ownerID, ProfileGigLimit)
}
