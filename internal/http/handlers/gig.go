package handlers

import (
	"net/http"
	"strconv"

	"gigboard/internal/app"
	"gigboard/internal/common"
	"gigboard/internal/domain/gig"
	"gigboard/internal/domain/session"
	"gigboard/internal/http/middleware"
)

type GigHandler struct {
	Base
	gigs *app.GigService
}

func NewGigHandler(base Base, gigs *app.GigService) *GigHandler {
	return &GigHandler{Base: base, gigs: gigs}
}

type gigListPage struct {
	Gigs []gig.Gig
}

type postJobPage struct {
	Errors map[string]string
}

func (h *GigHandler) Home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.gigs.ListNewest(r.Context(), app.FeaturedLimit)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "index", "", gigListPage{}, errorMessage(err))
		return
	}
	h.render(w, r, http.StatusOK, "index", "", gigListPage{Gigs: featured})
}

func (h *GigHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.gigs.ListNewest(r.Context(), 0)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "jobs", "Jobs", gigListPage{}, errorMessage(err))
		return
	}
	h.render(w, r, http.StatusOK, "jobs", "Jobs", gigListPage{Gigs: all})
}

func (h *GigHandler) PostForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "post-job", "Post a job", postJobPage{})
}

func (h *GigHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}

	// Blank workers_needed falls back to the service default of one.
	workers := 0
	if raw := formValue(r, "workers_needed"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.renderError(w, r, http.StatusBadRequest, "post-job", "Post a job", postJobPage{
				Errors: map[string]string{"workers_needed": "workers needed must be a positive number"},
			}, "Please fill all required fields.")
			return
		}
		workers = n
	}

	_, err := h.gigs.Create(r.Context(), owner.ID, app.GigInput{
		Title:         formValue(r, "title"),
		EmployerName:  formValue(r, "employer_name"),
		Location:      formValue(r, "location"),
		Pay:           formValue(r, "pay"),
		Duration:      formValue(r, "duration"),
		WorkersNeeded: workers,
		JobType:       formValue(r, "job_type"),
		Skills:        formValue(r, "skills"),
		Schedule:      formValue(r, "schedule"),
		ContactInfo:   formValue(r, "contact_info"),
		Description:   formValue(r, "description"),
	})
	if err != nil {
		if common.Is(err, common.CodeValidation) {
			h.renderError(w, r, http.StatusBadRequest, "post-job", "Post a job", postJobPage{
				Errors: common.FieldErrors(err),
			}, errorMessage(err))
			return
		}
		h.renderError(w, r, http.StatusInternalServerError, "post-job", "Post a job", postJobPage{}, errorMessage(err))
		return
	}
	h.flashRedirect(w, r, session.FlashSuccess, "Job posted successfully!", "/jobs/")
}

func (h *GigHandler) Profile(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}
	own, err := h.gigs.ListByOwner(r.Context(), owner.ID)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "profile", "Profile", gigListPage{}, errorMessage(err))
		return
	}
	h.render(w, r, http.StatusOK, "profile", "Profile", gigListPage{Gigs: own})
}
