package handlers

import (
	"net/http"
	"strings"
	"time"

	"gigboard/internal/app"
	"gigboard/internal/common"
	"gigboard/internal/domain/application"
	"gigboard/internal/domain/session"
	"gigboard/internal/http/middleware"
)

type ApplicationHandler struct {
	Base
	applications *app.ApplicationService
	limiter      middleware.Limiter
}

func NewApplicationHandler(base Base, applications *app.ApplicationService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{Base: base, applications: applications, limiter: limiter}
}

// Apply handles POST /apply/{gig_id}/. Applying twice is not an error: the
// user is told the current status of their existing application.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	worker, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}
	gigID, err := pathUUID(r.URL.Path, "/apply/")
	if err != nil {
		h.notFound(w, r)
		return
	}
	if h.limiter != nil {
		if !h.limiter.Allow("apply:user:"+worker.ID.String(), 30, time.Minute) {
			h.flashRedirect(w, r, session.FlashError, "Too many applications. Please slow down.", "/jobs/")
			return
		}
	}
	result, err := h.applications.Apply(r.Context(), worker.ID, gigID, formValue(r, "message"))
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			h.notFound(w, r)
			return
		}
		h.flashRedirect(w, r, session.FlashError, errorMessage(err), "/jobs/")
		return
	}
	if result.AlreadyApplied {
		h.flashRedirect(w, r, session.FlashInfo, "You already applied. Current status: "+string(result.Application.Status), "/jobs/")
		return
	}
	h.flashRedirect(w, r, session.FlashSuccess, "Applied successfully!", "/jobs/")
}

// Accept handles POST /applications/{id}/accept/.
func (h *ApplicationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, application.StatusAccepted, "Application accepted.")
}

// Reject handles POST /applications/{id}/reject/.
func (h *ApplicationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, application.StatusRejected, "Application rejected.")
}

func (h *ApplicationHandler) decide(w http.ResponseWriter, r *http.Request, status application.Status, confirmation string) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}
	id, err := applicationIDFromPath(r.URL.Path)
	if err != nil {
		h.notFound(w, r)
		return
	}
	if _, err := h.applications.SetStatus(r.Context(), actor.ID, id, status); err != nil {
		if common.Is(err, common.CodeNotFound) {
			h.notFound(w, r)
			return
		}
		h.flashRedirect(w, r, session.FlashError, errorMessage(err), "/inbox/")
		return
	}
	h.flashRedirect(w, r, session.FlashSuccess, confirmation, "/inbox/")
}

func (h *ApplicationHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}
	inbox, err := h.applications.Inbox(r.Context(), account.ID)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "inbox", "Inbox", &app.Inbox{}, errorMessage(err))
		return
	}
	h.render(w, r, http.StatusOK, "inbox", "Inbox", inbox)
}

// pathUUID extracts the UUID segment directly after prefix, tolerating a
// trailing slash.
func pathUUID(path, prefix string) (common.UUID, error) {
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", common.NewError(common.CodeNotFound, "not found", nil)
	}
	return common.ParseUUID(rest)
}

// applicationIDFromPath parses /applications/{id}/accept/ or .../reject/.
func applicationIDFromPath(path string) (common.UUID, error) {
	rest := strings.TrimPrefix(path, "/applications/")
	idx := strings.Index(rest, "/")
	if idx <= 0 {
		return "", common.NewError(common.CodeNotFound, "not found", nil)
	}
	return common.ParseUUID(rest[:idx])
}
