package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gigboard/internal/common"
	"gigboard/internal/domain/session"
	"gigboard/internal/http/middleware"
	"gigboard/internal/http/view"
	appsession "gigboard/internal/session"
)

// Base carries what every page handler needs: the template renderer and the
// session manager that backs flashes.
type Base struct {
	View     *view.Renderer
	Sessions *appsession.Manager
}

func (b *Base) render(w http.ResponseWriter, r *http.Request, status int, page, title string, content any) {
	b.renderWith(w, r, status, page, title, content, nil)
}

// renderError renders the page with an error flash shown immediately, without
// persisting it to the session.
func (b *Base) renderError(w http.ResponseWriter, r *http.Request, status int, page, title string, content any, message string) {
	b.renderWith(w, r, status, page, title, content, []session.Flash{{Level: session.FlashError, Message: message}})
}

func (b *Base) renderWith(w http.ResponseWriter, r *http.Request, status int, page, title string, content any, extra []session.Flash) {
	account, _ := middleware.UserFromContext(r.Context())
	flashes := b.Sessions.PopFlashes(r.Context(), r)
	b.View.Render(w, status, page, view.Data{
		Title:   title,
		User:    account,
		Flashes: append(flashes, extra...),
		Page:    content,
	})
}

// flashRedirect queues a one-shot message and sends the browser elsewhere.
func (b *Base) flashRedirect(w http.ResponseWriter, r *http.Request, level, message, target string) {
	_ = b.Sessions.AddFlash(r.Context(), w, r, level, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (b *Base) notFound(w http.ResponseWriter, r *http.Request) {
	account, _ := middleware.UserFromContext(r.Context())
	b.View.NotFound(w, view.Data{User: account})
}

func formValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

// errorMessage extracts a message safe to show the user. Internal errors get
// a generic line instead of leaking details.
func errorMessage(err error) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) && appErr.Code != common.CodeInternal && appErr.Message != "" {
		return appErr.Message
	}
	return "Something went wrong. Please try again."
}
