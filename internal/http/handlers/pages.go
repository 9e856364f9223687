package handlers

import "net/http"

// PagesHandler serves the static informational pages.
type PagesHandler struct {
	Base
}

func NewPagesHandler(base Base) *PagesHandler {
	return &PagesHandler{Base: base}
}

func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about", "About", nil)
}

func (h *PagesHandler) FAQ(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "faq", "FAQ", nil)
}

func (h *PagesHandler) HelpCenter(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "help-center", "Help Center", nil)
}

func (h *PagesHandler) ContactSupport(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "contact-support", "Contact Support", nil)
}

func (h *PagesHandler) SafetyGuidelines(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "safety-guidelines", "Safety Guidelines", nil)
}

func (h *PagesHandler) TermsOfService(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "terms-of-service", "Terms of Service", nil)
}

func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}
