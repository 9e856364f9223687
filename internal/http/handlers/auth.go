package handlers

import (
	"net/http"
	"time"

	"gigboard/internal/app"
	"gigboard/internal/common"
	"gigboard/internal/domain/session"
	"gigboard/internal/http/middleware"
)

type AuthHandler struct {
	Base
	auth    *app.AuthService
	limiter middleware.Limiter
}

func NewAuthHandler(base Base, auth *app.AuthService, limiter middleware.Limiter) *AuthHandler {
	return &AuthHandler{Base: base, auth: auth, limiter: limiter}
}

func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "signup", "Sign up", nil)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil {
		if !h.limiter.Allow("signup:ip:"+middleware.ClientIP(r), 10, time.Minute) {
			h.renderError(w, r, http.StatusTooManyRequests, "signup", "Sign up", nil, "Too many attempts. Please try again in a minute.")
			return
		}
	}
	account, err := h.auth.Signup(r.Context(), app.SignupInput{
		Name:            formValue(r, "name"),
		Email:           formValue(r, "email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
		AcceptTerms:     r.FormValue("accept_terms") != "",
	})
	if err != nil {
		if common.Is(err, common.CodeConflict) {
			h.flashRedirect(w, r, session.FlashInfo, errorMessage(err), "/login/")
			return
		}
		h.renderError(w, r, http.StatusBadRequest, "signup", "Sign up", nil, errorMessage(err))
		return
	}
	if err := h.Sessions.Login(r.Context(), w, r, account.ID,
		session.Flash{Level: session.FlashSuccess, Message: "Account created successfully!"}); err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "signup", "Sign up", nil, errorMessage(err))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "login", "Log in", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil {
		if !h.limiter.Allow("login:ip:"+middleware.ClientIP(r), 10, time.Minute) {
			h.renderError(w, r, http.StatusTooManyRequests, "login", "Log in", nil, "Too many attempts. Please try again in a minute.")
			return
		}
	}
	account, err := h.auth.Login(r.Context(), formValue(r, "email"), r.FormValue("password"))
	if err != nil {
		status := http.StatusUnauthorized
		if !common.Is(err, common.CodeUnauthorized) {
			status = http.StatusInternalServerError
		}
		h.renderError(w, r, status, "login", "Log in", nil, errorMessage(err))
		return
	}
	if err := h.Sessions.Login(r.Context(), w, r, account.ID,
		session.Flash{Level: session.FlashSuccess, Message: "Logged in successfully!"}); err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "login", "Log in", nil, errorMessage(err))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Destroy(r.Context(), w, r)
	h.flashRedirect(w, r, session.FlashInfo, "You have been logged out.", "/")
}
