package http

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gigboard/internal/http/handlers"
	httpmw "gigboard/internal/http/middleware"
	"gigboard/web"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	GigHandler         *handlers.GigHandler
	ApplicationHandler *handlers.ApplicationHandler
	PagesHandler       *handlers.PagesHandler
	SessionMiddleware  *httpmw.SessionMiddleware
	Logger             *slog.Logger
	RequestTimeout     time.Duration
}

type Router struct {
	deps   RouterDependencies
	static http.Handler
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	return &Router{
		deps:   deps,
		static: http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))),
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover(r.deps.Logger),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	// Every page resolves the session cookie so the layout knows who is
	// signed in and which flashes to show.
	return r.deps.SessionMiddleware.Resolve(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/static/"):
			r.static.ServeHTTP(w, req)
			return
		case req.Method == http.MethodGet && path == "/":
			r.deps.GigHandler.Home(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs/":
			r.deps.GigHandler.List(w, req)
			return
		case req.Method == http.MethodGet && path == "/login/":
			r.deps.AuthHandler.LoginForm(w, req)
			return
		case req.Method == http.MethodPost && path == "/login/":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && path == "/signup/":
			r.deps.AuthHandler.SignupForm(w, req)
			return
		case req.Method == http.MethodPost && path == "/signup/":
			r.deps.AuthHandler.Signup(w, req)
			return
		case req.Method == http.MethodPost && path == "/logout/":
			r.deps.AuthHandler.Logout(w, req)
			return
		case req.Method == http.MethodGet && path == "/about/":
			r.deps.PagesHandler.About(w, req)
			return
		case req.Method == http.MethodGet && path == "/faq/":
			r.deps.PagesHandler.FAQ(w, req)
			return
		case req.Method == http.MethodGet && path == "/help/":
			r.deps.PagesHandler.HelpCenter(w, req)
			return
		case req.Method == http.MethodGet && path == "/contact/":
			r.deps.PagesHandler.ContactSupport(w, req)
			return
		case req.Method == http.MethodGet && path == "/safety/":
			r.deps.PagesHandler.SafetyGuidelines(w, req)
			return
		case req.Method == http.MethodGet && path == "/terms/":
			r.deps.PagesHandler.TermsOfService(w, req)
			return
		}

		if path == "/post-job/" || path == "/profile/" || path == "/inbox/" ||
			strings.HasPrefix(path, "/apply/") || strings.HasPrefix(path, "/applications/") {
			protected := httpmw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		r.deps.PagesHandler.NotFound(w, req)
	}))
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/post-job/":
		r.deps.GigHandler.PostForm(w, req)
		return
	case req.Method == http.MethodPost && path == "/post-job/":
		r.deps.GigHandler.Create(w, req)
		return
	case req.Method == http.MethodGet && path == "/profile/":
		r.deps.GigHandler.Profile(w, req)
		return
	case req.Method == http.MethodGet && path == "/inbox/":
		r.deps.ApplicationHandler.Inbox(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/apply/"):
		r.deps.ApplicationHandler.Apply(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/accept/"):
		r.deps.ApplicationHandler.Accept(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/reject/"):
		r.deps.ApplicationHandler.Reject(w, req)
		return
	}

	r.deps.PagesHandler.NotFound(w, req)
}
