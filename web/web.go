// Package web provides the server-rendered artist management portal.
package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/artpar/artistdesk/adapters/metrics"
	"github.com/artpar/artistdesk/app"
	"github.com/artpar/artistdesk/domain/auth"
	"github.com/artpar/artistdesk/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const (
	sessionCookie = "session"
	perPage       = 10
)

// Handler provides the portal endpoints.
type Handler struct {
	users     ports.UserStore
	artists   ports.ArtistStore
	music     ports.MusicStore
	sessions  ports.SessionStore
	transfer  *app.TransferService
	hasher    ports.Hasher
	userIDs   ports.IDGenerator
	artistIDs ports.IDGenerator
	musicIDs  ports.IDGenerator
	metrics   *metrics.Collector
	logger    zerolog.Logger

	appName         string
	sessionLifetime time.Duration
	cookieSecure    bool
}

// Deps contains dependencies for the portal handler.
type Deps struct {
	Users     ports.UserStore
	Artists   ports.ArtistStore
	Music     ports.MusicStore
	Sessions  ports.SessionStore
	Transfer  *app.TransferService
	Hasher    ports.Hasher
	UserIDs   ports.IDGenerator
	ArtistIDs ports.IDGenerator
	MusicIDs  ports.IDGenerator
	Metrics   *metrics.Collector
	Logger    zerolog.Logger

	AppName         string
	SessionLifetime time.Duration
	CookieSecure    bool
}

// NewHandler creates a new portal handler.
func NewHandler(deps Deps) *Handler {
	appName := deps.AppName
	if appName == "" {
		appName = "ArtistDesk"
	}
	lifetime := deps.SessionLifetime
	if lifetime == 0 {
		lifetime = 24 * time.Hour
	}

	return &Handler{
		users:           deps.Users,
		artists:         deps.Artists,
		music:           deps.Music,
		sessions:        deps.Sessions,
		transfer:        deps.Transfer,
		hasher:          deps.Hasher,
		userIDs:         deps.UserIDs,
		artistIDs:       deps.ArtistIDs,
		musicIDs:        deps.MusicIDs,
		metrics:         deps.Metrics,
		logger:          deps.Logger,
		appName:         appName,
		sessionLifetime: lifetime,
		cookieSecure:    deps.CookieSecure,
	}
}

// Router returns the portal router.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(h.instrument)

	// Public routes (no auth required)
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.RegisterSubmit)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)

	// Protected routes (require a valid session)
	r.Group(func(r chi.Router) {
		r.Use(h.AuthMiddleware)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
		})
		r.Get("/dashboard", h.Dashboard)
		r.Get("/logout", h.Logout)
		r.Post("/logout", h.Logout)

		// User management (super admin only)
		r.Group(func(r chi.Router) {
			r.Use(h.RequireRoles(auth.RoleSuperAdmin))

			r.Get("/users", h.UsersPage)
			r.Get("/users/new", h.UserNewPage)
			r.Post("/users", h.UserCreate)
			r.Get("/users/{id}/edit", h.UserEditPage)
			r.Post("/users/{id}", h.UserUpdate)
			r.Post("/users/{id}/delete", h.UserDelete)
		})

		// Artist management (super admin and artist manager)
		r.Group(func(r chi.Router) {
			r.Use(h.RequireRoles(auth.RoleSuperAdmin, auth.RoleArtistManager))

			r.Get("/artists", h.ArtistsPage)
			r.Get("/artists/new", h.ArtistNewPage)
			r.Post("/artists", h.ArtistCreate)
			r.Get("/artists/{id}/edit", h.ArtistEditPage)
			r.Post("/artists/{id}", h.ArtistUpdate)
			r.Post("/artists/{id}/delete", h.ArtistDelete)

			r.Post("/artists/import", h.ArtistsImport)
			r.Get("/artists/export", h.ArtistsExport)

			r.Get("/artists/{id}/songs", h.SongsPage)
			r.Get("/artists/{id}/songs/new", h.SongNewPage)
			r.Post("/artists/{id}/songs", h.SongCreate)
			r.Get("/artists/{id}/songs/{songID}/edit", h.SongEditPage)
			r.Post("/artists/{id}/songs/{songID}", h.SongUpdate)
			r.Post("/artists/{id}/songs/{songID}/delete", h.SongDelete)
		})

		// Artist self-service (artist role only)
		r.Group(func(r chi.Router) {
			r.Use(h.RequireRoles(auth.RoleArtist))

			r.Get("/my-songs", h.MySongsPage)
			r.Get("/my-songs/new", h.MySongNewPage)
			r.Post("/my-songs", h.MySongCreate)
			r.Get("/my-songs/{songID}/edit", h.MySongEditPage)
			r.Post("/my-songs/{songID}", h.MySongUpdate)
			r.Post("/my-songs/{songID}/delete", h.MySongDelete)
		})
	})

	return r
}

// instrument records request metrics and a debug log line per request.
func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.metrics.RequestsInFlight.Inc()
		defer h.metrics.RequestsInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = r.URL.Path
		}
		status := strconv.Itoa(ww.Status())
		elapsed := time.Since(start)

		h.metrics.RequestsTotal.WithLabelValues(r.Method, pattern, status).Inc()
		h.metrics.RequestDuration.WithLabelValues(r.Method, pattern, status).Observe(elapsed.Seconds())

		h.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", elapsed).
			Msg("request")
	})
}

// AuthMiddleware resolves the session cookie to a user. Anonymous requests
// are sent to the login page with the original path in the next parameter.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			h.redirectToLogin(w, r)
			return
		}

		sess, err := h.sessions.Get(r.Context(), cookie.Value)
		if err != nil || sess.IsExpired() {
			h.clearSessionCookie(w)
			h.redirectToLogin(w, r)
			return
		}

		user, err := h.users.Get(r.Context(), sess.UserID)
		if err != nil {
			h.clearSessionCookie(w)
			h.redirectToLogin(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), &user)))
	})
}

func (h *Handler) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	h.setFlash(w, "error", "Please login to continue.")
	// RequestURI keeps the query string; escaping keeps it one parameter.
	http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
}

// RequireRoles restricts a route group to the given roles. Everyone else is
// bounced to the dashboard.
func (h *Handler) RequireRoles(roles ...auth.Role) func(http.Handler) http.Handler {
	allowed := make(map[auth.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := getUser(r.Context())
			if user == nil || !allowed[user.Role] {
				role := "anonymous"
				if user != nil {
					role = string(user.Role)
				}
				h.metrics.AccessDenied.WithLabelValues(role).Inc()
				h.setFlash(w, "error", "You are not authorized to access this page.")
				http.Redirect(w, r, "/dashboard", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// safeNext returns a same-origin redirect target. Anything that could leave
// the site falls back to the dashboard.
func safeNext(next string) string {
	if next == "" {
		return "/dashboard"
	}
	if !strings.HasPrefix(next, "/") {
		return "/dashboard"
	}
	// "//host" and "/\host" are treated as absolute URLs by browsers.
	if strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/dashboard"
	}
	return next
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.sessionLifetime.Seconds()),
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		MaxAge:   -1,
	})
}

// parsePage reads the page query parameter, 1-based.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *Handler) notFound(w http.ResponseWriter) {
	h.renderError(w, http.StatusNotFound, "The page you are looking for does not exist.")
}

func (h *Handler) serverError(w http.ResponseWriter, err error, msg string) {
	h.logger.Error().Err(err).Msg(msg)
	h.renderError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
