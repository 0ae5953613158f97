package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/artpar/artistdesk/domain/auth"
	"github.com/artpar/artistdesk/ports"
)

// -----------------------------------------------------------------------------
// Registration
// -----------------------------------------------------------------------------

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderRegisterPage(nil, nil, h.popFlash(w, r))))
}

func (h *Handler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	data := registrationForm(r)
	result := auth.ValidateRegistration(data)
	if !result.Valid {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(h.renderRegisterPage(data, result.Errors, nil)))
		return
	}

	email := strings.ToLower(strings.TrimSpace(data["email"]))
	if _, err := h.users.GetByEmail(ctx, email); err == nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(h.renderRegisterPage(data, map[string]string{"email": "Email already exists."}, nil)))
		return
	}

	passwordHash, err := h.hasher.Hash(data["password"])
	if err != nil {
		h.serverError(w, err, "failed to hash password")
		return
	}

	now := time.Now().UTC()
	user := ports.User{
		ID:           h.userIDs.New(),
		FirstName:    strings.TrimSpace(data["first_name"]),
		LastName:     strings.TrimSpace(data["last_name"]),
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        strings.TrimSpace(data["phone"]),
		DOB:          strings.TrimSpace(data["dob"]),
		Gender:       strings.TrimSpace(data["gender"]),
		Address:      strings.TrimSpace(data["address"]),
		Role:         auth.Role(data["role"]),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.users.Create(ctx, user); err != nil {
		h.serverError(w, err, "failed to create user")
		return
	}

	// Artists get a profile row so their songs have somewhere to live.
	if user.Role == auth.RoleArtist {
		artist := ports.Artist{
			ID:      h.artistIDs.New(),
			UserID:  user.ID,
			Name:    user.FullName(),
			DOB:     user.DOB,
			Gender:  user.Gender,
			Address: user.Address,
		}
		if err := h.artists.Create(ctx, artist); err != nil {
			h.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to create artist profile")
		}
	}

	h.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	h.setFlash(w, "success", "Registration successful! Please login.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

// -----------------------------------------------------------------------------
// Login / logout
// -----------------------------------------------------------------------------

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderLoginPage("", r.URL.Query().Get("next"), nil, h.popFlash(w, r))))
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	data := map[string]string{
		"email":    r.FormValue("email"),
		"password": r.FormValue("password"),
	}
	next := r.FormValue("next")

	result := auth.ValidateLogin(data)
	if !result.Valid {
		h.metrics.LoginsTotal.WithLabelValues("invalid_form").Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(h.renderLoginPage(data["email"], next, result.Errors, nil)))
		return
	}

	email := strings.ToLower(strings.TrimSpace(data["email"]))
	user, err := h.users.GetByEmail(ctx, email)
	if err != nil || !h.hasher.Compare(user.PasswordHash, data["password"]) {
		h.metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(h.renderLoginPage(data["email"], next, nil, &FlashMessage{Type: "error", Message: "Invalid email or password."})))
		return
	}

	sess := auth.GenerateSession(user.ID, user.Email, r.RemoteAddr, r.UserAgent(), h.sessionLifetime)
	if err := h.sessions.Create(ctx, sess); err != nil {
		h.serverError(w, err, "failed to create session")
		return
	}

	h.metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.metrics.SessionsAlive.Inc()
	h.setSessionCookie(w, sess.ID)
	h.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")

	http.Redirect(w, r, safeNext(next), http.StatusFound)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err == nil {
			h.metrics.SessionsAlive.Dec()
		}
	}
	h.clearSessionCookie(w)
	h.setFlash(w, "success", "You have been logged out.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

// -----------------------------------------------------------------------------
// Dashboard
// -----------------------------------------------------------------------------

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := getUser(ctx)

	stats := dashboardStats{}
	switch user.Role {
	case auth.RoleSuperAdmin:
		stats.UserCount, _ = h.users.Count(ctx)
		stats.ArtistCount, _ = h.artists.Count(ctx)
		stats.SongCount, _ = h.music.Count(ctx)
	case auth.RoleArtistManager:
		stats.ArtistCount, _ = h.artists.Count(ctx)
		stats.SongCount, _ = h.music.Count(ctx)
	case auth.RoleArtist:
		if artist, err := h.artists.GetByUser(ctx, user.ID); err == nil {
			stats.SongCount, _ = h.music.CountByArtist(ctx, artist.ID)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderDashboardPage(h.newPageData(r, w, "Dashboard"), stats)))
}
