package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/artpar/artistdesk/domain/auth"
	"github.com/artpar/artistdesk/ports"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) UsersPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := parsePage(r)

	users, err := h.users.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		h.serverError(w, err, "failed to list users")
		return
	}
	total, err := h.users.Count(ctx)
	if err != nil {
		h.serverError(w, err, "failed to count users")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderUsersPage(h.newPageData(r, w, "Users"), users, page, total)))
}

func (h *Handler) UserNewPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderUserFormPage(h.newPageData(r, w, "Add User"), "/users", nil, nil, false)))
}

func (h *Handler) UserCreate(w http.ResponseWriter, r *http.Request) {
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
		w.Write([]byte(h.renderUserFormPage(h.newPageData(r, w, "Add User"), "/users", data, result.Errors, false)))
		return
	}

	email := strings.ToLower(strings.TrimSpace(data["email"]))
	if _, err := h.users.GetByEmail(ctx, email); err == nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(h.renderUserFormPage(h.newPageData(r, w, "Add User"), "/users", data, map[string]string{"email": "Email already exists."}, false)))
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

	h.setFlash(w, "success", "User created successfully!")
	http.Redirect(w, r, "/users", http.StatusFound)
}

func (h *Handler) UserEditPage(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w)
		return
	}

	values := map[string]string{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"phone":      user.Phone,
		"dob":        user.DOB,
		"gender":     user.Gender,
		"address":    user.Address,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderUserFormPage(h.newPageData(r, w, "Edit User"), "/users/"+user.ID, values, nil, true)))
}

func (h *Handler) UserUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.users.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	data := map[string]string{
		"first_name": r.FormValue("first_name"),
		"last_name":  r.FormValue("last_name"),
		"email":      r.FormValue("email"),
		"phone":      r.FormValue("phone"),
		"dob":        r.FormValue("dob"),
		"gender":     r.FormValue("gender"),
		"address":    r.FormValue("address"),
	}

	result := auth.ValidateUpdate(data)
	if !result.Valid {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(h.renderUserFormPage(h.newPageData(r, w, "Edit User"), "/users/"+user.ID, data, result.Errors, true)))
		return
	}

	email := strings.ToLower(strings.TrimSpace(data["email"]))
	if other, err := h.users.GetByEmail(ctx, email); err == nil && other.ID != user.ID {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(h.renderUserFormPage(h.newPageData(r, w, "Edit User"), "/users/"+user.ID, data, map[string]string{"email": "Email already exists."}, true)))
		return
	}

	user.FirstName = strings.TrimSpace(data["first_name"])
	user.LastName = strings.TrimSpace(data["last_name"])
	user.Email = email
	user.Phone = strings.TrimSpace(data["phone"])
	user.DOB = strings.TrimSpace(data["dob"])
	user.Gender = strings.TrimSpace(data["gender"])
	user.Address = strings.TrimSpace(data["address"])
	user.UpdatedAt = time.Now().UTC()

	if err := h.users.Update(ctx, user); err != nil {
		h.serverError(w, err, "failed to update user")
		return
	}

	h.setFlash(w, "success", "User updated successfully!")
	http.Redirect(w, r, "/users", http.StatusFound)
}

func (h *Handler) UserDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	// Deleting yourself would orphan the current session mid-request.
	if current := getUser(ctx); current != nil && current.ID == id {
		h.setFlash(w, "error", "You cannot delete your own account.")
		http.Redirect(w, r, "/users", http.StatusFound)
		return
	}

	if err := h.users.Delete(ctx, id); err != nil {
		h.notFound(w)
		return
	}
	if err := h.sessions.DeleteByUser(ctx, id); err != nil {
		h.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user sessions")
	}

	h.logger.Info().Str("user_id", id).Msg("user deleted")
	h.setFlash(w, "success", "User deleted successfully!")
	http.Redirect(w, r, "/users", http.StatusFound)
}

// registrationForm collects the registration fields from a form submission.
func registrationForm(r *http.Request) map[string]string {
	return map[string]string{
		"first_name": r.FormValue("first_name"),
		"last_name":  r.FormValue("last_name"),
		"email":      r.FormValue("email"),
		"password":   r.FormValue("password"),
		"c_password": r.FormValue("c_password"),
		"phone":      r.FormValue("phone"),
		"dob":        r.FormValue("dob"),
		"gender":     r.FormValue("gender"),
		"address":    r.FormValue("address"),
		"role":       r.FormValue("role"),
	}
}
