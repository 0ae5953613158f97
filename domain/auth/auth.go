// Package auth provides authentication value types and pure validation
// rule sets for account forms. This package has NO dependencies on I/O.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/artpar/artistdesk/domain/validate"
)

// Role controls which portal pages an account can reach.
type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RoleArtistManager Role = "artist_manager"
	RoleArtist        Role = "artist"
)

// Roles lists every valid role.
var Roles = []Role{RoleSuperAdmin, RoleArtistManager, RoleArtist}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleArtistManager, RoleArtist:
		return true
	}
	return false
}

// Label returns the display name of the role.
func (r Role) Label() string {
	return validate.Label(string(r))
}

// RegistrationRules validates the account registration form.
var RegistrationRules = validate.MustParse(map[string][]string{
	"first_name": {"required", "min_length:3", "max_length:50"},
	"last_name":  {"required", "min_length:3", "max_length:50"},
	"email":      {"required", "email", "max_length:100"},
	"password":   {"required", "min_length:8", "max_length:50"},
	"c_password": {"required", "min_length:8", "max_length:50", "match:password"},
	"phone":      {"required", "numeric", "min_length:10", "max_length:15"},
	"dob":        {"required", "date"},
	"gender":     {"required", "in:m,f,o"},
	"address":    {"required", "min_length:3", "max_length:255"},
	"role":       {"required", "in:super_admin,artist_manager,artist"},
})

// LoginRules validates the login form.
var LoginRules = validate.MustParse(map[string][]string{
	"email":    {"required", "email"},
	"password": {"required"},
})

// UpdateRules validates the user edit form. Same as registration minus
// the password pair and role (role changes go through a super admin).
var UpdateRules = validate.MustParse(map[string][]string{
	"first_name": {"required", "min_length:3", "max_length:50"},
	"last_name":  {"required", "min_length:3", "max_length:50"},
	"email":      {"required", "email", "max_length:100"},
	"phone":      {"required", "numeric", "min_length:10", "max_length:15"},
	"dob":        {"required", "date"},
	"gender":     {"required", "in:m,f,o"},
	"address":    {"required", "min_length:3", "max_length:255"},
})

// Result is the outcome of validating a form.
type Result struct {
	Valid  bool
	Errors map[string]string // field -> first error message
}

func resultOf(errs map[string]string) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateRegistration validates a registration form (pure function).
func ValidateRegistration(data map[string]string) Result {
	return resultOf(RegistrationRules.Apply(data))
}

// ValidateLogin validates a login form (pure function).
func ValidateLogin(data map[string]string) Result {
	return resultOf(LoginRules.Apply(data))
}

// ValidateUpdate validates a user edit form (pure function).
func ValidateUpdate(data map[string]string) Result {
	return resultOf(UpdateRules.Apply(data))
}

// ValidateRegistrationField validates one registration field in
// isolation, for interactive prompting. data must hold previously
// collected fields so cross-field rules (c_password) can see them.
// Returns the error message for the field, empty when valid.
func ValidateRegistrationField(field string, data map[string]string) (string, error) {
	msg, ok := RegistrationRules.ApplyField(field, data)
	if !ok {
		return "", fmt.Errorf("unknown registration field %q", field)
	}
	return msg, nil
}

// Session is a server-side login session (immutable value type).
type Session struct {
	ID        string
	UserID    string
	Email     string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// GenerateSession creates a new session with a random ID.
func GenerateSession(userID, email, ipAddress, userAgent string, expiresIn time.Duration) Session {
	idBytes := make([]byte, 16)
	rand.Read(idBytes)
	sessionID := "sess_" + hex.EncodeToString(idBytes)

	now := time.Now().UTC()
	return Session{
		ID:        sessionID,
		UserID:    userID,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: now.Add(expiresIn),
		CreatedAt: now,
	}
}

// IsExpired returns true if the session has expired.
func (s Session) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}
