package web

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/artpar/artistdesk/ports"
)

// ctxKey is the context key type for web package values.
type ctxKey string

const currentUserKey ctxKey = "currentUser"

func withUser(ctx context.Context, user *ports.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

func getUser(ctx context.Context) *ports.User {
	user, _ := ctx.Value(currentUserKey).(*ports.User)
	return user
}

// FlashMessage is a one-shot notice shown on the next rendered page.
type FlashMessage struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// PageData carries common fields into every rendered page.
type PageData struct {
	Title   string
	User    *ports.User
	Flash   *FlashMessage
	AppName string
}

func (h *Handler) newPageData(r *http.Request, w http.ResponseWriter, title string) PageData {
	return PageData{
		Title:   title,
		User:    getUser(r.Context()),
		Flash:   h.popFlash(w, r),
		AppName: h.appName,
	}
}

const flashCookie = "flash"

// setFlash stores a message in a one-shot cookie.
func (h *Handler) setFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// popFlash reads and clears the flash cookie.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) *FlashMessage {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(raw, "|")
	if !ok || message == "" {
		return nil
	}
	return &FlashMessage{Type: kind, Message: message}
}
