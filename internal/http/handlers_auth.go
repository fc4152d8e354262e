package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
	"github.com/miva/mind-dashboard/internal/service"
)

// AuthServiceInterface defines the auth operations the HTTP layer needs.
type AuthServiceInterface interface {
	Authorizer
	Login(ctx context.Context, in service.LoginInput) (*service.LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	SessionTTL() time.Duration
}

var _ AuthServiceInterface = (*service.AuthService)(nil)

const invalidCredentialsMessage = "Invalid username or password."

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	Pages        *Pages
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginPage renders the login form.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	if id := sessionIDFromRequest(r); id != "" {
		if _, err := h.Svc.RequireLogin(r.Context(), id); err == nil {
			http.Redirect(w, r, redirectURI, http.StatusSeeOther)
			return
		}
	}

	h.renderLogin(w, r, loginForm{RedirectURI: redirectURI})
}

type loginForm struct {
	Username    string
	RedirectURI string
	Error       string
	Status      int
}

func (h *AuthHandlers) renderLogin(w http.ResponseWriter, r *http.Request, f loginForm) {
	data := basePageData(r, PageMeta{Title: "Sign in", CurrentPage: PageLogin})
	data["Username"] = f.Username
	data["RedirectURI"] = f.RedirectURI
	if f.Error != "" {
		data["Error"] = f.Error
	}
	h.Pages.Render(w, r, f.Status, data)
}

// LoginSubmit handles the login form.
// POST /auth/login.
func (h *AuthHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Pages.Error(w, r, http.StatusBadRequest, "The login form could not be read.")
		return
	}
	username := r.PostFormValue("username")
	redirectURI := safeRedirectPath(r.PostFormValue("redirect_uri"))

	result, err := h.Svc.Login(r.Context(), service.LoginInput{
		Username:          username,
		Password:          r.PostFormValue("password"),
		PreviousSessionID: sessionIDFromRequest(r),
	})
	if err != nil {
		if errors.Is(err, domainauth.ErrInvalidCredentials) {
			h.renderLogin(w, r, loginForm{
				Username:    username,
				RedirectURI: redirectURI,
				Error:       invalidCredentialsMessage,
				Status:      http.StatusUnauthorized,
			})
			return
		}
		h.logger().ErrorContext(r.Context(), "login failed", "error", err)
		h.renderLogin(w, r, loginForm{
			Username:    username,
			RedirectURI: redirectURI,
			Error:       "Sign-in is temporarily unavailable. Please try again.",
			Status:      http.StatusInternalServerError,
		})
		return
	}

	setSessionCookie(w, r, h.CookieDomain, result.Session, h.Svc.SessionTTL())
	http.Redirect(w, r, redirectURI, http.StatusSeeOther)
}

type apiLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// APILogin is the JSON login endpoint.
// POST /api/auth/login.
func (h *AuthHandlers) APILogin(w http.ResponseWriter, r *http.Request) {
	var req apiLoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), service.LoginInput{
		Username:          req.Username,
		Password:          req.Password,
		PreviousSessionID: sessionIDFromRequest(r),
	})
	if err != nil {
		if errors.Is(err, domainauth.ErrInvalidCredentials) {
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "invalid_credentials",
				Err:     domainauth.ErrInvalidCredentials,
			})
			return
		}
		h.logger().ErrorContext(r.Context(), "api login failed", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     errors.New("login is temporarily unavailable"),
		})
		return
	}

	setSessionCookie(w, r, h.CookieDomain, result.Session, h.Svc.SessionTTL())
	WriteJSON(w, http.StatusOK, sessionPayload(&result.Session))
}

// Logout handles the logout endpoint.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if id := sessionIDFromRequest(r); id != "" {
		if err := h.Svc.Logout(r.Context(), id); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}

	clearCookie(w, r, h.CookieDomain, SessionCookieName)

	if wantsJSON(r) {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"redirect_to": LoginPath,
		})
		return
	}

	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	id := sessionIDFromRequest(r)
	if id == "" {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	session, err := h.Svc.RequireLogin(r.Context(), id)
	if err != nil {
		if !errors.Is(err, domainauth.ErrNotAuthenticated) {
			h.logger().ErrorContext(r.Context(), "session lookup failed", "error", err)
		}
		clearCookie(w, r, h.CookieDomain, SessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, sessionPayload(session))
}

func sessionPayload(s *domainauth.Session) map[string]any {
	return map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"username": s.Username,
			"role":     s.Role,
		},
		"expires_at": s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
