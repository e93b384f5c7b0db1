package httpx

import (
	"context"
	"net/http"
	"time"

	domainauth "github.com/genzet/journal-ui/internal/domain/auth"
	apperrors "github.com/genzet/journal-ui/internal/errors"
	"github.com/genzet/journal-ui/internal/http/validation"
	"github.com/genzet/journal-ui/internal/ports"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 6
	passwordMaxLen = 100
)

type authPageSpec struct {
	Meta        PageMeta
	Action      string
	SuccessPath string
}

func loginPageSpec() authPageSpec {
	return authPageSpec{
		Meta:        PageMeta{Title: "Journal - Sign In", PageTitle: "Sign In", CurrentPage: PageLogin},
		Action:      "/login",
		SuccessPath: "/",
	}
}

func registerPageSpec() authPageSpec {
	return authPageSpec{
		Meta:        PageMeta{Title: "Journal - Register", PageTitle: "Register", CurrentPage: PageRegister},
		Action:      "/register",
		SuccessPath: "/login?registered=1",
	}
}

func adminLoginPageSpec() authPageSpec {
	return authPageSpec{
		Meta:        PageMeta{Title: "Journal - Admin Sign In", PageTitle: "Admin Sign In", CurrentPage: PageAdminLogin},
		Action:      "/admin-login",
		SuccessPath: "/admin/articles",
	}
}

func adminRegisterPageSpec() authPageSpec {
	return authPageSpec{
		Meta:        PageMeta{Title: "Journal - Admin Register", PageTitle: "Admin Register", CurrentPage: PageAdminRegister},
		Action:      "/admin-register",
		SuccessPath: "/admin-login?registered=1",
	}
}

// LoginForm renders the sign-in page.
func (h *UIHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderAuthForm(w, r, loginPageSpec(), nil)
}

// RegisterForm renders the account registration page.
func (h *UIHandlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderAuthForm(w, r, registerPageSpec(), nil)
}

// AdminLoginForm renders the admin sign-in page.
func (h *UIHandlers) AdminLoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderAuthForm(w, r, adminLoginPageSpec(), nil)
}

// AdminRegisterForm renders the admin registration page.
func (h *UIHandlers) AdminRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderAuthForm(w, r, adminRegisterPageSpec(), nil)
}

func (h *UIHandlers) renderAuthForm(w http.ResponseWriter, r *http.Request, spec authPageSpec, extra map[string]any) {
	builder := NewTemplateData(r, spec.Meta).
		With("Action", spec.Action).
		With("RedirectURI", formOrQueryRedirect(r)).
		With("Registered", r.URL.Query().Get("registered") == "1").
		With("Username", "").
		With("Errors", map[string]string{})

	for k, v := range extra {
		builder.With(k, v)
	}
	h.renderPage(w, r, builder.Build())
}

// formOrQueryRedirect keeps the post-login destination alive across form
// roundtrips: the GET carries it in the query, failed POSTs in the form body.
func formOrQueryRedirect(r *http.Request) string {
	if v := safeRedirectPath(r.PostFormValue("redirect_uri")); v != "" {
		return v
	}
	return safeRedirectPath(r.URL.Query().Get("redirect_uri"))
}

// Login verifies credentials and establishes a session.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	h.handleLogin(w, r, loginPageSpec(), h.AuthSvc.Login)
}

// AdminLogin verifies credentials and requires the admin role before a
// session is established.
func (h *UIHandlers) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.handleLogin(w, r, adminLoginPageSpec(), h.AuthSvc.AdminLogin)
}

func (h *UIHandlers) handleLogin(
	w http.ResponseWriter,
	r *http.Request,
	spec authPageSpec,
	login func(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error),
) {
	if err := r.ParseForm(); err != nil {
		h.renderAuthForm(w, r, spec, map[string]any{"Error": true, "ErrorMessage": "Invalid form submission."})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	errs := validation.Run(
		map[string]string{"username": username, "password": password},
		map[string][]validation.Validator{
			"username": {validation.Required("Username", usernameMaxLen)},
			"password": {validation.Required("Password", passwordMaxLen)},
		},
	)
	if len(errs) > 0 {
		h.renderAuthForm(w, r, spec, map[string]any{"Errors": errs, "Username": username})
		return
	}

	session, err := login(r.Context(), ports.Credentials{Username: username, Password: password})
	if err != nil {
		h.logger().Warn("login failed", "username", username, "error", err)
		h.renderAuthForm(w, r, spec, map[string]any{
			"Error":        true,
			"ErrorMessage": loginErrorMessage(err),
			"Username":     username,
		})
		return
	}

	setSessionCookie(w, r, session)

	target := safeRedirectPath(r.PostFormValue("redirect_uri"))
	if target == "" {
		target = spec.SuccessPath
	}
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func loginErrorMessage(err error) string {
	switch {
	case apperrors.IsUnauthorized(err) || apperrors.IsValidation(err):
		return "Invalid username or password."
	case apperrors.IsForbidden(err):
		return "Access denied: this account does not have admin access."
	case apperrors.IsMalformed(err):
		return "Sign-in failed due to an unexpected response. Please try again."
	default:
		return "Sign-in is temporarily unavailable. Please try again."
	}
}

// Register creates a regular user account and sends the user to sign in.
func (h *UIHandlers) Register(w http.ResponseWriter, r *http.Request) {
	h.handleRegister(w, r, registerPageSpec(), domainauth.RoleUser)
}

// AdminRegister creates an admin account and sends the user to the admin
// sign-in page.
func (h *UIHandlers) AdminRegister(w http.ResponseWriter, r *http.Request) {
	h.handleRegister(w, r, adminRegisterPageSpec(), domainauth.RoleAdmin)
}

func (h *UIHandlers) handleRegister(w http.ResponseWriter, r *http.Request, spec authPageSpec, role domainauth.Role) {
	if err := r.ParseForm(); err != nil {
		h.renderAuthForm(w, r, spec, map[string]any{"Error": true, "ErrorMessage": "Invalid form submission."})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm_password")

	errs := validation.Run(
		map[string]string{"username": username, "password": password, "confirm_password": confirm},
		map[string][]validation.Validator{
			"username":         {validation.RequiredRange("Username", usernameMinLen, usernameMaxLen)},
			"password":         {validation.RequiredRange("Password", passwordMinLen, passwordMaxLen)},
			"confirm_password": {validation.Matches("Confirm password", password)},
		},
	)
	if len(errs) > 0 {
		h.renderAuthForm(w, r, spec, map[string]any{"Errors": errs, "Username": username})
		return
	}

	in := ports.RegisterInput{Username: username, Password: password, Role: role}
	if err := h.AuthSvc.Register(r.Context(), in); err != nil {
		h.logger().Warn("registration failed", "username", username, "error", err)
		msg := apperrors.Message(err, "Registration failed. Please try again.")
		if !apperrors.IsValidation(err) {
			msg = "Registration is temporarily unavailable. Please try again."
		}
		h.renderAuthForm(w, r, spec, map[string]any{"Error": true, "ErrorMessage": msg, "Username": username})
		return
	}

	if IsHTMX(r) {
		HTMX(w).Redirect(spec.SuccessPath)
		return
	}
	http.Redirect(w, r, spec.SuccessPath, http.StatusSeeOther)
}

// Logout removes the server-side session and clears the cookie.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.AuthSvc.Logout(r.Context(), cookie.Value); err != nil {
			h.logger().Warn("logout failed", "error", err)
		}
	}
	clearSessionCookie(w, r)

	if IsHTMX(r) {
		HTMX(w).Redirect("/")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AuthStatus reports the current session as JSON, for client scripts that
// need to know who is signed in.
func (h *UIHandlers) AuthStatus(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"username":      session.Username,
		"role":          session.Role,
	})
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, session *domainauth.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil || isForwardedHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil || isForwardedHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
