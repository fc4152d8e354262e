package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
)

// PageMeta names the page being rendered.
type PageMeta struct {
	Title       string
	CurrentPage string
}

// NavLink is one dashboard entry in the navigation bar and on the home page.
type NavLink struct {
	Title  string
	Path   string
	Active bool
}

// basePageData builds the layout data shared by every page.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":           meta.Title,
		"CurrentPage":     meta.CurrentPage,
		"IsAuthenticated": false,
	}
	if tok := GetCSRFToken(r); tok != "" {
		data["CSRFToken"] = tok
	}
	if s, ok := SessionFromContext(r.Context()); ok {
		data["IsAuthenticated"] = true
		data["User"] = s
		data["Nav"] = navFor(s.Role, meta.CurrentPage)
	}
	return data
}

// navFor lists the dashboards a role may open.
func navFor(role domainauth.Role, current string) []NavLink {
	links := make([]NavLink, 0, len(dashboardViews))
	for _, v := range dashboardViews {
		if !role.Satisfies(v.Role) {
			continue
		}
		links = append(links, NavLink{Title: v.Title, Path: v.Path, Active: v.Page == current})
	}
	return links
}

// Pages renders full pages or htmx fragments. A nil renderer degrades to plain text.
type Pages struct {
	T      *TemplateRenderer
	Logger *slog.Logger
}

func (p *Pages) logger() *slog.Logger {
	if p != nil && p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// Render writes data with the layout, or only the content block for htmx requests.
func (p *Pages) Render(w http.ResponseWriter, r *http.Request, status int, data map[string]any) {
	if p == nil || p.T == nil {
		msg, _ := data["Error"].(string)
		if msg == "" {
			msg, _ = data["Title"].(string)
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(statusOrOK(status))
		_, _ = w.Write([]byte(msg))
		return
	}

	var err error
	if IsHTMX(r) {
		err = p.T.RenderPartial(w, status, data)
	} else {
		err = p.T.RenderFull(w, status, data)
	}
	if err != nil {
		p.logger().ErrorContext(r.Context(), "failed to render page",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Error renders the error page with a user-facing message.
func (p *Pages) Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := basePageData(r, PageMeta{Title: http.StatusText(status), CurrentPage: PageError})
	data["Status"] = status
	data["Error"] = message
	p.Render(w, r, status, data)
}

// AccessDenied renders the 403 page naming the required and actual roles.
func (p *Pages) AccessDenied(w http.ResponseWriter, r *http.Request, denied *domainauth.InsufficientRoleError) {
	data := basePageData(r, PageMeta{Title: "Access denied", CurrentPage: PageAccessDenied})
	data["RequiredRole"] = denied.Required
	data["ActualRole"] = denied.Actual
	data["Error"] = denied.Error()
	p.Render(w, r, http.StatusForbidden, data)
}

func statusOrOK(status int) int {
	if status == 0 {
		return http.StatusOK
	}
	return status
}
