package httpx

// CurrentPage constants identify the page being rendered inside the layout.
const (
	PageHome         = "home"
	PageLogin        = "login"
	PageStudent      = "student"
	PageFaculty      = "faculty"
	PageDeveloper    = "developer"
	PageAdmin        = "admin"
	PageAccessDenied = "access-denied"
	PageError        = "error"
)

// Cookie and route names shared by handlers and middleware.
const (
	SessionCookieName = "session_id"

	LoginPath  = "/auth/login"
	LogoutPath = "/auth/logout"
)

// Template paths used for loading templates in tests and dev mode.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates"
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageHome:         "home-content",
	PageLogin:        "login-content",
	PageStudent:      "student-content",
	PageFaculty:      "faculty-content",
	PageDeveloper:    "developer-content",
	PageAdmin:        "admin-content",
	PageAccessDenied: "access-denied-content",
	PageError:        "error-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Unknown pages fall back to the error page.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "error-content"
}
