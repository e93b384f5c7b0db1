package httpx

// CurrentPage constants identify pages for navigation state and template mapping.
const (
	PageHome          = "home"
	PageArticles      = "articles"
	PageArticleView   = "article-view"
	PageAdminArticles = "admin-articles"
	PageLogin         = "login"
	PageRegister      = "register"
	PageAdminLogin    = "admin-login"
	PageAdminRegister = "admin-register"
	PageNotFound      = "not-found"
)

const (
	// DefaultPageSize is the article count requested per listing page.
	DefaultPageSize = 9

	// AdminPageSize is the row count per page in the admin article table.
	AdminPageSize = 10
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates"
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageHome:          "articles-content",
	PageArticles:      "articles-content",
	PageArticleView:   "article-view-content",
	PageAdminArticles: "admin-articles-content",
	PageLogin:         "login-content",
	PageRegister:      "register-content",
	PageAdminLogin:    "admin-login-content",
	PageAdminRegister: "admin-register-content",
	PageNotFound:      "not-found-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to the article listing for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "articles-content"
}
