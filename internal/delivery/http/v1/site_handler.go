package v1

import (
	"go-portfolio-backend/pkg/content"
	"go-portfolio-backend/pkg/validation"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContactEndpoint is where the page's contact form posts to.
const ContactEndpoint = "/api/contact"

// PageData is the view model of index.html.
type PageData struct {
	Portfolio       *content.Portfolio
	Rules           map[string]validation.Rule
	ContactEndpoint string
}

type SiteHandler struct {
	page PageData
}

// NewSiteHandler registers the portfolio page. The page data never changes after startup.
func NewSiteHandler(r gin.IRoutes, portfolio *content.Portfolio, rules []validation.Rule) {
	byField := make(map[string]validation.Rule, len(rules))
	for _, rule := range rules {
		byField[rule.Field] = rule
	}

	handler := &SiteHandler{
		page: PageData{
			Portfolio:       portfolio,
			Rules:           byField,
			ContactEndpoint: ContactEndpoint,
		},
	}

	r.GET("/", handler.Index)
}

func (h *SiteHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page)
}
