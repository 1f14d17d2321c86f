package v1

import (
	"fmt"
	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/content"
	"go-portfolio-backend/pkg/metrics"
	"go-portfolio-backend/pkg/validation"
	"go-portfolio-backend/web"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Portfolio *content.Portfolio
	Config    *config.Config
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	r := gin.New()

	// Global Middlewares. Recovery first so panics in later middleware are caught.
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(otelgin.Middleware(deps.Config.Telemetry.ServiceName))
	r.Use(metrics.Middleware())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins, deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler())

	tmpl, err := template.ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(web.FS, web.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	// Site
	NewSiteHandler(r, deps.Portfolio, validation.ContactRules)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	NewHealthHandler(api, deps.HealthUC)
	NewContactHandler(api, deps.ContactUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}
