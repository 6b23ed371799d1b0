// internal/app/bootstrap/routes.go
package bootstrap

import (
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	counterfeature "github.com/nilsiker/portfolio/internal/app/features/counter"
	healthfeature "github.com/nilsiker/portfolio/internal/app/features/health"
	secretfeature "github.com/nilsiker/portfolio/internal/app/features/secret"
	sitefeature "github.com/nilsiker/portfolio/internal/app/features/site"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, deps, and Startup have completed.
// The site router is mounted at / and resolves every page, the 404 fallback
// included; the action endpoints for the secret switch and the counter are
// mounted beside it.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	if deps.Sessions == nil || deps.Actions == nil {
		return nil, errors.New("deps not initialized")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if appCfg.TrustProxy {
		// Client-supplied forwarding headers would let anyone pick their
		// rate limit key.
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.GetHead)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.StaticDir))

	// State-changing actions; each answers 303 back to the page
	actions := r.With(deps.Actions.Middleware(logger))

	secretHandler := secretfeature.NewHandler(deps.Sessions, logger)
	actions.Mount("/secret", secretfeature.Routes(secretHandler))

	counterHandler := counterfeature.NewHandler(deps.Sessions, logger)
	actions.Mount("/counter", counterfeature.Routes(counterHandler))

	// Pages, including the 404 fallback for every path nothing above claims
	siteHandler := sitefeature.NewHandler(deps.Sessions, appCfg.SiteTitle, logger)
	r.Mount("/", sitefeature.Routes(siteHandler))

	return r, nil
}
