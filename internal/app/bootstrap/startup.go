// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"os"

	"github.com/dalemusser/waffle/config"
	"github.com/nilsiker/portfolio/internal/app/pages"
	"github.com/nilsiker/portfolio/internal/app/system/route"
	"go.uber.org/zap"
)

// Startup runs one-time checks after deps are built and before the HTTP
// handler is. It reports the page catalog and warns when the static
// directory is missing, since every card image would 404.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if fi, err := os.Stat(appCfg.StaticDir); err != nil || !fi.IsDir() {
		logger.Warn("static directory not found; assets will 404",
			zap.String("static_dir", appCfg.StaticDir))
	}

	logger.Info("page catalog loaded",
		zap.Int("routes", len(route.All())),
		zap.Int("projects", len(pages.LoadProjects())),
		zap.Int("contributions", len(pages.LoadContributions())),
	)
	return nil
}
