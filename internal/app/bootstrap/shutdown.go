// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown tears down app resources. The cookie store holds nothing open;
// only the limiter's cleanup goroutine needs stopping.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Actions != nil {
		logger.Info("stopping action rate limiter")
		deps.Actions.Stop()
	}
	return nil
}
