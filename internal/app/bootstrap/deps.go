// internal/app/bootstrap/deps.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/nilsiker/portfolio/internal/app/system/ratelimit"
	"github.com/nilsiker/portfolio/internal/app/system/viewstate"
	"go.uber.org/zap"
)

// DBDeps holds the back-end dependencies for the app. The portfolio has no
// database; its backends are the signed cookie store for view state and
// the in-memory action limiter.
type DBDeps struct {
	Sessions *viewstate.Manager
	Actions  *ratelimit.Limiter
}

// ConnectDB builds the view state store and the action rate limiter.
// Secure cookies are enabled in production mode.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	secure := coreCfg.Env == "prod"
	sessions, err := viewstate.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("view state store init failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("view state store: %w", err)
	}
	return DBDeps{
		Sessions: sessions,
		Actions:  ratelimit.New(appCfg.ActionLimit, appCfg.ActionWindow),
	}, nil
}

// EnsureSchema is a no-op; there is nothing persistent to migrate.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
