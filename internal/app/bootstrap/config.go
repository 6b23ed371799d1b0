// internal/app/bootstrap/config.go
package bootstrap

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the portfolio.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: session_key, static_dir, etc.
//   - Environment variables: PORTFOLIO_SESSION_KEY, PORTFOLIO_STATIC_DIR, etc.
//   - Command-line flags: --session_key, --static_dir, etc.
var appConfigKeys = []config.AppKey{
	{Name: "session_key", Default: "", Desc: "View state cookie signing key (random per run in dev when blank)"},
	{Name: "session_name", Default: "portfolio-session", Desc: "View state cookie name"},
	{Name: "session_domain", Default: "", Desc: "View state cookie domain (blank means current host)"},
	{Name: "static_dir", Default: "public", Desc: "Directory served under /static"},
	{Name: "site_title", Default: "nilsiker", Desc: "Page title"},
	{Name: "action_limit", Default: 60, Desc: "POST actions allowed per client per window"},
	{Name: "action_window", Default: "1m", Desc: "Rate limit window for POST actions (e.g., 1m, 30s)"},
	{Name: "trust_proxy", Default: false, Desc: "Trust X-Forwarded-For/X-Real-IP (only behind a proxy that sets them)"},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges flags > env > files > defaults.
// Outside prod a blank session key is replaced with a random one, so
// cookies from a previous run stop decoding after a restart.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PORTFOLIO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		StaticDir:     appValues.String("static_dir"),
		SiteTitle:     appValues.String("site_title"),
		ActionLimit:   appValues.Int("action_limit"),
		ActionWindow:  appValues.Duration("action_window", time.Minute),
		TrustProxy:    appValues.Bool("trust_proxy"),
	}

	if appCfg.SessionKey == "" && coreCfg.Env != "prod" {
		appCfg.SessionKey = devSessionKey()
		logger.Warn("no session_key configured; generated a random key for this run")
	}

	return coreCfg, appCfg, nil
}

// devSessionKey returns 64 hex chars of fresh randomness.
func devSessionKey() string {
	return hex.EncodeToString(securecookie.GenerateRandomKey(32))
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(appCfg); err != nil {
		logger.Error("invalid app config", zap.Error(err))
		return fmt.Errorf("invalid app config: %w", err)
	}

	if coreCfg.Env == "prod" && len(appCfg.SessionKey) < 32 {
		return fmt.Errorf("session_key must be at least 32 characters in prod")
	}

	return nil
}

func validateAppConfig(appCfg AppConfig) error {
	err := validate.Struct(appCfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
