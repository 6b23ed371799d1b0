// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration. Ports, TLS, and logging
// live in WAFFLE's CoreConfig.
//
// The validate tags are checked by ValidateConfig before anything is built.
type AppConfig struct {
	// View state cookie configuration
	SessionKey    string `validate:"required,min=16"`     // Secret key for signing the view state cookie
	SessionName   string `validate:"required,printascii"` // Cookie name (default: portfolio-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Site configuration
	StaticDir string `validate:"required"` // Directory served under /static
	SiteTitle string `validate:"required"` // <title> of every page

	// Per-client throttle on POST /secret and /counter/*
	ActionLimit  int           `validate:"gte=1"`   // Requests allowed per window
	ActionWindow time.Duration `validate:"gte=1ms"` // Window length

	// TrustProxy keys clients by X-Forwarded-For / X-Real-IP. Only enable it
	// behind a reverse proxy that overwrites those headers.
	TrustProxy bool
}
