package bootstrap

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		SessionKey:   strings.Repeat("k", 32),
		SessionName:  "portfolio-session",
		StaticDir:    "public",
		SiteTitle:    "nilsiker",
		ActionLimit:  100,
		ActionWindow: time.Minute,
	}
}

func TestValidateConfig_Accepts(t *testing.T) {
	for _, env := range []string{"dev", "prod"} {
		if err := ValidateConfig(&config.CoreConfig{Env: env}, validAppConfig(), testLogger()); err != nil {
			t.Errorf("env %s: unexpected error: %v", env, err)
		}
	}
}

func TestValidateConfig_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		mutate func(*AppConfig)
		want   string
	}{
		{"missing key", "dev", func(c *AppConfig) { c.SessionKey = "" }, "SessionKey"},
		{"short key", "dev", func(c *AppConfig) { c.SessionKey = "short" }, "SessionKey"},
		{"missing name", "dev", func(c *AppConfig) { c.SessionName = "" }, "SessionName"},
		{"non ascii name", "dev", func(c *AppConfig) { c.SessionName = "sessiön" }, "SessionName"},
		{"missing static dir", "dev", func(c *AppConfig) { c.StaticDir = "" }, "StaticDir"},
		{"missing title", "dev", func(c *AppConfig) { c.SiteTitle = "" }, "SiteTitle"},
		{"zero action limit", "dev", func(c *AppConfig) { c.ActionLimit = 0 }, "ActionLimit"},
		{"zero action window", "dev", func(c *AppConfig) { c.ActionWindow = 0 }, "ActionWindow"},
		{"prod key too short", "prod", func(c *AppConfig) { c.SessionKey = strings.Repeat("k", 20) }, "prod"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)

			err := ValidateConfig(&config.CoreConfig{Env: tt.env}, cfg, testLogger())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDevSessionKey(t *testing.T) {
	a, b := devSessionKey(), devSessionKey()
	if len(a) != 64 {
		t.Errorf("key length: got %d, want 64", len(a))
	}
	if a == b {
		t.Error("expected distinct keys per call")
	}
	if err := validateAppConfig(AppConfig{SessionKey: a, SessionName: "s", StaticDir: "d", SiteTitle: "t", ActionLimit: 1, ActionWindow: time.Second}); err != nil {
		t.Errorf("generated key rejected: %v", err)
	}
}
