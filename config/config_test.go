package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	// No .env in the test working directory, so everything comes from
	// the environment plus defaults.
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.App.Port != "5000" {
		t.Errorf("App.Port = %q, want 5000", cfg.App.Port)
	}
	if cfg.Activity.WindowDuration != time.Hour {
		t.Errorf("WindowDuration = %v, want 1h", cfg.Activity.WindowDuration)
	}
	if cfg.Activity.WindowPolicy != "forward" {
		t.Errorf("WindowPolicy = %q, want forward", cfg.Activity.WindowPolicy)
	}
	if cfg.Activity.Timezone != "Asia/Karachi" {
		t.Errorf("Timezone = %q, want Asia/Karachi", cfg.Activity.Timezone)
	}
	if cfg.Redis.NameCacheTTL != 5*time.Minute {
		t.Errorf("NameCacheTTL = %v, want 5m", cfg.Redis.NameCacheTTL)
	}
	if cfg.SMTP.Timeout != 10*time.Second {
		t.Errorf("SMTP.Timeout = %v, want 10s", cfg.SMTP.Timeout)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("ACTIVITY_WINDOW_DURATION", "30m")
	t.Setenv("ACTIVITY_WINDOW_POLICY", "backward")
	t.Setenv("ACTIVITY_TIMEZONE", "UTC")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("App.Port = %q, want 8080", cfg.App.Port)
	}
	if cfg.Activity.WindowDuration != 30*time.Minute {
		t.Errorf("WindowDuration = %v, want 30m", cfg.Activity.WindowDuration)
	}
	if cfg.Activity.WindowPolicy != "backward" {
		t.Errorf("WindowPolicy = %q, want backward", cfg.Activity.WindowPolicy)
	}
	if cfg.Activity.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", cfg.Activity.Timezone)
	}
}
