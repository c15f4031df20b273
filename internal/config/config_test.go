package config

import (
	"testing"
	"time"
)

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HyperionBaseURL != "https://api.wax.liquidstudios.io" {
		t.Fatalf("unexpected base url %q", cfg.HyperionBaseURL)
	}
	if cfg.PollInterval != time.Minute || cfg.HyperionTimeout != 30*time.Second {
		t.Fatalf("unexpected durations poll=%v timeout=%v", cfg.PollInterval, cfg.HyperionTimeout)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 1 {
		t.Fatalf("unexpected rate limit %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("HYPERION_BASE_URL", "https://wax.eosrio.io")
	t.Setenv("POLL_INTERVAL", "15")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("METRICS_ADDR", ":9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HyperionBaseURL != "https://wax.eosrio.io" || cfg.PollInterval != 15*time.Second {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.RateLimitRPS != 0.5 || cfg.MetricsAddr != ":9100" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	for _, key := range []string{"POLL_INTERVAL", "HYPERION_TIMEOUT_SECONDS", "STORAGE_TTL_SECONDS", "RATE_LIMIT_BURST"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "0")
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=0", key)
			}
		})
	}
}
