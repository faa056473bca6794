package config

import (
	"testing"
	"time"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" || cfg.DBDriver != "postgres" || cfg.RefreshCron != "@every 15m" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("rate limit defaults %v/%v", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.AdvisorTimeout != 30*time.Second || cfg.AdvisorRetries != 2 {
		t.Fatalf("advisor defaults %v/%v", cfg.AdvisorTimeout, cfg.AdvisorRetries)
	}
	if cfg.UseDatabase() || cfg.UseAdvisor() {
		t.Fatal("database and advisor should be off without configuration")
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"PORT":             "9000",
		"DB_DRIVER":        "sqlite",
		"DATABASE_URL":     "prices.db",
		"RATE_LIMIT_RPS":   "0.5",
		"ADVISOR_ENDPOINT": "http://localhost:1234/v1/chat/completions",
		"ADVISOR_TIMEOUT":  "5s",
		"ADVISOR_RETRIES":  "0",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9000" || !cfg.UseDatabase() || !cfg.UseAdvisor() {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.RateLimitRPS != 0.5 || cfg.AdvisorTimeout != 5*time.Second || cfg.AdvisorRetries != 0 {
		t.Fatalf("unexpected numbers %+v", cfg)
	}
}

func TestBadValues(t *testing.T) {
	for _, kv := range [][2]string{
		{"RATE_LIMIT_RPS", "fast"},
		{"RATE_LIMIT_BURST", "-1"},
		{"ADVISOR_TIMEOUT", "soon"},
		{"ADVISOR_RETRIES", "x"},
	} {
		if _, err := FromEnv(env(map[string]string{kv[0]: kv[1]})); err == nil {
			t.Errorf("%s=%s accepted", kv[0], kv[1])
		}
	}
}
