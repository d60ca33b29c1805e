package config_test

import (
	"errors"
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/cloak_gw/config"
)

// TestLoadWithPrefix_Defaults - проверка значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("CLOAK_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 3*time.Minute || c.HTTP.GracefulTimeout != 15*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}

	// Tracing
	if c.Tracing.Enabled || c.Tracing.ServiceName != "cloak-gateway" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres
	if !c.Postgres.Enabled || !c.Postgres.Migrate || c.Postgres.DSN == "" || c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres defaults wrong: %+v", c.Postgres)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka must be disabled by default")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) || c.Kafka.Topic != "cache-control" || c.Kafka.StartOffset != "last" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}

	// Cache
	if c.Cache.TTL != 10*time.Minute || c.Cache.RefreshInterval != 5*time.Minute || c.Cache.WarmUpConcurrency != 4 {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}

	// Upstream
	if c.Upstream.Timeout != 30*time.Second || c.Upstream.MaxAttempts != 5 || c.Upstream.BackoffStep != 2*time.Second {
		t.Fatalf("Upstream defaults wrong: %+v", c.Upstream)
	}
	if c.Upstream.APIKey != "" || c.Upstream.BaseURL != "" {
		t.Fatalf("Upstream credentials must not be defaulted: %+v", c.Upstream)
	}

	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "CLOAK_TEST_OVR"

	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")
	t.Setenv(p+"_POSTGRES_ENABLED", "false")
	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_RETRY_MAX", "2m")
	t.Setenv(p+"_CACHE_TTL", "30m")
	t.Setenv(p+"_CACHE_REFRESH_INTERVAL", "10m")
	t.Setenv(p+"_CACHE_WARMUP_CONCURRENCY", "7")
	t.Setenv(p+"_UPSTREAM_BASE_URL", " https://api.cloak.test ")
	t.Setenv(p+"_UPSTREAM_API_KEY", "secret")
	t.Setenv(p+"_UPSTREAM_TIMEOUT", "5s")
	t.Setenv(p+"_UPSTREAM_MAX_ATTEMPTS", "3")
	t.Setenv(p+"_UPSTREAM_BACKOFF_STEP", "100ms")
	t.Setenv(p+"_AUTH_TOKEN", "op-token")
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.HandlerTimeout != 4500*time.Millisecond {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Postgres.Enabled {
		t.Fatalf("Postgres.Enabled override wrong")
	}
	if !c.Kafka.Enabled || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) || c.Kafka.RetryMax != 2*time.Minute {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if c.Cache.TTL != 30*time.Minute || c.Cache.RefreshInterval != 10*time.Minute || c.Cache.WarmUpConcurrency != 7 {
		t.Fatalf("Cache overrides wrong: %+v", c.Cache)
	}
	if c.Upstream.BaseURL != "https://api.cloak.test" || c.Upstream.APIKey != "secret" ||
		c.Upstream.Timeout != 5*time.Second || c.Upstream.MaxAttempts != 3 || c.Upstream.BackoffStep != 100*time.Millisecond {
		t.Fatalf("Upstream overrides wrong: %+v", c.Upstream)
	}
	if c.Auth.Token != "op-token" || !c.Logger.IsProd {
		t.Fatalf("Auth/Logger overrides wrong: %+v %+v", c.Auth, c.Logger)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "CLOAK_TEST_BAD"
	t.Setenv(p+"_UPSTREAM_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}

func TestValidate(t *testing.T) {
	valid := func() cfg.Config {
		c, err := cfg.LoadWithPrefix("CLOAK_TEST_VALIDATE")
		if err != nil {
			t.Fatalf("LoadWithPrefix error: %v", err)
		}
		c.Upstream.BaseURL = "https://api.cloak.test"
		c.Upstream.APIKey = "k"
		return c
	}

	tests := []struct {
		name   string
		mutate func(*cfg.Config)
	}{
		{"missing api key", func(c *cfg.Config) { c.Upstream.APIKey = "" }},
		{"missing base url", func(c *cfg.Config) { c.Upstream.BaseURL = "" }},
		{"refresh not shorter than ttl", func(c *cfg.Config) { c.Cache.RefreshInterval = c.Cache.TTL }},
		{"kafka without brokers", func(c *cfg.Config) { c.Kafka.Enabled = true; c.Kafka.Brokers = nil }},
	}

	base := valid()
	if err := base.Validate(); err != nil {
		t.Fatalf("base config must be valid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, cfg.ErrInvalidConfig) {
				t.Fatalf("want ErrInvalidConfig, got %v", err)
			}
		})
	}
}
