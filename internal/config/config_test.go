package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-beiform/pkg/service"
)

func envOf(values map[string]string) LoadOption {
	return WithEnv(func(key string) string { return values[key] })
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", envOf(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Service.BaseURL != service.DefaultBaseURL {
		t.Fatalf("unexpected base url %q", cfg.Service.BaseURL)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beiform.yaml")
	doc := []byte(`env: production
service:
  base_url: https://bei.example.com/api/v1
  timeout: 30s
log:
  level: warn
http:
  addr: ":9090"
`)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path, envOf(map[string]string{
		EnvTimeout:      "45s",
		EnvDebug:        "1",
		EnvOTLPEndpoint: "http://collector:4318",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	want.Env = "production"
	want.Service = ServiceConfig{BaseURL: "https://bei.example.com/api/v1", Timeout: 45 * time.Second}
	want.Log.Level = "debug"
	want.HTTP.Addr = ":9090"
	want.Telemetry.Endpoint = "http://collector:4318"
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beiform.yaml")
	if err := os.WriteFile(path, []byte("servce:\n  base_url: x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path, envOf(nil)); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"bad scheme", func(c *Config) { c.Service.BaseURL = "ftp://host/api" }, service.ErrBaseURL},
		{"zero timeout", func(c *Config) { c.Service.Timeout = 0 }, ErrInvalidTimeout},
		{"log level", func(c *Config) { c.Log.Level = "trace" }, ErrInvalidLogLevel},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, ErrInvalidLogFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadBadTimeoutEnv(t *testing.T) {
	if _, err := Load("", envOf(map[string]string{EnvTimeout: "soon"})); err == nil {
		t.Fatalf("expected duration parse error")
	}
}

func TestReadiness(t *testing.T) {
	cfg := Default()
	r := cfg.Readiness()
	if r.Ready {
		t.Fatalf("default http base must not be ready")
	}
	if diff := cmp.Diff([]string{CheckAPIHTTPS}, r.FailedChecks); diff != "" {
		t.Fatalf("failed checks mismatch (-want +got):\n%s", diff)
	}

	cfg.Service.BaseURL = "https://bei.example.com/api/v1"
	r = cfg.Readiness()
	if !r.Ready || r.Checks[CheckTracingEnabled] {
		t.Fatalf("unexpected readiness %+v", r)
	}

	cfg.Log.Level = "debug"
	cfg.Contract.Enabled = false
	r = cfg.Readiness()
	if diff := cmp.Diff([]string{CheckContract, CheckQuietLogging}, r.FailedChecks); diff != "" {
		t.Fatalf("failed checks mismatch (-want +got):\n%s", diff)
	}
}
