package config

import (
	"net/url"
	"strings"
)

// Readiness check names.
const (
	CheckAPIHTTPS       = "official_api_https"
	CheckContract       = "contract_check_enabled"
	CheckQuietLogging   = "log_level_not_debug"
	CheckTracingEnabled = "tracing_enabled"
)

// Readiness reports whether the configuration is fit for production use.
type Readiness struct {
	Ready        bool            `json:"ready"`
	Environment  string          `json:"environment"`
	Checks       map[string]bool `json:"checks"`
	FailedChecks []string        `json:"failed_checks"`
	APIBaseURL   string          `json:"official_api_base_url"`
}

// Readiness evaluates the production checks. Tracing is reported but never
// fails readiness.
func (c Config) Readiness() Readiness {
	checks := map[string]bool{
		CheckAPIHTTPS:     isHTTPS(c.Service.BaseURL),
		CheckContract:     c.Contract.Enabled,
		CheckQuietLogging: c.Log.Level != "debug",
	}
	r := Readiness{
		Environment:  c.Env,
		APIBaseURL:   c.Service.BaseURL,
		FailedChecks: []string{},
	}
	for _, name := range []string{CheckAPIHTTPS, CheckContract, CheckQuietLogging} {
		if !checks[name] {
			r.FailedChecks = append(r.FailedChecks, name)
		}
	}
	checks[CheckTracingEnabled] = c.Telemetry.Endpoint != ""
	r.Checks = checks
	r.Ready = len(r.FailedChecks) == 0
	return r
}

func isHTTPS(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	return err == nil && strings.EqualFold(u.Scheme, "https") && u.Host != ""
}
