package service

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	detailPolicyOnce sync.Once
	detailPolicy     *bluemonday.Policy
)

// sanitizeDetail strips markup from server text. Proxies in front of the
// service answer with HTML error pages; only their text survives. Plain text
// is returned trimmed but otherwise untouched, line breaks included.
func sanitizeDetail(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.Contains(trimmed, "<") {
		return trimmed
	}
	cleaned := html.UnescapeString(detailSanitizer().Sanitize(trimmed))
	return strings.Join(strings.Fields(cleaned), " ")
}

func detailSanitizer() *bluemonday.Policy {
	detailPolicyOnce.Do(func() {
		detailPolicy = bluemonday.StrictPolicy()
	})
	return detailPolicy
}
