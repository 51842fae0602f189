package wizard

import "strings"

// wrapper segments servers and schema validators put in front of FieldPaths.
var wrapperSegments = map[string]struct{}{
	"body":           {},
	"request":        {},
	"payload":        {},
	"data":           {},
	"official_input": {},
}

// NormalizeFieldPath turns JSON pointers ("/official_input/windows/0/name"),
// bracketed indexes ("windows[0].name") and wrapped paths into the dotted
// FieldPath form.
func NormalizeFieldPath(path string) string {
	return strings.Join(dropWrapperSegments(parsePathSegments(path)), ".")
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return nil
	}
	clean = strings.TrimPrefix(clean, "#/")
	clean = strings.TrimPrefix(clean, "$.")
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = strings.TrimLeft(clean, "#/.$")
	}

	clean = strings.NewReplacer("[", ".", "]", "").Replace(clean)
	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		if _, ok := wrapperSegments[strings.ToLower(out[0])]; !ok {
			break
		}
		out = out[1:]
	}
	return out
}
