package summary

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	gotemplate "github.com/goliatone/go-template"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DefaultTemplate is the bundled summary template.
const DefaultTemplate = "summary.md.tpl"

const templateExtension = ".tpl"

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// EmbeddedTemplates exposes the bundled templates rooted at templates/.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic("summary: embedded templates missing: " + err.Error())
	}
	return sub
}

// Renderer turns a Summary into Markdown or HTML. Templates receive the
// summary under "s" with keys named after the json tags.
type Renderer struct {
	engine   *gotemplate.Engine
	initErr  error
	name     string
	markdown goldmark.Markdown
}

type config struct {
	templates fs.FS
	name      string
}

// Option customises a Renderer.
type Option func(*config)

// WithTemplates loads templates from fsys instead of the bundled set.
func WithTemplates(fsys fs.FS) Option {
	return func(c *config) {
		if fsys != nil {
			c.templates = fsys
		}
	}
}

// WithTemplateName selects the template file to render.
func WithTemplateName(name string) Option {
	return func(c *config) {
		if name = strings.TrimSpace(name); name != "" {
			c.name = name
		}
	}
}

// NewRenderer builds a Renderer. Engine setup errors surface on the first
// render.
func NewRenderer(opts ...Option) *Renderer {
	cfg := &config{templates: EmbeddedTemplates(), name: DefaultTemplate}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	engine, err := gotemplate.NewRenderer(
		gotemplate.WithFS(cfg.templates),
		gotemplate.WithExtension(templateExtension),
	)
	if err != nil {
		err = fmt.Errorf("summary: template engine: %w", err)
	}
	return &Renderer{
		engine:   engine,
		initErr:  err,
		name:     cfg.name,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Markdown renders s.
func (r *Renderer) Markdown(s Summary) (string, error) {
	if r == nil {
		return "", errors.New("summary: renderer is nil")
	}
	if r.initErr != nil {
		return "", r.initErr
	}
	out, err := r.engine.RenderTemplate(r.name, map[string]any{"s": templateData(s)})
	if err != nil {
		return "", fmt.Errorf("summary: render %q: %w", r.name, err)
	}
	return squeezeBlankLines(out), nil
}

// HTML renders s as Markdown and converts it to HTML. Raw HTML in the
// Markdown is not passed through.
func (r *Renderer) HTML(s Summary) (string, error) {
	md, err := r.Markdown(s)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("summary: convert markdown: %w", err)
	}
	return buf.String(), nil
}

// templateData flattens s into maps, slices, strings and bools. Numbers are
// preformatted so the engine never prints them as floats.
func templateData(s Summary) map[string]any {
	sections := make([]any, 0, len(s.Sections))
	for _, sec := range s.Sections {
		sections = append(sections, map[string]any{
			"label":   sec.Label,
			"sheet":   sec.Sheet,
			"rows":    strconv.Itoa(sec.Rows),
			"omitted": sec.Omitted,
		})
	}
	view := map[string]any{
		"building_name": s.BuildingName,
		"building_type": s.BuildingType,
		"region":        s.Region,
		"floor_area":    s.FloorArea,
		"small":         s.Small,
		"sections":      sections,
		"errors":        stepItemsData(s.Errors),
		"warnings":      stepItemsData(s.Warnings),
	}
	if c := s.Compute; c != nil {
		warnings := make([]any, 0, len(c.Warnings))
		for _, w := range c.Warnings {
			warnings = append(warnings, w)
		}
		view["compute"] = map[string]any{
			"status":  c.Status,
			"bei":     c.BEI,
			"has_bei": c.HasBEI,
			"rating": map[string]any{
				"level":   string(c.Rating.Level),
				"comment": c.Rating.Comment,
				"detail":  c.Rating.Detail,
			},
			"warnings": warnings,
			"failure":  c.Failure,
		}
	}
	return view
}

func stepItemsData(groups []StepItems) []any {
	out := make([]any, 0, len(groups))
	for _, g := range groups {
		items := make([]any, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, map[string]any{"path": it.Path, "level": it.Level, "message": it.Message})
		}
		out = append(out, map[string]any{
			"step":  strconv.Itoa(g.Step),
			"label": g.Label,
			"items": items,
		})
	}
	return out
}

// squeezeBlankLines collapses runs of blank lines left by template tags.
func squeezeBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n")) + "\n"
}
