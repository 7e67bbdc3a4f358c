package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"
)

// TemplateRenderer renders the portal's HTML pages. Each page template is
// parsed together with the layout and partials into its own template set, so
// pages can freely define a "content" block without clashing.
type TemplateRenderer struct {
	fsys    fs.FS
	pages   map[string]*template.Template
	devMode bool
	logger  *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	DevMode    bool         // Re-parse templates on every render (dev only)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// templateFuncs are the helpers available to all page templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"moeda": func(v float64) string {
			s := fmt.Sprintf("%.2f", v)
			s = strings.ReplaceAll(s, ".", ",")
			return "R$ " + s
		},
		"dataBR": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("02/01/2006 15:04")
		},
	}
}

// NewTemplateRenderer parses layout, partials, and every page template from
// the provided filesystem.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	r := &TemplateRenderer{
		fsys:    cfg.TemplateFS,
		devMode: cfg.DevMode,
		logger:  cfg.Logger,
	}

	pages, err := parsePages(cfg.TemplateFS)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed", slog.Any("error", err))
		}
		return nil, err
	}
	r.pages = pages
	return r, nil
}

// parsePages builds one template set per pages/*.tmpl file.
func parsePages(fsys fs.FS) (map[string]*template.Template, error) {
	pageFiles, err := fs.Glob(fsys, "pages/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}
	if len(pageFiles) == 0 {
		return nil, errors.New("no page templates found under pages/")
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		name := strings.TrimSuffix(path.Base(file), ".tmpl")
		t, err := template.New("layout.tmpl").Funcs(templateFuncs()).ParseFS(fsys,
			"layout.tmpl",
			"partials/*.tmpl",
			file,
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// Render executes the named page into the response, buffered so a template
// failure never emits a half-written body.
func (r *TemplateRenderer) Render(w http.ResponseWriter, page string, data any) error {
	pages := r.pages
	if r.devMode {
		// Dev mode: re-parse from disk on each request for hot reloading.
		reparsed, err := parsePages(r.fsys)
		if err != nil {
			r.logTemplateError(page, err)
			return err
		}
		pages = reparsed
	}

	t, ok := pages[page]
	if !ok {
		err := fmt.Errorf("unknown page template %q", page)
		r.logTemplateError(page, err)
		return err
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.logTemplateError(page, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		r.logTemplateError(page, err)
		return err
	}
	return nil
}

// logTemplateError logs a template execution error with context.
func (r *TemplateRenderer) logTemplateError(page string, err error) {
	if r.logger == nil || err == nil {
		return
	}
	r.logger.Error("template rendering failed",
		slog.String("page", page),
		slog.Any("error", err),
	)
}
