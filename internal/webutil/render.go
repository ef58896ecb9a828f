package webutil

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
)

//go:embed all:templates
var templateFiles embed.FS

// Pages rendered by the student handlers, one file per page under templates/.
var pageNames = []string{"home", "profile", "stats", "leaderboard", "flashcard", "error"}

var templateFuncs = template.FuncMap{
	"pathEscape": url.PathEscape,
	"add1":       func(i int) int { return i + 1 },
}

// Renderer executes the embedded page templates. Each page is parsed together
// with layout.html and its own template set.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tpl, err := template.New("layout.html").Funcs(templateFuncs).
			ParseFS(templateFiles, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("webutil.NewRenderer: parse %s: %w", name, err)
		}
		pages[name] = tpl
	}
	return &Renderer{pages: pages}, nil
}

// Render writes page name with data. The page is executed into a buffer
// first so a template failure never sends a partial body.
func (rd *Renderer) Render(w http.ResponseWriter, status int, name string, data map[string]any) error {
	tpl, ok := rd.pages[name]
	if !ok {
		return fmt.Errorf("webutil.Render: unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("webutil.Render: execute %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
