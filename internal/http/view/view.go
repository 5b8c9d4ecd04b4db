package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

const (
	LoginPage    = "login"
	RegisterPage = "register"
	UserPage     = "user"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every template receives.
type Page struct {
	Title    string
	Username string
	Flashes  []string
	Notice   string
	Errors   map[string]string
	Form     map[string]string
}

type Templates struct {
	pages map[string]*template.Template
}

// NewTemplates parses each page together with the shared layout.
func NewTemplates() (*Templates, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{LoginPage, RegisterPage, UserPage} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Templates{pages: pages}, nil
}

func (t *Templates) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	if err := tmpl.ExecuteTemplate(w, "layout", page); err != nil {
		return fmt.Errorf("execute %s template: %w", name, err)
	}
	return nil
}
