// Package render turns a resume aggregate into a standalone HTML
// document through one of several named templates. Every template is a
// presentation variant over the same contract: empty sections render
// nothing, entries keep store order, skills group by category, and an
// unrecognized template id falls back to the default renderer.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

// TemplateIDs our registry ships renderers for. Additional ids alias
// onto an implemented renderer; anything else resolves to the default.
var templateFiles = map[string]string{
	"modern":       "modern.html",
	"classic":      "classic.html",
	"minimal":      "minimal.html",
	"creative":     "creative.html",
	"professional": "professional.html",
}

var aliases = map[string]string{
	"elegant":   "classic",
	"executive": "professional",
}

// Registry maps template ids to parsed templates, with a guaranteed
// default entry. Adding a template is a registry insertion, not a new
// branch in a switch.
type Registry struct {
	templates map[string]*template.Template
	css       string
	defaultID string
}

// NewRegistry parses every template document under tplDir and reads
// the shared stylesheet for inlining. A missing stylesheet is
// tolerated; a missing or unparsable template document is not.
func NewRegistry(tplDir string) (*Registry, error) {
	r := &Registry{
		templates: map[string]*template.Template{},
		defaultID: store.DefaultTemplate,
	}
	for id, file := range templateFiles {
		tpl, err := template.ParseFiles(filepath.Join(tplDir, file))
		if err != nil {
			return nil, fmt.Errorf("parse template %q: %w", id, err)
		}
		r.templates[id] = tpl
	}
	if _, ok := r.templates[r.defaultID]; !ok {
		return nil, fmt.Errorf("default template %q not registered", r.defaultID)
	}
	if b, err := os.ReadFile(filepath.Join(tplDir, "style.css")); err == nil {
		r.css = string(b)
	}
	return r, nil
}

// Known returns the registered template ids, sorted.
func (r *Registry) Known() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve maps any template id to the id of the renderer that will
// serve it: a registered id stands, a known alias follows the alias,
// everything else lands on the default.
func (r *Registry) Resolve(id string) string {
	if _, ok := r.templates[id]; ok {
		return id
	}
	if target, ok := aliases[id]; ok {
		if _, registered := r.templates[target]; registered {
			return target
		}
	}
	return r.defaultID
}

// Render produces the HTML document for data under the given template
// id. It never mutates data and never fails on the id itself.
func (r *Registry) Render(data model.ResumeData, templateID string) ([]byte, error) {
	tpl := r.templates[r.Resolve(templateID)]

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, buildView(data)); err != nil {
		return nil, err
	}

	html := buf.String()
	// Inline the stylesheet so the saved document and the headless
	// print both carry styling without a second fetch.
	if r.css != "" {
		cssBlock := "<style>" + r.css + "</style>"
		if strings.Contains(strings.ToLower(html), "<head>") {
			html = strings.Replace(html, "<head>", "<head>"+cssBlock, 1)
		} else {
			html = cssBlock + html
		}
	}
	return []byte(html), nil
}
