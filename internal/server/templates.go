package server

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"devfolio/web"
)

// templateSet holds one parsed template per page, each combining the base
// layout, the shared partials and the page body. Parsed once at package
// init; a parse failure is an authoring error and should fail loudly.
var templateSet = mustParseTemplates(web.FS)

func mustParseTemplates(fsys fs.FS) map[string]*template.Template {
	pages, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		panic(fmt.Sprintf("globbing page templates: %v", err))
	}

	set := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := strings.TrimSuffix(path.Base(page), ".html")
		t, err := template.New("base.html").ParseFS(fsys,
			"templates/base.html",
			"templates/partials/*.html",
			page,
		)
		if err != nil {
			panic(fmt.Sprintf("parsing template %s: %v", page, err))
		}
		set[name] = t
	}
	return set
}

// renderPage executes the named page template. The page is buffered so a
// mid-render failure produces a clean 500 instead of a half-written body;
// one broken view must never take the shell down.
func (s *Server) renderPage(w http.ResponseWriter, status int, name string, data pageData) {
	t, ok := templateSet[name]
	if !ok {
		s.log.WithField("template", name).Error("unknown page template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		s.log.WithError(err).WithField("template", name).Error("template execution failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
