// Package export pre-renders the whole site to a static directory tree by
// driving the same handler the server uses, so exported pages and served
// pages can never drift apart.
package export

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"devfolio/internal/content"
	"devfolio/web"
)

// Export renders every route into outDir and copies static assets and the
// article markdown referenced by published posts. Unpublished posts are
// skipped: a static tree has no notion of "reachable only by direct
// navigation", so exporting drafts would publish them.
func Export(handler http.Handler, site *content.Site, contentFS fs.FS, outDir string, log logrus.FieldLogger) error {
	log = log.WithField("component", "export")

	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("cleaning output directory %s: %w", outDir, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	type pageTarget struct {
		route string
		file  string
	}
	pages := []pageTarget{
		{"/", "index.html"},
		{"/about", "about/index.html"},
		{"/blog", "blog/index.html"},
		{"/projects", "projects/index.html"},
		{"/contact", "contact/index.html"},
		// An arbitrary unmatched path renders the not-found page; hosts
		// serve 404.html for missing files by convention.
		{"/no-such-page", "404.html"},
	}
	for _, p := range site.PublishedPosts() {
		pages = append(pages, pageTarget{"/blog/" + p.Slug, path.Join("blog", p.Slug, "index.html")})
	}

	for _, pg := range pages {
		body, status, err := renderRoute(handler, pg.route)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", pg.route, err)
		}
		if status != http.StatusOK && pg.file != "404.html" {
			return fmt.Errorf("rendering %s: unexpected status %d", pg.route, status)
		}
		dest := filepath.Join(outDir, filepath.FromSlash(pg.file))
		if err := writeFile(dest, body); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"route": pg.route, "file": pg.file}).Info("page exported")
	}

	if err := copyTree(web.FS, "static", filepath.Join(outDir, "static")); err != nil {
		return fmt.Errorf("copying static assets: %w", err)
	}

	// Only markdown belonging to published posts leaves the binary.
	for _, p := range site.PublishedPosts() {
		src := path.Join(content.BlogsDir, p.MarkdownFile)
		raw, err := fs.ReadFile(contentFS, src)
		if err != nil {
			return fmt.Errorf("reading %s: %w", src, err)
		}
		dest := filepath.Join(outDir, content.BlogsDir, p.MarkdownFile)
		if err := writeFile(dest, raw); err != nil {
			return err
		}
	}

	log.WithField("dir", outDir).Info("export complete")
	return nil
}

// renderRoute runs one in-process GET through the handler.
func renderRoute(handler http.Handler, route string) ([]byte, int, error) {
	req, err := http.NewRequest(http.MethodGet, route, nil)
	if err != nil {
		return nil, 0, err
	}
	rec := &recorder{status: http.StatusOK, header: make(http.Header)}
	handler.ServeHTTP(rec, req)
	return rec.body, rec.status, nil
}

// recorder is the minimal ResponseWriter the export loop needs.
type recorder struct {
	status int
	header http.Header
	body   []byte
}

func (r *recorder) Header() http.Header { return r.header }

func (r *recorder) WriteHeader(status int) { r.status = status }

func (r *recorder) Write(b []byte) (int, error) {
	r.body = append(r.body, b...)
	return len(b), nil
}

func writeFile(dest string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

// copyTree copies a subtree of fsys rooted at src into dstDir.
func copyTree(fsys fs.FS, src, dstDir string) error {
	return fs.WalkDir(fsys, src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, filepath.FromSlash(p))
		if err != nil {
			return err
		}
		dest := filepath.Join(dstDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		return writeFile(dest, raw)
	})
}
