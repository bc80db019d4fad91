// Package server renders the site: the route table, the page views and the
// navigation shell. Views are pure functions of the injected dataset plus
// request-local state (query text, selected tag, requested slug).
package server

import (
	"io/fs"
	"sync"

	"github.com/sirupsen/logrus"

	"devfolio/internal/articles"
	"devfolio/internal/config"
	"devfolio/internal/content"
	"devfolio/internal/render"
)

// Server holds everything the handlers need. The dataset is swappable so
// watch mode can reload content without restarting; handlers always read a
// consistent snapshot through site().
type Server struct {
	cfg      config.Config
	log      logrus.FieldLogger
	markdown *render.Markdown
	loader   *articles.Loader
	// contentFS backs the /blogs/ markdown endpoint.
	contentFS fs.FS

	mu   sync.RWMutex
	data *content.Site
}

// New builds a server over the given dataset. contentFS must contain the
// blogs/ subdirectory referenced by the dataset's markdown files.
func New(cfg config.Config, site *content.Site, contentFS fs.FS, loader *articles.Loader, log logrus.FieldLogger) *Server {
	return &Server{
		cfg:       cfg,
		log:       log.WithField("component", "server"),
		markdown:  render.NewMarkdown(),
		loader:    loader,
		contentFS: contentFS,
		data:      site,
	}
}

// Site returns the current dataset snapshot.
func (s *Server) Site() *content.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// SetSite swaps in a freshly loaded dataset. In-flight requests keep the
// snapshot they started with.
func (s *Server) SetSite(site *content.Site) {
	s.mu.Lock()
	s.data = site
	s.mu.Unlock()
}
