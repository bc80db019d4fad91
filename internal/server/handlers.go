package server

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/articles"
	"devfolio/internal/content"
)

const latestPostsOnHome = 3

type homeData struct {
	LatestPosts []content.PostMeta
	Featured    []content.Project
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	site := s.Site()
	latest := site.PublishedPosts()
	if len(latest) > latestPostsOnHome {
		latest = latest[:latestPostsOnHome]
	}
	s.renderPage(w, http.StatusOK, "home", s.page("/", site.Profile.Tagline, homeData{
		LatestPosts: latest,
		Featured:    site.FeaturedProjects(),
	}))
}

type interestView struct {
	Label string
	Icon  string
}

type aboutData struct {
	Interests []interestView
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	site := s.Site()
	interests := make([]interestView, 0, len(site.Profile.Interests))
	for _, in := range site.Profile.Interests {
		interests = append(interests, interestView{Label: in.Label(), Icon: in.Icon()})
	}
	s.renderPage(w, http.StatusOK, "about", s.page("/about", "About", aboutData{Interests: interests}))
}

type blogIndexData struct {
	Posts       []content.PostMeta
	Tags        []string
	Query       string
	SelectedTag string
}

func (s *Server) handleBlogIndex(w http.ResponseWriter, r *http.Request) {
	site := s.Site()
	query := r.URL.Query().Get("q")
	tag := r.URL.Query().Get("tag")

	s.renderPage(w, http.StatusOK, "blog", s.page("/blog", "Blog", blogIndexData{
		Posts:       content.FilterPosts(site.Posts, query, tag),
		Tags:        content.Tags(site.Posts),
		Query:       query,
		SelectedTag: tag,
	}))
}

type blogPostData struct {
	Post       content.PostMeta
	Title      string
	Body       template.HTML
	LoadFailed bool
	Related    []content.PostMeta
}

type notFoundData struct {
	Slug string
}

func (s *Server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	site := s.Site()
	slug := chi.URLParam(r, "slug")

	art, err := s.loader.Load(r.Context(), site, slug)
	switch {
	case errors.Is(err, articles.ErrNotFound):
		s.renderPage(w, http.StatusNotFound, "article_notfound",
			s.page(r.URL.Path, "Article Not Found", notFoundData{Slug: slug}))
		return
	case err != nil:
		// Context cancellation: the client is gone, nothing to write.
		s.log.WithError(err).WithField("slug", slug).Debug("article load aborted")
		return
	}

	body, err := s.markdown.ToHTML(art.Body)
	if err != nil {
		s.log.WithError(err).WithField("slug", slug).Error("markdown rendering failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.renderPage(w, http.StatusOK, "blog_post", s.page(r.URL.Path, art.Title, blogPostData{
		Post:       art.Meta,
		Title:      art.Title,
		Body:       body,
		LoadFailed: art.LoadFailed,
		Related:    content.Related(site.Posts, slug),
	}))
}

type projectsData struct {
	Projects []content.Project
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, "projects",
		s.page("/projects", "Projects", projectsData{Projects: s.Site().Projects}))
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, "contact", s.page("/contact", "Contact", nil))
}

// handleNotFound is the catch-all for unmatched paths: a dedicated 404
// page rather than a redirect, so bad links stay visible as bad links.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusNotFound, "notfound",
		s.page(r.URL.Path, "Page Not Found", nil))
}
