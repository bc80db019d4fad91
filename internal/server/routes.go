package server

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"devfolio/internal/content"
	"devfolio/web"
)

// Routes assembles the route table: the six page routes, the explicit
// not-found fallback, the article markdown mount and static assets.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/about", s.handleAbout)
	r.Get("/blog", s.handleBlogIndex)
	r.Get("/blog/{slug}", s.handleBlogPost)
	r.Get("/projects", s.handleProjects)
	r.Get("/contact", s.handleContact)

	// Article markdown documents, CORS-open so an externally hosted
	// frontend can fetch them the same way this server's loader does.
	blogsFS, err := fs.Sub(s.contentFS, content.BlogsDir)
	if err != nil {
		// The content filesystem always carries blogs/; Load validated
		// every post references a file in it.
		panic(err)
	}
	r.Route("/blogs", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			MaxAge:         300,
		}))
		r.Get("/*", markdownServer(blogsFS))
	})

	staticFS, err := fs.Sub(web.FS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.NotFound(s.handleNotFound)
	return r
}

// markdownServer serves article documents with an explicit markdown
// content type; FileServer would sniff them as text/plain.
func markdownServer(fsys fs.FS) http.HandlerFunc {
	inner := http.FileServer(http.FS(fsys))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		http.StripPrefix("/blogs/", inner).ServeHTTP(w, r)
	}
}

// requestLogger logs one line per request through the injected logger,
// standing in for chi's stdlib-log middleware.
func requestLogger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"bytes":    ww.BytesWritten(),
				"duration": time.Since(start).String(),
			}).Info("request")
		})
	}
}
