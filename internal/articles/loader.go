// Package articles loads blog article bodies on demand. Post metadata lives
// in the static dataset; the markdown document itself is fetched per view
// and never stored back into the dataset.
package articles

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"devfolio/internal/content"
)

// ErrNotFound is returned when a slug has no matching post in the dataset.
// The loader performs no fetch in that case.
var ErrNotFound = errors.New("article not found")

// FallbackBody replaces the article body whenever the fetch fails. The
// underlying error is logged, never shown to the reader.
const FallbackBody = "# Error loading article\n\nSorry, this article could not be loaded."

// Article is a loaded article: the post metadata plus the markdown body.
type Article struct {
	Meta content.PostMeta
	// Title is the display title: document frontmatter wins over dataset
	// metadata, with a title-cased file name as the last resort.
	Title string
	// Body is the markdown source with any frontmatter block stripped.
	// When LoadFailed is set it holds FallbackBody instead.
	Body       []byte
	LoadFailed bool
}

type docMeta struct {
	Title string `yaml:"title"`
}

// Loader resolves slugs against the dataset and fetches article documents.
type Loader struct {
	fetcher Fetcher
	log     logrus.FieldLogger
}

func NewLoader(fetcher Fetcher, log logrus.FieldLogger) *Loader {
	return &Loader{
		fetcher: fetcher,
		log:     log.WithField("component", "articles"),
	}
}

// Load resolves slug against site and fetches the referenced document.
//
// An unknown slug returns ErrNotFound without touching the fetcher. A known
// slug triggers exactly one fetch; on failure the returned article carries
// FallbackBody with LoadFailed set, and Load itself does not error — a
// broken document must not take the page down with it. Cancelling ctx
// cancels an in-flight fetch, so a superseded request can never deliver a
// stale body.
func (l *Loader) Load(ctx context.Context, site *content.Site, slug string) (*Article, error) {
	meta, ok := site.PostBySlug(slug)
	if !ok {
		return nil, ErrNotFound
	}

	body, err := l.fetcher.Fetch(ctx, meta.MarkdownFile)
	if err != nil {
		if ctx.Err() != nil {
			// The request went away; nobody is rendering this article.
			return nil, ctx.Err()
		}
		l.log.WithError(err).WithField("slug", slug).Warn("article fetch failed")
		return &Article{
			Meta:       meta,
			Title:      meta.Title,
			Body:       []byte(FallbackBody),
			LoadFailed: true,
		}, nil
	}

	title, rest := splitFrontmatter(body, meta)
	return &Article{Meta: meta, Title: title, Body: rest}, nil
}

// splitFrontmatter strips an optional frontmatter block from the document
// and picks the display title: frontmatter title, then dataset title, then
// a title-cased form of the file name.
func splitFrontmatter(body []byte, meta content.PostMeta) (string, []byte) {
	var dm docMeta
	rest, err := frontmatter.Parse(bytes.NewReader(body), &dm)
	if err != nil {
		// Malformed or absent frontmatter: treat the whole document as
		// markdown, same as an unannotated file.
		rest = body
	}

	switch {
	case dm.Title != "":
		return dm.Title, rest
	case meta.Title != "":
		return meta.Title, rest
	default:
		return titleFromFile(meta.MarkdownFile), rest
	}
}

func titleFromFile(file string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	base = strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
	return cases.Title(language.English).String(base)
}
