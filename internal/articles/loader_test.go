package articles

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio/internal/content"
)

const articleBody = "# Field Guide\n\nStart with EXPLAIN ANALYZE, not with guesses.\n"

func testSite() *content.Site {
	return &content.Site{
		Posts: []content.PostMeta{
			{
				Slug:         "postgres-query-optimization",
				Title:        "Postgres Query Optimization: A Field Guide",
				MarkdownFile: "postgres-query-optimization.md",
				Published:    true,
			},
			{
				Slug:         "broken-article",
				Title:        "Broken",
				MarkdownFile: "missing.md",
				Published:    true,
			},
		},
	}
}

// newArticleServer serves the known article and counts every request.
func newArticleServer(t *testing.T) (*httptest.Server, *atomic.Int64, *atomic.Int64) {
	t.Helper()
	var total, known atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		total.Add(1)
		if r.URL.Path == "/blogs/postgres-query-optimization.md" {
			known.Add(1)
			_, _ = w.Write([]byte(articleBody))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &total, &known
}

func newTestLoader(t *testing.T, fetcher Fetcher) *Loader {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return NewLoader(fetcher, log)
}

func TestLoad_UnknownSlugIssuesNoFetch(t *testing.T) {
	srv, total, _ := newArticleServer(t)
	loader := newTestLoader(t, NewHTTPFetcher(srv.URL+"/blogs"))

	_, err := loader.Load(context.Background(), testSite(), "does-not-exist")
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, total.Load(), "a missing slug must not reach the network")
}

func TestLoad_KnownSlugFetchesExactlyOnce(t *testing.T) {
	srv, total, known := newArticleServer(t)
	loader := newTestLoader(t, NewHTTPFetcher(srv.URL+"/blogs"))

	art, err := loader.Load(context.Background(), testSite(), "postgres-query-optimization")
	require.NoError(t, err)

	assert.EqualValues(t, 1, total.Load())
	assert.EqualValues(t, 1, known.Load(), "the fetch must target /blogs/<markdownFile>")
	assert.Equal(t, articleBody, string(art.Body), "a body without frontmatter passes through verbatim")
	assert.False(t, art.LoadFailed)
	assert.Equal(t, "Postgres Query Optimization: A Field Guide", art.Title)
}

func TestLoad_FetchFailureYieldsFallbackBody(t *testing.T) {
	srv, _, _ := newArticleServer(t)
	loader := newTestLoader(t, NewHTTPFetcher(srv.URL+"/blogs"))

	// missing.md gets a 404 from the article server.
	art, err := loader.Load(context.Background(), testSite(), "broken-article")
	require.NoError(t, err, "a fetch failure is recovered, not surfaced")
	assert.True(t, art.LoadFailed)
	assert.Equal(t, FallbackBody, string(art.Body))
	assert.Equal(t, "Broken", art.Title, "metadata still renders around the fallback")
}

func TestLoad_TransportErrorYieldsFallbackBody(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	loader := newTestLoader(t, NewHTTPFetcher(srv.URL+"/blogs"))

	art, err := loader.Load(context.Background(), testSite(), "postgres-query-optimization")
	require.NoError(t, err)
	assert.True(t, art.LoadFailed)
	assert.Equal(t, FallbackBody, string(art.Body))
}

func TestLoad_CancelledContextAbortsWithoutFallback(t *testing.T) {
	srv, _, _ := newArticleServer(t)
	loader := newTestLoader(t, NewHTTPFetcher(srv.URL+"/blogs"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, testSite(), "postgres-query-optimization")
	require.ErrorIs(t, err, context.Canceled,
		"a superseded load must report cancellation instead of delivering a stale fallback")
}

func TestLoad_FrontmatterStrippedAndTitleOverrides(t *testing.T) {
	doc := "---\ntitle: \"Title From The Document\"\n---\n\nBody text only.\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(doc))
	}))
	t.Cleanup(srv.Close)
	loader := newTestLoader(t, NewHTTPFetcher(srv.URL+"/blogs"))

	art, err := loader.Load(context.Background(), testSite(), "postgres-query-optimization")
	require.NoError(t, err)
	assert.Equal(t, "Title From The Document", art.Title)
	assert.NotContains(t, string(art.Body), "---", "frontmatter must not leak into the rendered body")
	assert.Contains(t, string(art.Body), "Body text only.")
}

func TestLoad_FSFetcher(t *testing.T) {
	loader := newTestLoader(t, &FSFetcher{FS: content.Embedded, Dir: content.BlogsDir})
	site, err := content.Load(content.Embedded)
	require.NoError(t, err)

	art, err := loader.Load(context.Background(), site, "postgres-query-optimization")
	require.NoError(t, err)
	assert.False(t, art.LoadFailed)
	assert.Contains(t, string(art.Body), "EXPLAIN")
}

func TestTitleFromFile(t *testing.T) {
	meta := content.PostMeta{MarkdownFile: "graceful-shutdown_patterns.md"}
	title, _ := splitFrontmatter([]byte("no frontmatter here"), meta)
	assert.Equal(t, "Graceful Shutdown Patterns", title)
}
