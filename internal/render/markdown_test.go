package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML_GFMTable(t *testing.T) {
	md := NewMarkdown()
	out, err := md.ToHTML([]byte("| a | b |\n| --- | --- |\n| 1 | 2 |\n"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<table>")
	assert.Contains(t, string(out), "<td>1</td>")
}

func TestToHTML_Strikethrough(t *testing.T) {
	md := NewMarkdown()
	out, err := md.ToHTML([]byte("~~gone~~"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<del>gone</del>")
}

func TestToHTML_TaskList(t *testing.T) {
	md := NewMarkdown()
	out, err := md.ToHTML([]byte("- [x] measured\n- [ ] guessed\n"))
	require.NoError(t, err)
	assert.Contains(t, string(out), `type="checkbox"`)
}

func TestToHTML_RawHTMLPassthrough(t *testing.T) {
	md := NewMarkdown()
	out, err := md.ToHTML([]byte("before\n\n<aside class=\"note\">kept</aside>\n"))
	require.NoError(t, err)
	assert.Contains(t, string(out), `<aside class="note">kept</aside>`,
		"embedded raw HTML is authored content and must pass through")
}

func TestToHTML_FencedCodeHighlighted(t *testing.T) {
	md := NewMarkdown()
	out, err := md.ToHTML([]byte("```go\nfunc main() {}\n```\n"))
	require.NoError(t, err)
	// Class-based chroma output: tokens carry chroma class names.
	assert.Contains(t, string(out), "chroma")
}

func TestToHTML_AutoHeadingIDs(t *testing.T) {
	md := NewMarkdown()
	out, err := md.ToHTML([]byte("## Start With Explain\n"))
	require.NoError(t, err)
	assert.Contains(t, string(out), `id="start-with-explain"`)
}
