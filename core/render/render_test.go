package render

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/wp2plus/core"
)

func TestHeaders(t *testing.T) {
	assert.Equal(t, "\n*Title*\n", Headers("<h2>Title</h2>"))
	assert.Equal(t, "\n*Deep*\n", Headers(`<h3 id="deep">Deep</h3>`))
	assert.Equal(t, "<hr />", Headers("<hr />"))
}

func TestEmphasis(t *testing.T) {
	assert.Equal(t, "_a_ *b*", Emphasis("<em>a</em> <strong>b</strong>"))
	// Overlap is converted literally.
	assert.Equal(t, "*_x*_", Emphasis("<strong><em>x</strong></em>"))
}

func TestLists(t *testing.T) {
	in := `<ul><li>first <a href="u1">t1</a></li><li>second <a href="u2">t2</a></li></ul>`

	got, err := Lists(in)
	require.NoError(t, err)
	assert.Equal(t, "\n*1.* first t1\nu1\n\n*2.* second t2\nu2\n\n", got)
}

func TestLists_MultipleBlocks(t *testing.T) {
	in := "A\n<ul>\n<li><a href=\"u1\">one</a></li>\n</ul>\nB\n<ul class=\"x\">\n<li>two <a href=\"u2\">*bold*</a></li>\n</ul>"

	got, err := Lists(in)
	require.NoError(t, err)
	assert.Equal(t, "A\n\n*1.* one\nu1\n\n\nB\n\n*1.* two *bold*\nu2\n\n", got)
}

func TestLists_ItemWithoutAnchor(t *testing.T) {
	_, err := Lists("<ul><li>nothing here</li></ul>")
	require.ErrorIs(t, err, core.ErrMalformedListItem)
}

func TestLists_ItemWithTwoAnchors(t *testing.T) {
	_, err := Lists(`<ul><li><a href="a">a</a><a href="b">b</a></li></ul>`)
	require.ErrorIs(t, err, core.ErrMalformedListItem)
}

func TestLists_AnchorWithoutHref(t *testing.T) {
	_, err := Lists(`<ul><li><a name="a">a</a></li></ul>`)
	require.ErrorIs(t, err, core.ErrMalformedAnchor)
}

func TestReferences(t *testing.T) {
	got, err := References(`See <a href="http://x">here</a>.`, nil)
	require.NoError(t, err)
	assert.Equal(t, "See here [1].\n\n*References*\n[1] http://x\n\n", got)
}

func TestReferences_Ordered(t *testing.T) {
	in := `<a href="http://a">A</a> then <a class="c" href="http://b">B</a>`

	got, err := References(in, nil)
	require.NoError(t, err)
	assert.Equal(t, "A [1] then B [2]\n\n*References*\n[1] http://a\n[2] http://b\n\n", got)
}

func TestReferences_DuplicateAnchorWarns(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	in := `<a href="http://a">A</a> and <a href="http://a">A</a>`

	got, err := References(in, logger)
	require.NoError(t, err)
	assert.Equal(t, "A [1] and A [1]\n\n*References*\n[1] http://a\n\n", got)
	assert.Contains(t, logs.String(), "duplicate anchor")
}

func TestReferences_MissingHref(t *testing.T) {
	_, err := References(`<a name="top">top</a>`, nil)
	require.ErrorIs(t, err, core.ErrMalformedAnchor)
}

func TestReferences_BareAnchor(t *testing.T) {
	_, err := References("See <a>bare</a> text.", nil)
	require.ErrorIs(t, err, core.ErrMalformedAnchor)
}

func TestReferences_TrimsDisplayText(t *testing.T) {
	got, err := References(`See <a href="u"> *bold* </a>.`, nil)
	require.NoError(t, err)
	assert.Equal(t, "See *bold* [1].\n\n*References*\n[1] u\n\n", got)
}

func TestReferences_AbbrIsNotAnAnchor(t *testing.T) {
	got, err := References("<abbr>HTML</abbr>", nil)
	require.NoError(t, err)
	assert.Equal(t, "<abbr>HTML</abbr>\n\n*References*\n\n", got)
}

func TestReferences_NoAnchors(t *testing.T) {
	got, err := References("plain", nil)
	require.NoError(t, err)
	assert.Equal(t, "plain\n\n*References*\n\n", got)
}

func TestFigure(t *testing.T) {
	fig := core.Figure(`[caption id="attachment_7" align="aligncenter" width="300"]<a href="http://site/big.jpg"><img class="size-medium" src="http://site/small.jpg" alt="" width="300" height="200" /></a> The view. Photo by <a href="http://credit.example">Jane</a>[/caption]`)

	got, err := Figure(fig)
	require.NoError(t, err)
	assert.Equal(t, "The view. Photo by Jane http://credit.example", got)
	assert.NotContains(t, got, "big.jpg")
}

func TestFigure_EmphasisInCaption(t *testing.T) {
	got, err := Figure(`[caption id="a"]<a href="i.jpg"><img src="i.jpg" /></a> A <em>very</em>big tree[/caption]`)
	require.NoError(t, err)
	assert.Equal(t, "A _very_ big tree", got)
}

func TestFigure_UnlinkedImage(t *testing.T) {
	got, err := Figure(`[caption id="a"]<img src="i.jpg" /> Map by <a href="http://m">M</a>[/caption]`)
	require.NoError(t, err)
	assert.Equal(t, "Map by M http://m", got)
}

func TestFigure_BareCreditAnchor(t *testing.T) {
	_, err := Figure(`[caption id="a"]<a href="i.jpg"><img src="i.jpg" /></a> by <a>me</a>[/caption]`)
	require.ErrorIs(t, err, core.ErrMalformedAnchor)
}

func TestEntities(t *testing.T) {
	assert.Equal(t, "Tom & Jerry’s", Entities("Tom &amp; Jerry&#8217;s"))
}
