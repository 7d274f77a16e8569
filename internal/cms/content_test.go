package cms

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"rolsa.tech/web/content"
	"rolsa.tech/web/internal/testutil"
)

func TestLoadEmbeddedPages(t *testing.T) {
	t.Parallel()

	lib, err := Load(content.Pages, content.PagesDir)
	require.NoError(t, err)
	require.Equal(t, []string{"accessibility-statement", "home", "privacy-policy"}, lib.Slugs())

	home, err := lib.Page("home")
	require.NoError(t, err)
	require.Equal(t, "<p>Welcome</p>", home.HTML)
	require.Equal(t, "en", home.Lang)

	privacy, err := lib.Page("privacy-policy")
	require.NoError(t, err)
	require.Equal(t, "Privacy Policy", privacy.Title)
	require.True(t, privacy.EffectiveDate.Equal(time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)))

	doc := testutil.ParseNode(t, privacy.Slot())
	require.Equal(t, "mailto:support@rolsa.tech", doc.Find("a").AttrOr("href", ""))
}

func TestLoadParsesFrontMatterAndSanitises(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"pages/offers.md": {Data: []byte("---\ntitle: \" Offers \"\nsummary: Deals\nlang: en-GB\nupdated_at: 2026-03-01T10:00:00Z\n---\n\n# Offers\n\n<script>alert(1)</script>\n\nSave [now](https://example.com).\n")},
		"pages/no-front-matter.md": {Data: []byte("Just text.\n")},
		"pages/notes.txt":          {Data: []byte("ignored")},
	}

	lib, err := Load(fsys, "pages")
	require.NoError(t, err)
	require.Equal(t, []string{"no-front-matter", "offers"}, lib.Slugs())

	offers, err := lib.Page("offers")
	require.NoError(t, err)
	require.Equal(t, "Offers", offers.Title)
	require.Equal(t, "Deals", offers.Summary)
	require.Equal(t, "en-GB", offers.Lang)
	require.True(t, offers.UpdatedAt.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	require.NotContains(t, offers.HTML, "<script>")
	require.Contains(t, offers.HTML, "<h1>Offers</h1>")
	require.Contains(t, offers.HTML, `href="https://example.com"`)

	plain, err := lib.Page("no-front-matter")
	require.NoError(t, err)
	require.Equal(t, "No Front Matter", plain.Title, "title falls back to the slug")
	require.Equal(t, "en", plain.Lang)
	require.Equal(t, "<p>Just text.</p>", plain.HTML)
}

func TestLoadRejectsBadFrontMatter(t *testing.T) {
	t.Parallel()

	_, err := Load(fstest.MapFS{
		"pages/broken.md": {Data: []byte("---\ntitle: [unclosed\n---\nbody\n")},
	}, "pages")
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken")

	_, err = Load(fstest.MapFS{
		"pages/lang.md": {Data: []byte("---\nlang: \"!!\"\n---\nbody\n")},
	}, "pages")
	require.Error(t, err)

	_, err = Load(fstest.MapFS{}, "missing")
	require.Error(t, err)
}

func TestPageLookupRejectsUnknownAndUnsafeSlugs(t *testing.T) {
	t.Parallel()

	lib, err := Load(content.Pages, content.PagesDir)
	require.NoError(t, err)

	for _, slug := range []string{"", "missing", "../home", "a/b", `a\b`} {
		_, err := lib.Page(slug)
		require.True(t, errors.Is(err, ErrNotFound), "slug %q", slug)
	}

	page, err := lib.Page("/Home/")
	require.NoError(t, err, "slugs are normalised")
	require.Equal(t, "home", page.Slug)

	var nilLib *Library
	_, err = nilLib.Page("home")
	require.True(t, errors.Is(err, ErrNotFound))
	require.Nil(t, nilLib.Slugs())
}

func TestPageSlotWrapsBody(t *testing.T) {
	t.Parallel()

	p := Page{Slug: "home", HTML: "<p>Welcome</p>"}
	require.Equal(t, `<main data-page="home"><p>Welcome</p></main>`, p.Slot().String())
}

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	fm, body := splitFrontMatter("\ufeff---\na: 1\n---\n\nbody\n")
	require.Equal(t, "a: 1", fm)
	require.Equal(t, "body\n", body)

	fm, body = splitFrontMatter("---\nunterminated\n")
	require.Empty(t, fm)
	require.Equal(t, "---\nunterminated\n", body)
}
