package cms

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"rolsa.tech/web/internal/markup"
)

// ErrNotFound is returned when no page exists for a slug.
var ErrNotFound = errors.New("cms: page not found")

const defaultLang = "en"

// Page is a static page rendered from markdown.
type Page struct {
	Slug          string
	Title         string
	Summary       string
	Lang          string
	EffectiveDate time.Time
	UpdatedAt     time.Time
	HTML          string // sanitised body
}

// Slot wraps the page body for placement inside the page shell.
func (p Page) Slot() markup.Node {
	return markup.El("main", []markup.Attr{markup.A("data-page", p.Slug)}, markup.RawHTML(p.HTML))
}

type frontMatter struct {
	Title         string `yaml:"title"`
	Summary       string `yaml:"summary"`
	Lang          string `yaml:"lang"`
	EffectiveDate string `yaml:"effective_date"`
	UpdatedAt     string `yaml:"updated_at"`
}

// Library holds every page parsed at load time. It is read-only after Load.
type Library struct {
	pages map[string]Page
}

var htmlPolicy = newPageHTMLPolicy()

// Load parses every *.md file under dir in fsys.
func Load(fsys fs.FS, dir string) (*Library, error) {
	dir = strings.Trim(strings.TrimSpace(dir), "/")
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("cms: read %s: %w", dir, err)
	}
	lib := &Library{pages: map[string]Page{}}
	md := goldmark.New()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := sanitizeSlug(strings.TrimSuffix(entry.Name(), ".md"))
		if slug == "" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("cms: read %s: %w", entry.Name(), err)
		}
		page, err := parsePage(md, slug, data)
		if err != nil {
			return nil, err
		}
		lib.pages[slug] = page
	}
	return lib, nil
}

// Page returns the page for slug.
func (l *Library) Page(slug string) (Page, error) {
	if l == nil {
		return Page{}, ErrNotFound
	}
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	page, ok := l.pages[slug]
	if !ok {
		return Page{}, ErrNotFound
	}
	return page, nil
}

// Slugs lists the loaded page slugs in sorted order.
func (l *Library) Slugs() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.pages))
	for slug := range l.pages {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

func parsePage(md goldmark.Markdown, slug string, data []byte) (Page, error) {
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("cms: parse front matter %s: %w", slug, err)
		}
	}
	lang, err := normalizeLang(front.Lang)
	if err != nil {
		return Page{}, fmt.Errorf("cms: page %s: %w", slug, err)
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return Page{}, fmt.Errorf("cms: render %s: %w", slug, err)
	}
	page := Page{
		Slug:          slug,
		Title:         strings.TrimSpace(front.Title),
		Summary:       strings.TrimSpace(front.Summary),
		Lang:          lang,
		EffectiveDate: parseContentDate(front.EffectiveDate),
		UpdatedAt:     parseContentDate(front.UpdatedAt),
		HTML:          strings.TrimSpace(htmlPolicy.Sanitize(buf.String())),
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func newPageHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span")
	policy.RequireNoFollowOnLinks(false)
	return policy
}

func normalizeLang(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultLang, nil
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid lang %q: %w", raw, err)
	}
	return tag.String(), nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseContentDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}
