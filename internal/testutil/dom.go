// Package testutil holds DOM helpers shared by the rendering tests.
package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"rolsa.tech/web/internal/markup"
)

// ParseHTML loads an HTML payload, such as a recorded response body, into a
// goquery document.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("testutil: parse html: %v", err)
	}
	return doc
}

// ParseNode renders n and parses the result. Render failures fail the test.
func ParseNode(t testing.TB, n markup.Node) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	if err := n.Render(context.Background(), &buf); err != nil {
		t.Fatalf("testutil: render %s node: %v", n.Kind(), err)
	}
	return ParseHTML(t, buf.Bytes())
}
