// Package layout provides the root document shell every page is rendered into.
package layout

import (
	"golang.org/x/text/language"

	"rolsa.tech/web/internal/footer"
	"rolsa.tech/web/internal/markup"
	"rolsa.tech/web/internal/nav"
)

const (
	// StylesheetName is the logical name of the global stylesheet.
	StylesheetName = "globals.css"
	// StylesheetHref is where the host serves StylesheetName.
	StylesheetHref = "/assets/" + StylesheetName
)

// Lang returns the document locale.
func Lang() language.Tag { return language.English }

// Shell wraps page content with the navigation bar and footer. The slot is
// placed between them untouched; a zero slot leaves the content region empty.
func Shell(slot markup.Node) markup.Node {
	return markup.Doc(
		markup.El("html", []markup.Attr{markup.A("lang", Lang().String())},
			markup.El("head", nil,
				markup.El("meta", []markup.Attr{markup.A("charset", "utf-8")}),
				markup.El("link", []markup.Attr{markup.A("rel", "stylesheet"), markup.A("href", StylesheetHref)}),
			),
			markup.El("body", nil,
				nav.Bar(),
				slot,
				footer.Footer(),
			),
		),
	)
}
