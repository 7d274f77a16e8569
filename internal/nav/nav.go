// Package nav builds the persistent navigation bar shown above every page.
package nav

import "rolsa.tech/web/internal/markup"

// LoginControlID identifies the login button for styling and behaviour hooks.
const LoginControlID = "nav-login"

// Entry represents a top-level navigation item.
type Entry struct {
	Label       string
	Interactive bool   // rendered as a control rather than a label
	ID          string // optional element id
}

// mainEntries is the primary navigation definition. Display order is list order.
// A fresh slice is built on every call.
func mainEntries() []Entry {
	return []Entry{
		{Label: "Logo"},
		{Label: "Who we are"},
		{Label: "Green Energy Products"},
		{Label: "Book an appointment"},
		{Label: "Login", Interactive: true, ID: LoginControlID},
	}
}

// Entries returns the navigation definition. The slice is the caller's to keep.
func Entries() []Entry {
	return mainEntries()
}

// Bar renders the navigation bar.
func Bar() markup.Node {
	entries := Entries()
	items := make([]markup.Node, 0, len(entries))
	for _, e := range entries {
		items = append(items, markup.El("li", nil, entryContent(e)))
	}
	return markup.El("nav", nil, markup.El("ul", nil, items...))
}

func entryContent(e Entry) markup.Node {
	if !e.Interactive {
		return markup.TextNode(e.Label)
	}
	var attrs []markup.Attr
	if e.ID != "" {
		attrs = append(attrs, markup.A("id", e.ID))
	}
	return markup.El("button", attrs, markup.TextNode(e.Label))
}
