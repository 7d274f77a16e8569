// Package footer defines the site footer: three fixed groups of links for
// external calculators, legal pages and contact details.
package footer

import (
	"errors"
	"fmt"
	"strings"

	"rolsa.tech/web/internal/markup"
)

// Purpose classifies a link group.
type Purpose int

const (
	// ExternalTools groups third-party calculators.
	ExternalTools Purpose = iota
	// Legal groups the policy pages.
	Legal
	// Contact groups the phone and mail details.
	Contact
)

// String returns the value used for the data-link-group attribute.
func (p Purpose) String() string {
	switch p {
	case ExternalTools:
		return "external-tools"
	case Legal:
		return "legal"
	case Contact:
		return "contact"
	default:
		return "unknown"
	}
}

// TargetKind describes where a link entry leads.
type TargetKind int

const (
	StaticText   TargetKind = iota // no target, rendered as plain text
	InternalPath                   // site-relative path
	ExternalURL                    // absolute http(s) URL
	MailTo                         // mailto: address
)

// LinkEntry is one row of a link group. Entries without a target are static text.
type LinkEntry struct {
	DisplayText string
	Target      string
	External    bool
	NewContext  bool // opens in a new browsing context
}

// ExternalLink builds an entry that leaves the site in a new browsing context.
func ExternalLink(text, uri string) LinkEntry {
	return LinkEntry{DisplayText: text, Target: uri, External: true, NewContext: true}
}

// InternalLink builds a same-context link to a site path.
func InternalLink(text, path string) LinkEntry {
	return LinkEntry{DisplayText: text, Target: path}
}

// MailLink builds a mailto: entry handed off to the mail client.
func MailLink(text, address string) LinkEntry {
	return LinkEntry{DisplayText: text, Target: "mailto:" + address}
}

// StaticEntry builds a plain text row.
func StaticEntry(text string) LinkEntry {
	return LinkEntry{DisplayText: text}
}

// IsLink reports whether the entry navigates anywhere.
func (e LinkEntry) IsLink() bool {
	return e.Target != ""
}

// TargetKind classifies the entry target.
func (e LinkEntry) TargetKind() TargetKind {
	switch {
	case e.Target == "":
		return StaticText
	case strings.HasPrefix(strings.ToLower(e.Target), "mailto:"):
		return MailTo
	case e.External:
		return ExternalURL
	default:
		return InternalPath
	}
}

// LinkGroup is an ordered run of entries sharing a purpose.
type LinkGroup struct {
	Purpose Purpose
	Entries []LinkEntry
}

// Groups returns the footer definition in display order.
func Groups() []LinkGroup {
	return []LinkGroup{
		{
			Purpose: ExternalTools,
			Entries: []LinkEntry{
				ExternalLink("Carbon Footprint Calculator", "https://footprint.wwf.org.uk/"),
				ExternalLink("Energy Usage Calculator", "https://consumption.selectra.co.uk/"),
			},
		},
		{
			Purpose: Legal,
			Entries: []LinkEntry{
				InternalLink("Privacy Policy", "/privacy-policy"),
				InternalLink("Accessibility Statement", "/accessibility-statement"),
			},
		},
		{
			Purpose: Contact,
			Entries: []LinkEntry{
				StaticEntry("Contact:"),
				StaticEntry("07777 777777"),
				MailLink("support@rolsa.tech", "support@rolsa.tech"),
			},
		},
	}
}

// ErrNewContextMismatch marks an entry whose External and NewContext flags disagree.
var ErrNewContextMismatch = errors.New("footer: external links must open in a new context")

// Validate checks that every external entry opens a new browsing context and
// that no other entry does.
func Validate(groups []LinkGroup) error {
	var errs []error
	for _, g := range groups {
		for i, e := range g.Entries {
			if e.External != e.NewContext {
				errs = append(errs, fmt.Errorf("%w: %s[%d] %q", ErrNewContextMismatch, g.Purpose, i, e.DisplayText))
			}
		}
	}
	return errors.Join(errs...)
}

// Footer renders the footer groups.
func Footer() markup.Node {
	groups := Groups()
	lists := make([]markup.Node, 0, len(groups))
	for _, g := range groups {
		items := make([]markup.Node, 0, len(g.Entries))
		for _, e := range g.Entries {
			items = append(items, markup.El("li", nil, entryContent(e)))
		}
		lists = append(lists, markup.El("ul", []markup.Attr{markup.A("data-link-group", g.Purpose.String())}, items...))
	}
	return markup.El("footer", nil, lists...)
}

func entryContent(e LinkEntry) markup.Node {
	if !e.IsLink() {
		return markup.TextNode(e.DisplayText)
	}
	attrs := []markup.Attr{markup.A("href", e.Target)}
	if e.NewContext {
		attrs = append(attrs, markup.A("target", "_blank"), markup.A("rel", "noopener noreferrer"))
	}
	return markup.El("a", attrs, markup.TextNode(e.DisplayText))
}
