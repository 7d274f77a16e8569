package markup

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var _ templ.Component = Node{}

// Render writes the tree as HTML. It satisfies templ.Component so a Node can be
// handed straight to templ.Handler.
func (n Node) Render(_ context.Context, w io.Writer) error {
	root := &html.Node{Type: html.DocumentNode}
	if n.kind == Document {
		root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	}
	if err := appendTo(root, n); err != nil {
		return err
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return fmt.Errorf("markup: render <%s>: %w", c.Data, err)
		}
	}
	return nil
}

// String renders the tree into a string, returning "" on failure.
func (n Node) String() string {
	var buf bytes.Buffer
	if err := n.Render(context.Background(), &buf); err != nil {
		return ""
	}
	return buf.String()
}

func appendTo(parent *html.Node, n Node) error {
	switch n.kind {
	case Fragment, Document:
		for _, c := range n.children {
			if err := appendTo(parent, c); err != nil {
				return err
			}
		}
	case Text:
		if n.data != "" {
			parent.AppendChild(&html.Node{Type: html.TextNode, Data: n.data})
		}
	case Raw:
		if n.data != "" {
			parent.AppendChild(&html.Node{Type: html.RawNode, Data: n.data})
		}
	case Element:
		if n.tag == "" {
			return fmt.Errorf("markup: element without tag")
		}
		el := &html.Node{
			Type:     html.ElementNode,
			Data:     n.tag,
			DataAtom: atom.Lookup([]byte(n.tag)),
		}
		for _, a := range n.attrs {
			el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
		for _, c := range n.children {
			if err := appendTo(el, c); err != nil {
				return err
			}
		}
		parent.AppendChild(el)
	default:
		return fmt.Errorf("markup: unknown node kind %d", n.kind)
	}
	return nil
}
