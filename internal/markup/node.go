// Package markup models page structure as an ordered, immutable node tree.
//
// Components build trees with El, Text, Raw, Group and Doc. A built tree
// cannot be modified: accessors hand out copies. Rendering goes through
// golang.org/x/net/html so escaping rules match the standard HTML5 serializer.
package markup

// Kind identifies what a node represents.
type Kind int

const (
	// Fragment splices its children into the parent. The zero Node is an empty fragment.
	Fragment Kind = iota
	// Document is the root of a full page and renders with an HTML5 doctype.
	Document
	// Element is a tag with attributes and children.
	Element
	// Text is escaped character data.
	Text
	// Raw is trusted, pre-rendered HTML written without escaping.
	Raw
)

// String returns a lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case Fragment:
		return "fragment"
	case Document:
		return "document"
	case Element:
		return "element"
	case Text:
		return "text"
	case Raw:
		return "raw"
	default:
		return "unknown"
	}
}

// Attr is a single attribute. Attribute order is preserved as declared.
type Attr struct {
	Key string
	Val string
}

// A is shorthand for building an Attr.
func A(key, val string) Attr {
	return Attr{Key: key, Val: val}
}

// Node is one entry of the tree.
type Node struct {
	kind     Kind
	tag      string
	data     string
	attrs    []Attr
	children []Node
}

// El builds an element node.
func El(tag string, attrs []Attr, children ...Node) Node {
	return Node{
		kind:     Element,
		tag:      tag,
		attrs:    cloneAttrs(attrs),
		children: cloneNodes(children),
	}
}

// TextNode builds an escaped text node.
func TextNode(s string) Node {
	return Node{kind: Text, data: s}
}

// RawHTML builds a node whose content is emitted verbatim.
func RawHTML(s string) Node {
	return Node{kind: Raw, data: s}
}

// Group builds a fragment holding the given children.
func Group(children ...Node) Node {
	return Node{kind: Fragment, children: cloneNodes(children)}
}

// Doc builds a document root.
func Doc(children ...Node) Node {
	return Node{kind: Document, children: cloneNodes(children)}
}

// Kind reports the node kind.
func (n Node) Kind() Kind { return n.kind }

// Tag returns the element name, or "" for non-element nodes.
func (n Node) Tag() string { return n.tag }

// Data returns the text or raw HTML payload.
func (n Node) Data() string { return n.data }

// Attrs returns a copy of the attribute list.
func (n Node) Attrs() []Attr { return cloneAttrs(n.attrs) }

// Children returns a copy of the child list.
func (n Node) Children() []Node { return cloneNodes(n.children) }

// Attr looks up an attribute by key.
func (n Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the node's children.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Equal reports whether two trees are structurally identical.
func Equal(a, b Node) bool {
	if a.kind != b.kind || a.tag != b.tag || a.data != b.data {
		return false
	}
	if len(a.attrs) != len(b.attrs) || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.attrs {
		if a.attrs[i] != b.attrs[i] {
			return false
		}
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

func cloneAttrs(in []Attr) []Attr {
	if len(in) == 0 {
		return nil
	}
	out := make([]Attr, len(in))
	copy(out, in)
	return out
}

func cloneNodes(in []Node) []Node {
	if len(in) == 0 {
		return nil
	}
	out := make([]Node, len(in))
	copy(out, in)
	return out
}
