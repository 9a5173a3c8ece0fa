package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Node is an element of a parsed page.
// Lookups report absence through their boolean result.
type Node interface {
	// Find returns the first descendant matching the CSS selector.
	Find(selector string) (Node, bool)

	// FindAll returns every descendant matching the CSS selector in
	// document order.
	FindAll(selector string) []Node

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Text returns the combined text of the node and its descendants.
	Text() string

	// HasText reports whether any descendant text node equals label
	// once surrounding whitespace is removed.
	HasText(label string) bool

	// NextUntil returns the following siblings matching filter, stopping
	// at the first sibling that matches until.
	NextUntil(filter, until string) []Node
}

// Document is a parsed page. Queries run from the document root.
type Document interface {
	Node
}

// Parse parses an HTML page.
func Parse(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &node{sel: doc.Selection}, nil
}

// node implements Node over a goquery selection holding one element.
type node struct {
	sel *goquery.Selection
}

func (n *node) Find(selector string) (Node, bool) {
	found := n.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return &node{sel: found}, true
}

func (n *node) FindAll(selector string) []Node {
	found := n.sel.Find(selector)
	nodes := make([]Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &node{sel: s})
	})
	return nodes
}

func (n *node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n *node) Text() string {
	return n.sel.Text()
}

func (n *node) NextUntil(filter, until string) []Node {
	found := n.sel.NextFilteredUntil(filter, until)
	nodes := make([]Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &node{sel: s})
	})
	return nodes
}

func (n *node) HasText(label string) bool {
	for _, root := range n.sel.Nodes {
		if hasTextNode(root, label) {
			return true
		}
	}
	return false
}

func hasTextNode(n *html.Node, label string) bool {
	if n.Type == html.TextNode && strings.TrimSpace(n.Data) == label {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasTextNode(c, label) {
			return true
		}
	}
	return false
}
