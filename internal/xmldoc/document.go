package xmldoc

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// Namespace URIs used by WordPress exports.
const (
	// DefaultWPNamespace is assumed for the wp prefix when undeclared.
	DefaultWPNamespace = "http://wordpress.org/export/1.1/"

	// DefaultExcerptNamespace is assumed for the excerpt prefix when undeclared.
	DefaultExcerptNamespace = "http://wordpress.org/export/1.1/excerpt/"

	// ContentNamespace holds content:encoded.
	ContentNamespace = "http://purl.org/rss/1.0/modules/content/"

	// DCNamespace holds dc:creator.
	DCNamespace = "http://purl.org/dc/elements/1.1/"
)

// Namespace prefixes the queries are written against.
const (
	PrefixWP      = "wp"
	PrefixExcerpt = "excerpt"
	PrefixContent = "content"
	PrefixDC      = "dc"
)

// Channel-level paths.
const (
	versionPath     = "/rss/channel/wp:wxr_version"
	baseSiteURLPath = "/rss/channel/wp:base_site_url"
	baseBlogURLPath = "/rss/channel/wp:base_blog_url"
)

var versionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// Document is a loaded XML tree with the namespace bindings queries use.
type Document struct {
	tree       *etree.Document
	namespaces map[string]string
}

func newDocument(tree *etree.Document) *Document {
	ns := map[string]string{
		PrefixContent: ContentNamespace,
		PrefixDC:      DCNamespace,
	}
	for _, attr := range tree.Root().Attr {
		if attr.Space == "xmlns" {
			ns[attr.Key] = attr.Value
		}
	}
	if _, ok := ns[PrefixWP]; !ok {
		ns[PrefixWP] = DefaultWPNamespace
	}
	if _, ok := ns[PrefixExcerpt]; !ok {
		ns[PrefixExcerpt] = DefaultExcerptNamespace
	}

	return &Document{tree: tree, namespaces: ns}
}

// NamespaceURI returns the URI bound to prefix, including defaults.
func (d *Document) NamespaceURI(prefix string) string {
	return d.namespaces[prefix]
}

// Query returns the elements matching an absolute path such as
// /rss/channel/wp:author, in document order.
// Each step is a local name, optionally qualified with a known prefix.
func (d *Document) Query(path string) []Node {
	steps := strings.Split(strings.Trim(path, "/"), "/")
	if len(steps) == 0 || steps[0] == "" {
		return nil
	}

	root := d.tree.Root()
	prefix, local := splitName(steps[0])
	if !d.matches(root, prefix, local) {
		return nil
	}

	current := []*etree.Element{root}
	for _, step := range steps[1:] {
		prefix, local := splitName(step)
		var next []*etree.Element
		for _, el := range current {
			for _, child := range el.ChildElements() {
				if d.matches(child, prefix, local) {
					next = append(next, child)
				}
			}
		}
		current = next
	}

	nodes := make([]Node, len(current))
	for i, el := range current {
		nodes[i] = Node{el: el, doc: d}
	}
	return nodes
}

// Version returns the trimmed wp:wxr_version.
func (d *Document) Version() (string, error) {
	nodes := d.Query(versionPath)
	if len(nodes) == 0 {
		return "", domain.ErrMissingVersion
	}

	version := strings.TrimSpace(nodes[0].Text())
	if !versionPattern.MatchString(version) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidVersion, version)
	}
	return version, nil
}

// BaseURL returns the trimmed wp:base_site_url, or "".
func (d *Document) BaseURL() string {
	return d.firstText(baseSiteURLPath)
}

// BaseBlogURL returns the trimmed wp:base_blog_url, falling back to BaseURL.
func (d *Document) BaseBlogURL() string {
	if nodes := d.Query(baseBlogURLPath); len(nodes) > 0 {
		return strings.TrimSpace(nodes[0].Text())
	}
	return d.BaseURL()
}

func (d *Document) firstText(path string) string {
	nodes := d.Query(path)
	if len(nodes) == 0 {
		return ""
	}
	return strings.TrimSpace(nodes[0].Text())
}

// matches reports whether el has the given local name in the namespace bound
// to prefix. An empty prefix matches unqualified elements. An element whose
// own prefix is undeclared in the document matches on the prefix literally,
// which is how exports that omit xmlns:wp are read.
func (d *Document) matches(el *etree.Element, prefix, local string) bool {
	if el.Tag != local {
		return false
	}
	if prefix == "" {
		return el.Space == ""
	}
	if uri := el.NamespaceURI(); uri != "" {
		return uri == d.namespaces[prefix]
	}
	return el.Space == prefix
}

func splitName(name string) (prefix, local string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// Node is one element of a loaded Document.
type Node struct {
	el  *etree.Element
	doc *Document
}

// Text returns the element's character data, including CDATA sections.
func (n Node) Text() string {
	return n.el.Text()
}

// Attr returns the value of an unqualified attribute.
func (n Node) Attr(name string) (string, bool) {
	attr := n.el.SelectAttr(name)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// Children scopes child access to the namespace bound to prefix.
// Use "" for unqualified RSS elements.
func (n Node) Children(prefix string) Scope {
	return Scope{node: n, prefix: prefix}
}

// Scope reads the children of one node within one namespace.
type Scope struct {
	node   Node
	prefix string
}

// Elements returns all children with the given local name.
func (s Scope) Elements(local string) []Node {
	var out []Node
	for _, child := range s.node.el.ChildElements() {
		if s.node.doc.matches(child, s.prefix, local) {
			out = append(out, Node{el: child, doc: s.node.doc})
		}
	}
	return out
}

// First returns the first child with the given local name.
func (s Scope) First(local string) (Node, bool) {
	for _, child := range s.node.el.ChildElements() {
		if s.node.doc.matches(child, s.prefix, local) {
			return Node{el: child, doc: s.node.doc}, true
		}
	}
	return Node{}, false
}

// Has reports whether a child with the given local name exists.
func (s Scope) Has(local string) bool {
	_, ok := s.First(local)
	return ok
}

// Text returns the first matching child's text, or "" when absent.
func (s Scope) Text(local string) string {
	if n, ok := s.First(local); ok {
		return n.Text()
	}
	return ""
}

// Int returns the first matching child's text as an integer.
// Absent or non-numeric values read as 0.
func (s Scope) Int(local string) int {
	return ParseInt(s.Text(local))
}

// ParseInt reads the leading optionally signed decimal digits of s, ignoring
// surrounding whitespace. Anything unparsable is 0; a digit run beyond the
// int range saturates at the nearest bound.
func ParseInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		return n
	}
	if err != nil {
		return 0
	}
	return n
}
