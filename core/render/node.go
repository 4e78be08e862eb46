// ABOUTME: Structural node tree handed to the generic XML writer
// ABOUTME: Defines Clark-notation naming and the writer contract

package render

import "strings"

// Namespace URIs used by the podcast profile. The content module is
// registered on the document but not exercised by any field.
const (
	NSITunes  = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	NSContent = "http://purl.org/rss/1.0/modules/content/"
)

// CDATA marks a text value that must be emitted as a CDATA section so
// embedded markup survives escaping.
type CDATA string

// Node is one structural element: a tag name (optionally in Clark
// notation), stringified attributes, and a value that is either nil,
// a string, a CDATA, or a list of child nodes.
type Node struct {
	Name  string
	Attr  map[string]string
	Value interface{}
}

// Document describes a complete XML document for a Writer: a root
// element with raw attributes, a namespace-URI to prefix table declared
// once at the root, and the root's children.
type Document struct {
	RootName   string
	RootAttr   map[string]string
	Namespaces map[string]string
	Children   []Node
}

// Writer is the generic XML writer consumed by the serialization
// engine. Implementations turn a node tree into the final document
// string, including the UTF-8 prolog and any pretty-printing.
type Writer interface {
	WriteDocument(doc Document) (string, error)
}

// Name produces a namespace-qualified tag name in Clark notation,
// e.g. Name(NSITunes, "explicit") -> "{http://...}explicit".
func Name(namespace, local string) string {
	return "{" + namespace + "}" + local
}

// SplitName splits a Clark-notation name into its namespace URI and
// local part. A name without a namespace returns an empty URI.
func SplitName(name string) (namespace, local string) {
	if !strings.HasPrefix(name, "{") {
		return "", name
	}
	end := strings.Index(name, "}")
	if end < 0 {
		return "", name
	}
	return name[1:end], name[end+1:]
}
