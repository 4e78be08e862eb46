// ABOUTME: Generic XML writer implementation backed by beevik/etree
// ABOUTME: Turns the structural node tree into the final UTF-8 document string

package etree

import (
	"fmt"
	"sort"

	"github.com/beevik/etree"

	"podcast-feed-api/core/render"
)

// Writer implements render.Writer on top of an etree document.
type Writer struct {
	// Indent is the number of spaces used per nesting level. Zero
	// produces compact single-line output.
	Indent int
}

// NewWriter creates a writer with two-space indentation.
func NewWriter() *Writer {
	return &Writer{Indent: 2}
}

// WriteDocument serializes the node tree into an XML document with a
// UTF-8 prolog. Namespace prefixes from the document table are
// declared once on the root element; attribute emission is sorted by
// key so repeated renders are byte-identical.
func (w *Writer) WriteDocument(doc render.Document) (string, error) {
	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := d.CreateElement(doc.RootName)
	for _, key := range sortedKeys(doc.RootAttr) {
		root.CreateAttr(key, doc.RootAttr[key])
	}
	for _, uri := range sortedKeys(doc.Namespaces) {
		root.CreateAttr("xmlns:"+doc.Namespaces[uri], uri)
	}

	for _, child := range doc.Children {
		if err := w.writeNode(root, child, doc.Namespaces); err != nil {
			return "", err
		}
	}

	if w.Indent > 0 {
		d.Indent(w.Indent)
	}
	return d.WriteToString()
}

// writeNode appends one structural node, resolving Clark-notation
// names through the namespace table.
func (w *Writer) writeNode(parent *etree.Element, node render.Node, namespaces map[string]string) error {
	tag, err := resolveName(node.Name, namespaces)
	if err != nil {
		return err
	}

	element := parent.CreateElement(tag)
	for _, key := range sortedKeys(node.Attr) {
		element.CreateAttr(key, node.Attr[key])
	}

	switch value := node.Value.(type) {
	case nil:
	case string:
		element.SetText(value)
	case render.CDATA:
		element.CreateCData(string(value))
	case []render.Node:
		for _, child := range value {
			if err := w.writeNode(element, child, namespaces); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported node value type %T on element '%s'", node.Value, node.Name)
	}

	return nil
}

// resolveName maps a Clark-notation name to its prefixed form using
// the namespace table declared at the root.
func resolveName(name string, namespaces map[string]string) (string, error) {
	uri, local := render.SplitName(name)
	if uri == "" {
		return local, nil
	}
	prefix, ok := namespaces[uri]
	if !ok {
		return "", fmt.Errorf("namespace '%s' is not declared on the document", uri)
	}
	return prefix + ":" + local, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
