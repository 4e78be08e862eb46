// ABOUTME: Field writer shared by the Podcast and Episode entities
// ABOUTME: Applies empty-value elision and CDATA wrapping before nodes are emitted

package render

import "strings"

// FieldWriter accumulates structural nodes in emission order. Both feed
// entities drive one of these while walking their fixed field order.
type FieldWriter struct {
	nodes []Node
}

// NewFieldWriter creates an empty field writer.
func NewFieldWriter() *FieldWriter {
	return &FieldWriter{}
}

// Nodes returns the accumulated nodes in the order they were written.
func (w *FieldWriter) Nodes() []Node {
	return w.nodes
}

// WriteField emits one field as a node. Attributes and the value are
// passed through empty-value filtering first; if both come out empty
// the field is skipped entirely, so no empty element is ever emitted.
func (w *FieldWriter) WriteField(name string, value interface{}, attr map[string]string) {
	filteredAttr := FilterAttributes(attr)
	filteredValue := FilterValue(value)

	if len(filteredAttr) == 0 && filteredValue == nil {
		return
	}

	w.nodes = append(w.nodes, Node{Name: name, Attr: filteredAttr, Value: filteredValue})
}

// WriteHTMLField emits one field whose text value carries markup. The
// same elision rules apply, but a surviving value is wrapped in a CDATA
// marker so downstream escaping does not mangle the embedded HTML.
func (w *FieldWriter) WriteHTMLField(name string, value string, attr map[string]string) {
	filteredAttr := FilterAttributes(attr)
	trimmed := strings.TrimSpace(value)

	if len(filteredAttr) == 0 && trimmed == "" {
		return
	}

	var nodeValue interface{}
	if trimmed != "" {
		nodeValue = CDATA(trimmed)
	}

	w.nodes = append(w.nodes, Node{Name: name, Attr: filteredAttr, Value: nodeValue})
}

// FilterAttributes returns a copy of the attribute map with blank
// values removed and surviving values trimmed in place.
func FilterAttributes(attr map[string]string) map[string]string {
	if len(attr) == 0 {
		return nil
	}

	filtered := make(map[string]string, len(attr))
	for key, value := range attr {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		filtered[key] = trimmed
	}

	if len(filtered) == 0 {
		return nil
	}
	return filtered
}

// FilterValue normalizes a field value: strings are trimmed and become
// nil when blank, child node lists are filtered recursively, and
// anything already empty collapses to nil.
func FilterValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		return trimmed
	case CDATA:
		trimmed := strings.TrimSpace(string(v))
		if trimmed == "" {
			return nil
		}
		return CDATA(trimmed)
	case []Node:
		filtered := filterNodes(v)
		if len(filtered) == 0 {
			return nil
		}
		return filtered
	default:
		return value
	}
}

// filterNodes applies empty-value filtering to each node in a child
// list, dropping nodes left with no attributes and no value.
func filterNodes(nodes []Node) []Node {
	filtered := make([]Node, 0, len(nodes))
	for _, node := range nodes {
		attr := FilterAttributes(node.Attr)
		value := FilterValue(node.Value)
		if len(attr) == 0 && value == nil {
			continue
		}
		filtered = append(filtered, Node{Name: node.Name, Attr: attr, Value: value})
	}
	return filtered
}
