package render

import (
	"reflect"
	"testing"
)

func TestName(t *testing.T) {
	got := Name(NSITunes, "explicit")
	want := "{http://www.itunes.com/dtds/podcast-1.0.dtd}explicit"
	if got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		namespace string
		local     string
	}{
		{
			name:      "clark notation",
			input:     "{http://www.itunes.com/dtds/podcast-1.0.dtd}category",
			namespace: NSITunes,
			local:     "category",
		},
		{
			name:      "plain name",
			input:     "title",
			namespace: "",
			local:     "title",
		},
		{
			name:      "unterminated brace treated as plain",
			input:     "{broken",
			namespace: "",
			local:     "{broken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, local := SplitName(tt.input)
			if ns != tt.namespace || local != tt.local {
				t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)",
					tt.input, ns, local, tt.namespace, tt.local)
			}
		})
	}
}

func TestFieldWriter_WriteField_SkipsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		attr  map[string]string
	}{
		{"nil value no attrs", nil, nil},
		{"empty string", "", nil},
		{"whitespace-only string", "   \t ", nil},
		{"blank attrs only", nil, map[string]string{"href": "  "}},
		{"empty child list", []Node{}, nil},
		{"children all empty", []Node{{Name: "category"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewFieldWriter()
			w.WriteField("field", tt.value, tt.attr)
			if len(w.Nodes()) != 0 {
				t.Errorf("expected field to be elided, got %+v", w.Nodes())
			}
		})
	}
}

func TestFieldWriter_WriteField_TrimsAndEmits(t *testing.T) {
	w := NewFieldWriter()
	w.WriteField("title", "  Test Show  ", nil)

	nodes := w.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if nodes[0].Value != "Test Show" {
		t.Errorf("value = %v, want trimmed string", nodes[0].Value)
	}
}

func TestFieldWriter_WriteField_FiltersAttributes(t *testing.T) {
	w := NewFieldWriter()
	w.WriteField("enclosure", nil, map[string]string{
		"url":    " https://x/e1.mp3 ",
		"length": "1000",
		"type":   "",
	})

	nodes := w.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	want := map[string]string{"url": "https://x/e1.mp3", "length": "1000"}
	if !reflect.DeepEqual(nodes[0].Attr, want) {
		t.Errorf("attrs = %v, want %v", nodes[0].Attr, want)
	}
}

func TestFieldWriter_WriteField_FiltersChildrenRecursively(t *testing.T) {
	w := NewFieldWriter()
	w.WriteField("category", []Node{
		{Name: "category", Attr: map[string]string{"text": "Books"}},
		{Name: "category", Attr: map[string]string{"text": "  "}},
		{Name: "category", Attr: map[string]string{"text": " Design "}},
	}, map[string]string{"text": "Arts"})

	nodes := w.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	children, ok := nodes[0].Value.([]Node)
	if !ok {
		t.Fatalf("value is %T, want []Node", nodes[0].Value)
	}
	if len(children) != 2 {
		t.Fatalf("expected blank child dropped, got %d children", len(children))
	}
	if children[0].Attr["text"] != "Books" || children[1].Attr["text"] != "Design" {
		t.Errorf("child order not preserved: %+v", children)
	}
}

func TestFieldWriter_WriteHTMLField(t *testing.T) {
	w := NewFieldWriter()
	w.WriteHTMLField("description", "<p>hi</p>", nil)

	nodes := w.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	cdata, ok := nodes[0].Value.(CDATA)
	if !ok {
		t.Fatalf("value is %T, want CDATA", nodes[0].Value)
	}
	if string(cdata) != "<p>hi</p>" {
		t.Errorf("CDATA = %q, want raw markup", cdata)
	}
}

func TestFieldWriter_WriteHTMLField_SkipsEmpty(t *testing.T) {
	w := NewFieldWriter()
	w.WriteHTMLField("description", "   ", nil)
	if len(w.Nodes()) != 0 {
		t.Errorf("expected blank HTML field to be elided, got %+v", w.Nodes())
	}
}

func TestFieldWriter_PreservesWriteOrder(t *testing.T) {
	w := NewFieldWriter()
	w.WriteField("title", "a", nil)
	w.WriteField("link", "b", nil)
	w.WriteField("language", "c", nil)

	names := []string{}
	for _, node := range w.Nodes() {
		names = append(names, node.Name)
	}
	want := []string{"title", "link", "language"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}
