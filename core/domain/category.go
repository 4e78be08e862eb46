// ABOUTME: Category tree node for the podcast taxonomy
// ABOUTME: A label plus ordered children, rendered recursively at any depth

package domain

import (
	"strings"

	"podcast-feed-api/core/render"
)

// Category is one node in the podcast category tree: a text label and
// an ordered list of child categories. The feed profile only ever
// nests two levels (main plus subcategories), but the node shape and
// its rendering are depth-agnostic.
type Category struct {
	Name     string
	Children []Category
}

// NewCategory builds a category from a main label and its subcategory
// labels. Blank subcategory labels are dropped; the relative order of
// the rest is preserved.
func NewCategory(name string, subcategories ...string) Category {
	category := Category{Name: strings.TrimSpace(name)}
	for _, sub := range subcategories {
		trimmed := strings.TrimSpace(sub)
		if trimmed == "" {
			continue
		}
		category.Children = append(category.Children, Category{Name: trimmed})
	}
	return category
}

// node renders the category subtree into the shared structural shape:
// the label as a text attribute and children as nested category nodes.
func (c Category) node() render.Node {
	n := render.Node{
		Name: render.Name(render.NSITunes, "category"),
		Attr: map[string]string{"text": strings.TrimSpace(c.Name)},
	}
	if len(c.Children) > 0 {
		children := make([]render.Node, 0, len(c.Children))
		for _, child := range c.Children {
			children = append(children, child.node())
		}
		n.Value = children
	}
	return n
}
