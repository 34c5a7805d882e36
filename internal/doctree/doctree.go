package doctree

// Tree is the root of a parsed markup document.
type Tree struct {
	Source string // Source name (filename or "embedded")
	Root   *Node  // Document element; nil for an empty tree
}

// Node is a recursive element in the document tree.
type Node struct {
	Tag      string            // Element name
	Attrs    map[string]string // Attribute values, verbatim
	Text     string            // Character data directly inside this element
	Children []*Node           // Child elements, in document order
}

// Attr returns the named attribute, or "" when it is absent.
func (n *Node) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// ChildrenNamed returns the direct children with the given tag.
func (n *Node) ChildrenNamed(tag string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}
