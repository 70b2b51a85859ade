// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

// Attr is a named attribute of a wire node.
type Attr struct {
	Name  string
	Value string
}

// Node is the wire value: an opaque structured document (a tree of
// named nodes with attributes) exchanged with an invoker. The core
// never interprets it; only encoders and decoders give it meaning.
// Treated as immutable once produced.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

// El constructs a wire node with the given name and attributes.
func El(name string, attrs ...Attr) Node {
	return Node{Name: name, Attrs: attrs}
}

// With returns a copy of n with children appended.
func (n Node) With(children ...Node) Node {
	next := make([]Node, 0, len(n.Children)+len(children))
	next = append(next, n.Children...)
	next = append(next, children...)
	n.Children = next
	return n
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child with the given name.
func (n Node) Child(name string) (Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return Node{}, false
}

// Equal reports structural equality: same name, same attributes in
// order, same children in order.
func (n Node) Equal(o Node) bool {
	if n.Name != o.Name || len(n.Attrs) != len(o.Attrs) || len(n.Children) != len(o.Children) {
		return false
	}
	for i, a := range n.Attrs {
		if o.Attrs[i] != a {
			return false
		}
	}
	for i, c := range n.Children {
		if !c.Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
