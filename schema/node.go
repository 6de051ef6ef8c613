// Package schema implements the type-unification core: the schema node
// model, the recursive merge over observations, the registry that
// deduplicates composite types by (identifier, variant), and the
// serializer emitting the reference-based schema document.
package schema

import (
	"slices"

	"github.com/signadot/otype-schema/ir"
)

// Node is one schema descriptor: the Kind field selects which payload
// fields are meaningful, forming a closed tagged union over scalar,
// composite and list descriptors.
type Node struct {
	Kind     Kind
	Optional bool

	// scalar payload. Literal is retained only so identity attributes
	// can be compared for equality across merges; AttrName is the key
	// the value was found under, for diagnostics.
	AttrName string
	Literal  *ir.Node

	// composite payload. Ref, once set, marks this node as a reference
	// to the registry entry of that name; attrs is empty from then on.
	Identifier string
	Variant    bool
	Ref        string
	attrs      map[string]*Node
	order      []string

	// list payload. Elem is nil only for an empty array.
	Elem *Node
}

func NewScalar(kind Kind, attrName string, literal *ir.Node) *Node {
	return &Node{
		Kind:     kind,
		Optional: kind == UnknownKind,
		AttrName: attrName,
		Literal:  literal,
	}
}

func NewComposite(identifier string, variant bool) *Node {
	return &Node{
		Kind:       ObjectKind,
		Identifier: identifier,
		Variant:    variant,
	}
}

func NewList(elem *Node) *Node {
	return &Node{Kind: ArrayKind, Elem: elem}
}

// NewReference constructs the lightweight marker that stands in for a
// registered composite at its occurrence site.
func NewReference(name string, from *Node) *Node {
	return &Node{
		Kind:       ObjectKind,
		Optional:   from.Optional,
		Identifier: from.Identifier,
		Variant:    from.Variant,
		Ref:        name,
	}
}

func (n *Node) IsUnknown() bool {
	return n.Kind == UnknownKind
}

// SetAttr sets an attribute, preserving first-insertion order.
func (n *Node) SetAttr(key string, attr *Node) {
	if n.attrs == nil {
		n.attrs = map[string]*Node{}
	}
	if _, ok := n.attrs[key]; !ok {
		n.order = append(n.order, key)
	}
	n.attrs[key] = attr
}

// Attr returns the attribute at key, or nil.
func (n *Node) Attr(key string) *Node {
	return n.attrs[key]
}

// AttrKeys returns the attribute keys in insertion order.
func (n *Node) AttrKeys() []string {
	return slices.Clone(n.order)
}

func (n *Node) NumAttrs() int {
	return len(n.order)
}

func (n *Node) Clone() *Node {
	res := &Node{
		Kind:       n.Kind,
		Optional:   n.Optional,
		AttrName:   n.AttrName,
		Identifier: n.Identifier,
		Variant:    n.Variant,
		Ref:        n.Ref,
	}
	if n.Literal != nil {
		res.Literal = n.Literal.Clone()
	}
	for _, key := range n.order {
		res.SetAttr(key, n.attrs[key].Clone())
	}
	if n.Elem != nil {
		res.Elem = n.Elem.Clone()
	}
	return res
}

// Equal reports structural equality, ignoring attribute insertion order
// and diagnostic attribute names.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind || n.Optional != o.Optional {
		return false
	}
	switch n.Kind {
	case ObjectKind:
		if n.Identifier != o.Identifier || n.Variant != o.Variant || n.Ref != o.Ref {
			return false
		}
		if len(n.order) != len(o.order) {
			return false
		}
		for key, attr := range n.attrs {
			oAttr, ok := o.attrs[key]
			if !ok || !attr.Equal(oAttr) {
				return false
			}
		}
		return true
	case ArrayKind:
		return n.Elem.Equal(o.Elem)
	default:
		return ir.Compare(n.Literal, o.Literal) == 0
	}
}
