package schema

import "github.com/signadot/otype-schema/ir"

// IR serializes the registry into the output schema document: one entry
// per (identifier, variant) in registration order, keyed by its assigned
// name, with nested composites expanded to references.
func (r *Registry) IR() *ir.Node {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := &ir.Node{Type: ir.ObjectType}
	for _, key := range r.order {
		out.AppendField(r.names[key], r.entryIR(r.entries[key]))
	}
	return out
}

func (r *Registry) entryIR(n *Node) *ir.Node {
	res := &ir.Node{Type: ir.ObjectType}
	res.AppendField("type", ir.FromString(n.Kind.String()))
	res.AppendField("otype", ir.FromString(n.Identifier))
	res.AppendField("snippet", ir.FromBool(n.Variant))
	if n.Optional {
		res.AppendField("nullable", ir.FromBool(true))
	}
	if n.NumAttrs() == 0 {
		return res
	}
	attrs := &ir.Node{Type: ir.ObjectType}
	for _, key := range n.AttrKeys() {
		attrs.AppendField(key, r.attrIR(n.Attr(key)))
	}
	res.AppendField("attributes", attrs)
	return res
}

func (r *Registry) attrIR(n *Node) *ir.Node {
	res := &ir.Node{Type: ir.ObjectType}
	switch n.Kind {
	case ObjectKind:
		name := n.Ref
		if name == "" {
			name, _ = r.refLocked(n.Identifier)
		}
		if name != "" {
			res.AppendField("ref", ir.FromString(name))
			break
		}
		// untagged composite, attached inline
		res.AppendField("type", ir.FromString(n.Kind.String()))
		if n.Optional {
			res.AppendField("nullable", ir.FromBool(true))
		}
		if n.NumAttrs() != 0 {
			attrs := &ir.Node{Type: ir.ObjectType}
			for _, key := range n.AttrKeys() {
				attrs.AppendField(key, r.attrIR(n.Attr(key)))
			}
			res.AppendField("attributes", attrs)
		}
		return res
	case ArrayKind:
		res.AppendField("type", ir.FromString(n.Kind.String()))
		if n.Optional {
			res.AppendField("nullable", ir.FromBool(true))
		}
		if n.Elem != nil {
			res.AppendField("element", r.attrIR(n.Elem))
		}
		return res
	default:
		res.AppendField("type", ir.FromString(n.Kind.String()))
	}
	if n.Optional {
		res.AppendField("nullable", ir.FromBool(true))
	}
	return res
}

// refLocked is Ref without locking, for use under the serializer's read
// lock.
func (r *Registry) refLocked(identifier string) (string, bool) {
	for _, variant := range []bool{false, true} {
		if name, ok := r.names[typeKey{identifier: identifier, variant: variant}]; ok {
			return name, true
		}
	}
	return "", false
}
