// Package infer ingests parsed record documents and unifies their tagged
// composite values into a schema registry.
//
// An Inferencer owns one unification run: classification of leaf values,
// bottom-up construction of schema descriptors, registration of tagged
// composites, and substitution of registry references at occurrence
// sites. Use one Inferencer per corpus; the zero value is not usable.
package infer

import (
	"fmt"

	"github.com/signadot/otype-schema/debug"
	"github.com/signadot/otype-schema/ir"
	"github.com/signadot/otype-schema/parse"
	"github.com/signadot/otype-schema/schema"
)

type Inferencer struct {
	reg      *schema.Registry
	warnings []string
}

func New() *Inferencer {
	return &Inferencer{reg: schema.NewRegistry()}
}

// Registry exposes the run's registry, canonical owner of all entries.
func (inf *Inferencer) Registry() *schema.Registry {
	return inf.reg
}

// Warnings returns the cross-tag merge diagnostics collected so far.
func (inf *Inferencer) Warnings() []string {
	return inf.warnings
}

// Schema serializes the registry into the output schema document.
func (inf *Inferencer) Schema() *ir.Node {
	return inf.reg.IR()
}

// AddSource parses one JSON document and ingests it.
func (inf *Inferencer) AddSource(d []byte) error {
	doc, err := parse.Parse(d)
	if err != nil {
		return err
	}
	return inf.AddDocument(doc)
}

// AddDocument ingests one parsed document: a record object, or an array
// of records. Untagged top-level scalars are classified and discarded.
func (inf *Inferencer) AddDocument(doc *ir.Node) error {
	if doc == nil {
		return nil
	}
	if debug.Infer() {
		debug.Logf("infer: ingesting %s document", doc.Type)
	}
	_, err := inf.build(doc, "")
	return err
}

func (inf *Inferencer) build(v *ir.Node, key string) (*schema.Node, error) {
	switch v.Type {
	case ir.ObjectType:
		return inf.buildComposite(v)
	case ir.ArrayType:
		return inf.buildList(v)
	default:
		return classifyLeaf(v, key), nil
	}
}

// buildComposite constructs a composite descriptor from an object
// literal, pre-merging duplicate keys, extracting the otype/snippet
// identity attributes, and registering the node when it is tagged.
func (inf *Inferencer) buildComposite(v *ir.Node) (*schema.Node, error) {
	var order []string
	attrs := map[string]*schema.Node{}
	for i := range v.Fields {
		key := v.Fields[i].String
		child, err := inf.build(v.Values[i], key)
		if err != nil {
			return nil, err
		}
		child = inf.resolveRef(child)
		cur, ok := attrs[key]
		if !ok {
			order = append(order, key)
			attrs[key] = child
			continue
		}
		merged, err := schema.Merge(cur, child, schema.WarnFunc(inf.warnf))
		if err != nil {
			return nil, schema.AnnotatePath(err, key)
		}
		attrs[key] = merged
	}

	identifier := ""
	if o := attrs["otype"]; o != nil && o.Literal != nil && o.Literal.Type == ir.StringType {
		identifier = o.Literal.String
	}
	variant := false
	if s := attrs["snippet"]; s != nil {
		if s.Kind != schema.BoolKind || s.Literal == nil {
			return nil, &schema.InvalidVariantError{Value: s.Literal}
		}
		variant = s.Literal.Bool
	}

	node := schema.NewComposite(identifier, variant)
	for _, key := range order {
		node.SetAttr(key, attrs[key])
	}
	if identifier != "" {
		if err := inf.reg.RegisterType(identifier, variant, node, schema.WarnFunc(inf.warnf)); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// buildList constructs a list descriptor from an array literal. All
// elements must share one node kind, and composite elements one
// identifier; elements are checked for compatibility, not unified.
func (inf *Inferencer) buildList(v *ir.Node) (*schema.Node, error) {
	if len(v.Values) == 0 {
		// emptiness does not imply optionality
		return schema.NewList(nil), nil
	}
	first, err := inf.build(v.Values[0], "")
	if err != nil {
		return nil, err
	}
	for _, elt := range v.Values[1:] {
		en, err := inf.build(elt, "")
		if err != nil {
			return nil, err
		}
		if en.Kind != first.Kind {
			return nil, fmt.Errorf("%w: array elements must share one type: %q vs %q",
				schema.ErrTypeMismatch, describe(first), describe(en))
		}
		if first.Kind == schema.ObjectKind && en.Identifier != first.Identifier {
			return nil, fmt.Errorf("%w: array elements must share one type: %q vs %q",
				schema.ErrTypeMismatch, describe(first), describe(en))
		}
	}
	return schema.NewList(first), nil
}

// resolveRef is the reference-resolution pass: a value about to be
// attached under a parent is replaced by a lightweight marker naming its
// registry entry, so the schema never duplicates a named type's body.
// Untagged values pass through inline.
func (inf *Inferencer) resolveRef(n *schema.Node) *schema.Node {
	switch n.Kind {
	case schema.ObjectKind:
		if n.Identifier == "" || n.Ref != "" {
			return n
		}
		name, ok := inf.reg.Ref(n.Identifier)
		if !ok {
			return n
		}
		return schema.NewReference(name, n)
	case schema.ArrayKind:
		elem := n.Elem
		if elem == nil || elem.Kind != schema.ObjectKind || elem.Identifier == "" || elem.Ref != "" {
			return n
		}
		if name, ok := inf.reg.Ref(elem.Identifier); ok {
			n.Elem = schema.NewReference(name, elem)
		}
		return n
	default:
		return n
	}
}

func describe(n *schema.Node) string {
	if n.Kind == schema.ObjectKind && n.Identifier != "" {
		return fmt.Sprintf("object(%s)", n.Identifier)
	}
	return n.Kind.String()
}

func (inf *Inferencer) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	inf.warnings = append(inf.warnings, msg)
	if debug.Infer() {
		debug.Logf("%s", msg)
	}
}
