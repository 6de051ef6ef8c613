package schema

import (
	"github.com/signadot/otype-schema/debug"
	"github.com/signadot/otype-schema/ir"
)

// identity attributes must agree in literal value across any merge.
func isIdentityAttr(key string) bool {
	return key == "otype" || key == "snippet"
}

type mergeConfig struct {
	warnf func(format string, args ...any)
}

type MergeOpt func(*mergeConfig)

// WarnFunc supplies the sink for identifier/variant mismatch diagnostics,
// the one merge conflict that is tolerated rather than fatal.
func WarnFunc(f func(format string, args ...any)) MergeOpt {
	return func(cfg *mergeConfig) {
		cfg.warnf = f
	}
}

// Merge reconciles two observations of a value into one node. It mutates
// and returns one operand; the other must not be used afterwards. On
// conflict the returned error is a *TypeMismatchError or
// *ValueMismatchError carrying the attribute path accumulated so far.
func Merge(a, b *Node, opts ...MergeOpt) (*Node, error) {
	cfg := &mergeConfig{warnf: func(format string, args ...any) {
		if debug.Merge() {
			debug.Logf(format, args...)
		}
	}}
	for _, opt := range opts {
		opt(cfg)
	}
	return merge(a, b, cfg)
}

func merge(a, b *Node, cfg *mergeConfig) (*Node, error) {
	// a null observation carries no type, only optionality
	if a.IsUnknown() {
		b.Optional = true
		return b, nil
	}
	if b.IsUnknown() {
		a.Optional = true
		return a, nil
	}
	switch {
	case a.Kind == ObjectKind && b.Kind == ObjectKind:
		return mergeComposite(a, b, cfg)
	case a.Kind == ArrayKind && b.Kind == ArrayKind:
		return mergeList(a, b, cfg)
	case a.Kind.IsScalar() && b.Kind.IsScalar():
		return mergeScalar(a, b)
	default:
		return nil, &TypeMismatchError{Left: a.Kind, Right: b.Kind}
	}
}

func mergeScalar(a, b *Node) (*Node, error) {
	if (isIdentityAttr(a.AttrName) || isIdentityAttr(b.AttrName)) &&
		a.Literal != nil && b.Literal != nil {
		if ir.Compare(a.Literal, b.Literal) != 0 {
			return nil, &ValueMismatchError{
				Attr:  a.AttrName,
				Left:  a.Literal,
				Right: b.Literal,
			}
		}
	}
	if a.Kind != b.Kind {
		return nil, &TypeMismatchError{Left: a.Kind, Right: b.Kind}
	}
	a.Optional = a.Optional || b.Optional
	return a, nil
}

func mergeComposite(a, b *Node, cfg *mergeConfig) (*Node, error) {
	a.Optional = a.Optional || b.Optional
	if a.Identifier != b.Identifier || a.Variant != b.Variant {
		cfg.warnf("merging types with different otype or snippet: %q/%v vs %q/%v",
			a.Identifier, a.Variant, b.Identifier, b.Variant)
	}
	// attributes seen before but absent now become optional
	for _, key := range a.AttrKeys() {
		if b.Attr(key) == nil {
			a.Attr(key).Optional = true
		}
	}
	for _, key := range b.AttrKeys() {
		bAttr := b.Attr(key)
		aAttr := a.Attr(key)
		if aAttr == nil {
			bAttr.Optional = true
			a.SetAttr(key, bAttr)
			continue
		}
		m, err := merge(aAttr, bAttr, cfg)
		if err != nil {
			return nil, AnnotatePath(err, key)
		}
		a.SetAttr(key, m)
	}
	return a, nil
}

// mergeList always ORs optionality; element types are unified recursively
// when both sides carry one, and adopted from the other side when the
// receiver's is absent (the empty-array case).
func mergeList(a, b *Node, cfg *mergeConfig) (*Node, error) {
	a.Optional = a.Optional || b.Optional
	if a.Elem == nil {
		a.Elem = b.Elem
		return a, nil
	}
	if b.Elem == nil {
		return a, nil
	}
	m, err := merge(a.Elem, b.Elem, cfg)
	if err != nil {
		return nil, AnnotatePath(err, "[]")
	}
	a.Elem = m
	return a, nil
}
