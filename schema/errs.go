package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/otype-schema/ir"
)

var (
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrValueMismatch  = errors.New("value mismatch")
	ErrInvalidVariant = errors.New("invalid snippet value")
)

// TypeMismatchError reports two merged nodes of incompatible kinds under
// the same attribute or within the same array literal.
type TypeMismatchError struct {
	Path        string
	Left, Right Kind
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %q vs %q", ErrTypeMismatch, e.Left, e.Right)
	}
	return fmt.Sprintf("%s for attribute %q: %q vs %q", ErrTypeMismatch, e.Path, e.Left, e.Right)
}

// ValueMismatchError reports an identity attribute whose literal value
// disagrees across a merge.
type ValueMismatchError struct {
	Path        string
	Attr        string
	Left, Right *ir.Node
}

func (e *ValueMismatchError) Unwrap() error {
	return ErrValueMismatch
}

func (e *ValueMismatchError) Error() string {
	path := e.Path
	if path == "" {
		path = e.Attr
	}
	return fmt.Sprintf("%s for attribute %q: %s vs %s",
		ErrValueMismatch, path, literalString(e.Left), literalString(e.Right))
}

// InvalidVariantError reports a non-boolean "snippet" attribute.
type InvalidVariantError struct {
	Value *ir.Node
}

func (e *InvalidVariantError) Unwrap() error {
	return ErrInvalidVariant
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidVariant, literalString(e.Value))
}

func literalString(n *ir.Node) string {
	if n == nil {
		return "<none>"
	}
	switch n.Type {
	case ir.StringType:
		return fmt.Sprintf("%q", n.String)
	case ir.BoolType:
		return fmt.Sprintf("%v", n.Bool)
	case ir.NumberType:
		if n.Int64 != nil {
			return fmt.Sprintf("%d", *n.Int64)
		}
		return fmt.Sprintf("%g", *n.Float64)
	case ir.NullType:
		return "null"
	default:
		return n.Type.String()
	}
}

// AnnotatePath prepends an attribute path segment to a mismatch error,
// building the dotted/bracketed path as merge recursion unwinds.
func AnnotatePath(err error, seg string) error {
	switch e := err.(type) {
	case *TypeMismatchError:
		e.Path = joinPath(seg, e.Path)
	case *ValueMismatchError:
		e.Path = joinPath(seg, e.Path)
	}
	return err
}

func joinPath(seg, sub string) string {
	if sub == "" {
		return seg
	}
	if strings.HasPrefix(sub, "[") {
		return seg + sub
	}
	return seg + "." + sub
}
