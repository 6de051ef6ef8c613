package schema

import (
	"errors"
	"testing"

	"github.com/signadot/otype-schema/ir"
)

func person(attrs map[string]*Node) *Node {
	res := NewComposite("person", false)
	res.SetAttr("otype", NewScalar(StringKind, "otype", ir.FromString("person")))
	for key, attr := range attrs {
		res.SetAttr(key, attr)
	}
	return res
}

func TestMergeScalars(t *testing.T) {
	a := NewScalar(StringKind, "name", ir.FromString("amy"))
	b := NewScalar(StringKind, "name", ir.FromString("bob"))
	m, err := Merge(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if m.Kind != StringKind || m.Optional {
		t.Errorf("got %s optional=%v, want required string", m.Kind, m.Optional)
	}
}

func TestMergeScalarKindMismatch(t *testing.T) {
	a := NewScalar(IntKind, "age", ir.FromInt(3))
	b := NewScalar(StringKind, "age", ir.FromString("three"))
	_, err := Merge(a, b)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want type mismatch", err)
	}
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatal("not a *TypeMismatchError")
	}
	if tm.Left != IntKind || tm.Right != StringKind {
		t.Errorf("got %s vs %s", tm.Left, tm.Right)
	}
}

func TestMergeIntFloatDistinct(t *testing.T) {
	a := NewScalar(IntKind, "n", ir.FromInt(1))
	b := NewScalar(FloatKind, "n", ir.FromFloat(1.5))
	if _, err := Merge(a, b); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want type mismatch", err)
	}
}

func TestMergeUnknownAbsorbed(t *testing.T) {
	a := NewScalar(UnknownKind, "x", nil)
	b := NewScalar(IntKind, "x", ir.FromInt(7))
	m, err := Merge(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if m.Kind != IntKind {
		t.Errorf("got %s, want int", m.Kind)
	}
	if !m.Optional {
		t.Errorf("null sighting did not make the attribute optional")
	}
	// and the mirrored direction
	a = NewScalar(BoolKind, "x", ir.FromBool(true))
	b = NewScalar(UnknownKind, "x", nil)
	m, err = Merge(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if m.Kind != BoolKind || !m.Optional {
		t.Errorf("got %s optional=%v, want optional bool", m.Kind, m.Optional)
	}
}

func TestMergeIdentityValueMismatch(t *testing.T) {
	a := person(nil)
	b := NewComposite("robot", false)
	b.SetAttr("otype", NewScalar(StringKind, "otype", ir.FromString("robot")))
	_, err := Merge(a, b)
	if !errors.Is(err, ErrValueMismatch) {
		t.Fatalf("got %v, want value mismatch", err)
	}
	var vm *ValueMismatchError
	if !errors.As(err, &vm) {
		t.Fatal("not a *ValueMismatchError")
	}
	if vm.Path != "otype" {
		t.Errorf("got path %q, want otype", vm.Path)
	}
}

func TestMergeIdentityFromEitherSide(t *testing.T) {
	// one operand built without attribute-name context still triggers
	// the identity literal check when the other carries it
	a := NewScalar(StringKind, "", ir.FromString("person"))
	b := NewScalar(StringKind, "otype", ir.FromString("robot"))
	if _, err := Merge(a, b); !errors.Is(err, ErrValueMismatch) {
		t.Fatalf("got %v, want value mismatch", err)
	}
	a = NewScalar(BoolKind, "snippet", ir.FromBool(true))
	b = NewScalar(BoolKind, "", ir.FromBool(false))
	if _, err := Merge(a, b); !errors.Is(err, ErrValueMismatch) {
		t.Fatalf("got %v, want value mismatch", err)
	}
}

func TestMergeCompositeOptionality(t *testing.T) {
	a := person(map[string]*Node{
		"name": NewScalar(StringKind, "name", ir.FromString("amy")),
		"age":  NewScalar(IntKind, "age", ir.FromInt(31)),
	})
	b := person(map[string]*Node{
		"name": NewScalar(StringKind, "name", ir.FromString("bob")),
		"mail": NewScalar(StringKind, "mail", ir.FromString("bob@x.io")),
	})
	m, err := Merge(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if m.Attr("name").Optional {
		t.Errorf("name is optional, seen in both")
	}
	if !m.Attr("age").Optional {
		t.Errorf("age is required, absent in b")
	}
	if !m.Attr("mail").Optional {
		t.Errorf("mail is required, absent in a")
	}
}

func TestMergeNestedPath(t *testing.T) {
	mk := func(zip *Node) *Node {
		addr := &Node{Kind: ObjectKind}
		addr.SetAttr("zip", zip)
		return person(map[string]*Node{"addr": addr})
	}
	a := mk(NewScalar(IntKind, "zip", ir.FromInt(12345)))
	b := mk(NewScalar(StringKind, "zip", ir.FromString("12345")))
	_, err := Merge(a, b)
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("got %v, want type mismatch", err)
	}
	if tm.Path != "addr.zip" {
		t.Errorf("got path %q, want addr.zip", tm.Path)
	}
}

func TestMergeListElem(t *testing.T) {
	a := NewList(NewScalar(IntKind, "", ir.FromInt(1)))
	b := NewList(nil)
	m, err := Merge(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if m.Elem == nil || m.Elem.Kind != IntKind {
		t.Fatalf("empty list erased the element type")
	}

	// both sides known: unified recursively
	a = NewList(NewScalar(UnknownKind, "", nil))
	b = NewList(NewScalar(StringKind, "", ir.FromString("s")))
	m, err = Merge(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if m.Elem.Kind != StringKind || !m.Elem.Optional {
		t.Errorf("got %s optional=%v, want optional string", m.Elem.Kind, m.Elem.Optional)
	}

	// conflicting element types carry the [] path segment
	a = NewList(NewScalar(IntKind, "", ir.FromInt(1)))
	b = NewList(NewScalar(BoolKind, "", ir.FromBool(true)))
	_, err = Merge(a, b)
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("got %v, want type mismatch", err)
	}
	if tm.Path != "[]" {
		t.Errorf("got path %q, want []", tm.Path)
	}
}

func TestMergeIdempotent(t *testing.T) {
	a := person(map[string]*Node{
		"name": NewScalar(StringKind, "name", ir.FromString("amy")),
		"tags": NewList(NewScalar(StringKind, "", ir.FromString("x"))),
	})
	m, err := Merge(a.Clone(), a.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if !m.Equal(a) {
		t.Errorf("merge of a type with itself changed it")
	}
}

func TestMergeWarnFunc(t *testing.T) {
	var warned []string
	a := person(nil)
	b := NewComposite("person", true)
	b.SetAttr("otype", NewScalar(StringKind, "otype", ir.FromString("person")))
	_, err := Merge(a, b, WarnFunc(func(format string, args ...any) {
		warned = append(warned, format)
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(warned) != 1 {
		t.Errorf("got %d warnings, want 1", len(warned))
	}
}
