package schema

import (
	"errors"
	"testing"

	"github.com/signadot/otype-schema/ir"
)

func TestRegistryDedup(t *testing.T) {
	reg := NewRegistry()
	a := person(map[string]*Node{
		"name": NewScalar(StringKind, "name", ir.FromString("amy")),
	})
	b := person(map[string]*Node{
		"age": NewScalar(IntKind, "age", ir.FromInt(31)),
	})
	if err := reg.RegisterType("person", false, a); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterType("person", false, b); err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 1 {
		t.Fatalf("got %d entries, want 1", reg.Len())
	}
	cur, ok := reg.Type("person", false)
	if !ok {
		t.Fatal("no entry for person")
	}
	if cur.Attr("name") == nil || cur.Attr("age") == nil {
		t.Errorf("sightings were not unified")
	}
	if !cur.Attr("name").Optional || !cur.Attr("age").Optional {
		t.Errorf("attributes seen in only one sighting must be optional")
	}
}

func TestRegistrySnippetNames(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterType("person", true, person(nil)); err != nil {
		t.Fatal(err)
	}
	name, ok := reg.Name("person", true)
	if !ok || name != "person_snippet" {
		t.Errorf("got %q, want person_snippet", name)
	}

	// snippet and full types are distinct entries
	if err := reg.RegisterType("person", false, person(nil)); err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 2 {
		t.Fatalf("got %d entries, want 2", reg.Len())
	}
}

func TestRegistryRefPrefersFull(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterType("person", true, person(nil)); err != nil {
		t.Fatal(err)
	}
	name, ok := reg.Ref("person")
	if !ok || name != "person_snippet" {
		t.Errorf("got %q, want person_snippet", name)
	}
	if err := reg.RegisterType("person", false, person(nil)); err != nil {
		t.Fatal(err)
	}
	name, ok = reg.Ref("person")
	if !ok || name != "person" {
		t.Errorf("got %q, want person", name)
	}
	if _, ok := reg.Ref("robot"); ok {
		t.Errorf("resolved a never-registered identifier")
	}
}

func TestRegistryConflict(t *testing.T) {
	reg := NewRegistry()
	a := person(map[string]*Node{
		"age": NewScalar(IntKind, "age", ir.FromInt(31)),
	})
	b := person(map[string]*Node{
		"age": NewScalar(StringKind, "age", ir.FromString("old")),
	})
	if err := reg.RegisterType("person", false, a); err != nil {
		t.Fatal(err)
	}
	err := reg.RegisterType("person", false, b)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want type mismatch", err)
	}
}
