package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: FromString("name"), Val: FromString("amy")},
		{Key: FromString("age"), Val: FromInt(31)},
		{Key: FromString("score"), Val: FromFloat(0.5)},
		{Key: FromString("tags"), Val: FromSlice([]*Node{FromString("a"), Null()})},
		{Key: FromString("ok"), Val: FromBool(true)},
	})
	want := map[string]any{
		"name":  "amy",
		"age":   31,
		"score": 0.5,
		"tags":  []any{"a", nil},
		"ok":    true,
	}
	if d := cmp.Diff(want, ToAny(node)); d != "" {
		t.Errorf("unexpected ToAny result (-want +got):\n%s", d)
	}
}

func TestFromAnyRound(t *testing.T) {
	v := map[string]any{
		"b": []any{1, 2.5, "three", nil, true},
		"a": map[string]any{"nested": "yes"},
	}
	node, err := FromAny(v)
	if err != nil {
		t.Fatal(err)
	}
	// keys come out sorted
	if node.Fields[0].String != "a" || node.Fields[1].String != "b" {
		t.Errorf("keys not sorted: %q, %q", node.Fields[0].String, node.Fields[1].String)
	}
	if d := cmp.Diff(v, ToAny(node)); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestFromAnyFloatStaysFloat(t *testing.T) {
	node, err := FromAny(30.0)
	if err != nil {
		t.Fatal(err)
	}
	if node.Float64 == nil {
		t.Errorf("30.0 did not stay a float")
	}
}

func TestFromAnyErr(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Errorf("no error converting a struct")
	}
}
