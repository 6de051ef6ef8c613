package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// ToAny converts a node tree to plain Go values (map[string]any, []any,
// string, int, float64, bool, nil). Duplicate object keys keep the last
// value, matching encoding/json behavior.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		return *node.Float64
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts plain Go values to a node tree. Map keys are sorted so
// the result is deterministic.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return FromFloat(float64(t)), nil
		}
		return FromInt(int64(t)), nil
	case float64:
		return FromFloat(t), nil
	case []any:
		elts := make([]*Node, len(t))
		for i, e := range t {
			elt, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			elts[i] = elt
		}
		return FromSlice(elts), nil
	case map[string]any:
		res := &Node{Type: ObjectType}
		for _, key := range slices.Sorted(maps.Keys(t)) {
			val, err := FromAny(t[key])
			if err != nil {
				return nil, err
			}
			res.AppendField(key, val)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to ir", v)
	}
}
