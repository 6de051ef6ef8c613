// Package ir provides the value-tree intermediate representation for
// parsed record documents.
//
// A Node is a recursive tagged union: the Type field selects which of the
// payload fields are meaningful. Objects are represented with parallel
// Fields/Values slices so that field order, and duplicate keys, survive
// parsing; the inference layer decides how duplicates are reconciled.
package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromSlice(elts []*Node) *Node {
	res := &Node{Type: ArrayType, Values: elts}
	for i, elt := range elts {
		elt.Parent = res
		elt.ParentIndex = i
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for _, kv := range kvs {
		res.AppendField(kv.Key.String, kv.Val)
	}
	return res
}

// AppendField appends a field without checking for duplicate keys.
func (y *Node) AppendField(key string, val *Node) *Node {
	keyNode := FromString(key)
	keyNode.Parent = y
	keyNode.ParentIndex = len(y.Fields)
	val.Parent = y
	val.ParentIndex = len(y.Values)
	val.ParentField = key
	y.Fields = append(y.Fields, keyNode)
	y.Values = append(y.Values, val)
	return y
}

// Field returns the value of the first field named key, or nil.
func (y *Node) Field(key string) *Node {
	for i, f := range y.Fields {
		if f.String == key {
			return y.Values[i]
		}
	}
	return nil
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.AppendField(key, yMap[key])
	}
	return res
}
