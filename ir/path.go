package ir

import (
	"strconv"
	"strings"
)

func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

func (y *Node) Root() *Node {
	for y.Parent != nil {
		y = y.Parent
	}
	return y
}
