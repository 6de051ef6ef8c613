package infer

import (
	"regexp"

	"github.com/signadot/otype-schema/ir"
	"github.com/signadot/otype-schema/schema"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// classifyLeaf classifies a scalar leaf into a schema descriptor. The
// literal value is retained for identity-attribute equality checks; key
// is the attribute name the leaf was found under, for diagnostics.
func classifyLeaf(v *ir.Node, key string) *schema.Node {
	switch v.Type {
	case ir.StringType:
		if datePattern.MatchString(v.String) {
			return schema.NewScalar(schema.DateKind, key, v)
		}
		return schema.NewScalar(schema.StringKind, key, v)
	case ir.NumberType:
		if v.Int64 != nil {
			return schema.NewScalar(schema.IntKind, key, v)
		}
		return schema.NewScalar(schema.FloatKind, key, v)
	case ir.BoolType:
		return schema.NewScalar(schema.BoolKind, key, v)
	case ir.NullType:
		return schema.NewScalar(schema.UnknownKind, key, nil)
	default:
		panic("classifyLeaf on non-leaf node")
	}
}
