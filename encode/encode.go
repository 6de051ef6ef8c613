package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/otype-schema/ir"
)

// Encode writes node to w in the configured format, followed by a
// newline. Object field order is preserved in both formats.
func Encode(w io.Writer, node *ir.Node, opts ...EncodeOption) error {
	o := &encodeOpts{format: JSONFormat, indent: "  "}
	for _, opt := range opts {
		opt(o)
	}
	switch o.format {
	case YAMLFormat:
		d, err := yaml.Marshal(toYAML(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		var sb strings.Builder
		encodeJSON(&sb, node, o, 0)
		sb.WriteByte('\n')
		_, err := io.WriteString(w, sb.String())
		return err
	}
}

// MustString renders node as JSON without color, for diffs and tests.
func MustString(node *ir.Node) string {
	var sb strings.Builder
	encodeJSON(&sb, node, &encodeOpts{indent: "  "}, 0)
	sb.WriteByte('\n')
	return sb.String()
}

func encodeJSON(sb *strings.Builder, node *ir.Node, o *encodeOpts, depth int) {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		for i := range node.Fields {
			writeIndent(sb, o, depth+1)
			sb.WriteString(o.colors.field(strconv.Quote(node.Fields[i].String)))
			sb.WriteString(o.colors.sep(": "))
			encodeJSON(sb, node.Values[i], o, depth+1)
			if i < len(node.Fields)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		writeIndent(sb, o, depth)
		sb.WriteByte('}')
	case ir.ArrayType:
		if len(node.Values) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, elt := range node.Values {
			writeIndent(sb, o, depth+1)
			encodeJSON(sb, elt, o, depth+1)
			if i < len(node.Values)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		writeIndent(sb, o, depth)
		sb.WriteByte(']')
	case ir.StringType:
		sb.WriteString(o.colors.value(node.Type, strconv.Quote(node.String)))
	case ir.NumberType:
		sb.WriteString(o.colors.value(node.Type, numberString(node)))
	case ir.BoolType:
		sb.WriteString(o.colors.value(node.Type, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		sb.WriteString(o.colors.value(node.Type, "null"))
	default:
		panic(fmt.Sprintf("encode: unhandled type %s", node.Type))
	}
}

func writeIndent(sb *strings.Builder, o *encodeOpts, depth int) {
	for range depth {
		sb.WriteString(o.indent)
	}
}

func numberString(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
}

// toYAML converts to goccy ordered maps so YAML output keeps field order.
func toYAML(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for i := range node.Fields {
			res = append(res, yaml.MapItem{
				Key:   node.Fields[i].String,
				Value: toYAML(node.Values[i]),
			})
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = toYAML(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		return *node.Float64
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic(fmt.Sprintf("encode: unhandled type %s", node.Type))
	}
}
