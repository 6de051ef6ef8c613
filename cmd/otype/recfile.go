package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/otype-schema/encode"
	"github.com/signadot/otype-schema/ir"
	"github.com/signadot/otype-schema/parse"

	"github.com/goccy/go-yaml"

	"github.com/scott-cotton/cli"
)

func getRecordFile(cc *cli.Context, path string, fmat encode.Format) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	if fmat == encode.YAMLFormat {
		return parseYAML(d)
	}
	return parse.Parse(d)
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return yamlToIR(v)
}

// yamlToIR keeps document field order by walking yaml.MapSlice
// rather than a Go map.
func yamlToIR(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case yaml.MapSlice:
		res := &ir.Node{Type: ir.ObjectType}
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprintf("%v", item.Key)
			}
			val, err := yamlToIR(item.Value)
			if err != nil {
				return nil, err
			}
			res.AppendField(key, val)
		}
		return res, nil
	case []any:
		res := &ir.Node{Type: ir.ArrayType}
		for _, elt := range t {
			val, err := yamlToIR(elt)
			if err != nil {
				return nil, err
			}
			val.Parent = res
			val.ParentIndex = len(res.Values)
			res.Values = append(res.Values, val)
		}
		return res, nil
	default:
		return ir.FromAny(v)
	}
}
