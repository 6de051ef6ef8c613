package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/otype-schema/encode"
	"github.com/signadot/otype-schema/infer"
	"github.com/signadot/otype-schema/ir"
	"github.com/signadot/otype-schema/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/fatih/color"

	"github.com/scott-cotton/cli"
)

func runInfer(cfg *InferConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Infer.Parse(cc, args)
	if err != nil {
		return err
	}
	var filter *vm.Program
	if cfg.Filter != "" {
		filter, err = expr.Compile(cfg.Filter, expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -filter expression: %w", cli.ErrUsage, err)
		}
	}
	var patch []byte
	if cfg.Patch != "" {
		patch, err = os.ReadFile(cfg.Patch)
		if err != nil {
			return fmt.Errorf("error reading -patch file: %w", err)
		}
		if !json.Valid(patch) {
			return fmt.Errorf("%w: -patch file %q is not json", cli.ErrUsage, cfg.Patch)
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	inf := infer.New()
	for _, path := range args {
		doc, err := getRecordFile(cc, path, cfg.inFormat())
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		doc, err = preprocess(doc, filter, patch)
		if err != nil {
			return fmt.Errorf("error preprocessing %s: %w", path, err)
		}
		if doc == nil {
			continue
		}
		if err := inf.AddDocument(doc); err != nil {
			return fmt.Errorf("error inferring %s: %w", path, err)
		}
	}
	if !cfg.Quiet {
		for _, warn := range inf.Warnings() {
			fmt.Fprintf(os.Stderr, "%s %s\n", color.YellowString("warning:"), warn)
		}
	}
	return encode.Encode(cc.Out, inf.Schema(), cfg.encOpts(cc.Out)...)
}

// preprocess applies -filter and -patch to a document.  A top level
// array is treated as a corpus of records, each filtered and patched
// individually.  The result is nil when the filter keeps nothing.
func preprocess(doc *ir.Node, filter *vm.Program, patch []byte) (*ir.Node, error) {
	if filter == nil && patch == nil {
		return doc, nil
	}
	if doc.Type != ir.ArrayType {
		return preprocessRecord(doc, filter, patch)
	}
	res := &ir.Node{Type: ir.ArrayType}
	for _, rec := range doc.Values {
		rec, err := preprocessRecord(rec, filter, patch)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue
		}
		rec.Parent = res
		rec.ParentIndex = len(res.Values)
		res.Values = append(res.Values, rec)
	}
	if len(res.Values) == 0 {
		return nil, nil
	}
	return res, nil
}

func preprocessRecord(rec *ir.Node, filter *vm.Program, patch []byte) (*ir.Node, error) {
	if filter != nil {
		env, _ := ir.ToAny(rec).(map[string]any)
		if env == nil {
			env = map[string]any{}
		}
		keep, err := expr.Run(filter, env)
		if err != nil {
			return nil, fmt.Errorf("error evaluating filter at %s: %w", rec.Path(), err)
		}
		if !keep.(bool) {
			return nil, nil
		}
	}
	if patch == nil {
		return rec, nil
	}
	d, err := json.Marshal(ir.ToAny(rec))
	if err != nil {
		return nil, err
	}
	patched, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("error applying patch at %s: %w", rec.Path(), err)
	}
	return parse.Parse(patched)
}
