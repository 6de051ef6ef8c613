package main

import (
	"fmt"
	"strings"

	"github.com/signadot/otype-schema/encode"
	"github.com/signadot/otype-schema/infer"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/scott-cotton/cli"
)

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := schemaText(cfg, cc, args[0])
	if err != nil {
		return err
	}
	b, err := schemaText(cfg, cc, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.useColor(cc.Out) {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		fmt.Fprint(cc.Out, renderPlain(diffs))
	}
	return cli.ExitCodeErr(1)
}

func schemaText(cfg *DiffConfig, cc *cli.Context, path string) (string, error) {
	doc, err := getRecordFile(cc, path, cfg.inFormat())
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", path, err)
	}
	inf := infer.New()
	if err := inf.AddDocument(doc); err != nil {
		return "", fmt.Errorf("error inferring %s: %w", path, err)
	}
	return encode.MustString(inf.Schema()), nil
}

func renderPlain(diffs []diffpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(d.Text)
			sb.WriteString("+}")
		case diffpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(d.Text)
			sb.WriteString("-]")
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
