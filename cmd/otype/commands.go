package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "otype").
		WithSynopsis("otype [opts] command [opts]").
		WithDescription("otype is a tool for inferring record schemas from tagged objects.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return otypeMain(cfg, cc, args)
		}).
		WithSubs(
			InferCommand(cfg),
			DiffCommand(cfg))
}

func InferCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InferConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("infer").
		WithAliases("i", "in").
		WithSynopsis("infer [opts] [files]").
		WithDescription("infer a schema from files of tagged records").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runInfer(cfg, cc, args)
		})
	cfg.Infer = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff the schemas inferred from two record files").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
