package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/otype-schema/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, ok := encode.ParseFormat(v)
		if !ok {
			return nil, fmt.Errorf("%w: unknown format %q", cli.ErrUsage, v)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() encode.Format {
	var fmat encode.Format
	switch {
	case cfg.Y:
		fmat = encode.YAMLFormat
	case cfg.J:
		fmat = encode.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat encode.Format
	switch {
	case cfg.Y:
		fmat = encode.YAMLFormat
	case cfg.J:
		fmat = encode.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if fmat != encode.JSONFormat {
		return res
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorSet reports whether -color was given explicitly, in either
// polarity.
func (cfg *MainConfig) colorSet() bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.colorSet() {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type InferConfig struct {
	*MainConfig

	Filter string `cli:"name=filter desc='expression selecting which records to keep'"`
	Patch  string `cli:"name=patch desc='file containing a JSON merge patch applied to each record'"`
	Quiet  bool   `cli:"name=q aliases=quiet desc='suppress merge warnings'"`

	Infer *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
