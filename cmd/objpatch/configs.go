package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/objpatch/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='dump with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat format.Formatter

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...*format.Formatter) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ByName(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = f
		}
		return f.Name(), nil
	})
}

func (cfg *MainConfig) inFormat() format.Formatter {
	if cfg.InFormat != nil {
		return cfg.InFormat
	}
	if cfg.Y {
		return format.YAML()
	}
	return format.JSON()
}

// outFormat returns the output formatter for w. The dump format is colored
// when -color is given, or when it is not set and w is a terminal.
func (cfg *MainConfig) outFormat(w io.Writer) format.Formatter {
	f := cfg.OutFormat
	if f == nil {
		switch {
		case cfg.Y:
			f = format.YAML()
		case cfg.J:
			f = format.JSON()
		default:
			f = format.Text(nil)
		}
	}
	if f.Name() != "dump" {
		return f
	}
	if cfg.colors(w) {
		return format.Text(format.NewColors())
	}
	return format.Text(nil)
}

func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	Sort bool `cli:"name=s desc='sort children before encoding'"`
	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text      bool   `cli:"name=text desc='print a line diff of the dumps'"`
	Loop      string `cli:"name=loop desc='command to produce objects to diff in a loop'"`
	LoopEvery time.Duration
	LoopLim   int `cli:"name=loopLim desc='max number of times to loop'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type PatchConfig struct {
	*MainConfig
	JSONPatch bool `cli:"name=jsonpatch desc='patch is an RFC 6902 json patch'"`
	String    bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
}

type SortConfig struct {
	*MainConfig
	Check bool `cli:"name=check desc='only check whether inputs are sorted'"`

	Sort *cli.Command
}
