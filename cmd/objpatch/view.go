package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/objpatch/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	dw := &docWriter{w: cc.Out, f: cfg.outFormat(cc.Out)}
	return eachDoc(cc, args, cfg.inFormat(), func(_ string, _ int, n *ir.Node) error {
		if cfg.Sort {
			ir.Sort(n)
		}
		return dw.write(n)
	})
}
