package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/objpatch/ir"
	"github.com/signadot/objpatch/irdiff"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a patch argument", cli.ErrUsage)
	}
	m, err := getish(cfg.String, cc, args[0], cfg.inFormat())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	dw := &docWriter{w: cc.Out, f: cfg.outFormat(cc.Out)}
	err = eachDoc(cc, args[1:], cfg.inFormat(), func(_ string, _ int, doc *ir.Node) error {
		if !irdiff.Match(doc, m) {
			return nil
		}
		if cfg.Trim {
			doc = irdiff.Trim(m, doc)
		}
		return dw.write(doc)
	})
	if err != nil {
		return err
	}
	if dw.count == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
