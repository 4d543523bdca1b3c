package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/objpatch/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a node path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	dw := &docWriter{w: cc.Out, f: cfg.outFormat(cc.Out)}
	return eachDoc(cc, args[1:], cfg.inFormat(), func(file string, i int, n *ir.Node) error {
		sub, err := n.GetPath(path)
		if err != nil {
			theLog.Warn("path not found", "file", file, "doc", i, "path", path)
			return nil
		}
		return dw.write(sub)
	})
}
