package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/objpatch/ir"
)

func sortDocs(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		cfg.Sort.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	dw := &docWriter{w: cc.Out, f: cfg.outFormat(cc.Out)}
	unsorted := 0
	err = eachDoc(cc, args, cfg.inFormat(), func(file string, i int, n *ir.Node) error {
		if cfg.Check {
			if !ir.IsSorted(n) {
				theLog.Warn("unsorted", "file", file, "doc", i)
				unsorted++
			}
			return nil
		}
		ir.Sort(n)
		return dw.write(n)
	})
	if err != nil {
		return err
	}
	if unsorted > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
