package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/objpatch/format"
	"github.com/signadot/objpatch/ir"
	"github.com/signadot/objpatch/irdiff"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	target, err := getObjFile(cc, args[1], cfg.inFormat())
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var res *ir.Node
	if cfg.JSONPatch {
		res, err = jsonPatch(cfg, cc, args[0], target)
	} else {
		res, err = mergePatch(cfg, cc, args[0], target)
	}
	if err != nil {
		return err
	}
	dw := &docWriter{w: cc.Out, f: cfg.outFormat(cc.Out)}
	if err := dw.write(res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func mergePatch(cfg *PatchConfig, cc *cli.Context, arg string, target *ir.Node) (*ir.Node, error) {
	p, err := getish(cfg.String, cc, arg, cfg.inFormat())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return irdiff.Merge(target, p), nil
}

func jsonPatch(cfg *PatchConfig, cc *cli.Context, arg string, target *ir.Node) (*ir.Node, error) {
	d := []byte(arg)
	if !cfg.String {
		var err error
		d, err = readPath(cc, arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	res, err := format.ApplyJSONPatch(target, d)
	if err != nil {
		return nil, fmt.Errorf("error patching %s: %w", arg, err)
	}
	return res, nil
}
