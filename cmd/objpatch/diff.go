package main

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/signadot/objpatch/ir"
	"github.com/signadot/objpatch/irdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop == "" {
		if len(args) != 2 {
			return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
		}
		a, err := getObjFile(cc, args[0], cfg.inFormat())
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		b, err := getObjFile(cc, args[1], cfg.inFormat())
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		differs, err := diffInputs(cfg, cc, a, b, false)
		if err != nil {
			return err
		}
		if differs {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	return diffLoop(cfg, cc)
}

func diffLoop(cfg *DiffConfig, cc *cli.Context) error {
	var last *ir.Node
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	diffCount := 0
	for i := 0; i != cfg.LoopLim; i++ {
		next, err := loopOutput(cfg)
		if err != nil {
			return err
		}
		differs, err := diffInputs(cfg, cc, last, next, diffCount > 0)
		if err != nil {
			return err
		}
		if differs {
			diffCount++
			theLog.Info("difference found", "at", time.Now().Format(time.RFC3339Nano), "count", diffCount)
		}
		last = next
		<-ticker.C
	}
	return nil
}

func loopOutput(cfg *DiffConfig) (*ir.Node, error) {
	cmd := exec.Command("sh", "-c", cfg.Loop)
	r, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
	}
	cmd.WaitDelay = cfg.LoopEvery
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
	}
	next, err := cfg.inFormat().Decode(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding command output: %w", err)
	}
	// drain so the command can exit
	io.Copy(io.Discard, r)
	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
	}
	return next, nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node, sep bool) (bool, error) {
	w := cc.Out
	if cfg.Text {
		txt := irdiff.TextDiff(a, b, cfg.colors(w))
		if txt == "" {
			return false, nil
		}
		if sep {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return false, fmt.Errorf("unable to write separator: %w", err)
			}
		}
		_, err := io.WriteString(w, txt)
		return true, err
	}
	d := irdiff.Diff(a, b)
	if d == nil {
		return false, nil
	}
	dw := &docWriter{w: w, f: cfg.outFormat(w)}
	if sep {
		dw.count = 1
	}
	if err := dw.write(d); err != nil {
		return false, err
	}
	return true, nil
}
