package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/objpatch/format"
	"github.com/signadot/objpatch/ir"
)

var docSep = []byte("\n---\n")

func readPath(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getObjFile decodes the single document in path ("-" for stdin).
func getObjFile(cc *cli.Context, path string, f format.Formatter) (*ir.Node, error) {
	d, err := readPath(cc, path)
	if err != nil {
		return nil, err
	}
	return f.Decode(bytes.NewReader(d))
}

// getDocs decodes the documents in path, separated by "---" lines.
func getDocs(cc *cli.Context, path string, f format.Formatter) ([]*ir.Node, error) {
	d, err := readPath(cc, path)
	if err != nil {
		return nil, err
	}
	var res []*ir.Node
	for i, doc := range bytes.Split(d, docSep) {
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}
		n, err := f.Decode(bytes.NewReader(doc))
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d of %s: %w", i, path, err)
		}
		res = append(res, n)
	}
	return res, nil
}

// getish reads arg as a file path, or as the document itself if asString.
func getish(asString bool, cc *cli.Context, arg string, f format.Formatter) (*ir.Node, error) {
	if asString {
		return f.Decode(bytes.NewReader([]byte(arg)))
	}
	return getObjFile(cc, arg, f)
}

// eachDoc calls fn on every document of the files, or of stdin when there
// are none.
func eachDoc(cc *cli.Context, files []string, f format.Formatter, fn func(file string, i int, n *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := getDocs(cc, file, f)
		if err != nil {
			return err
		}
		for i, n := range docs {
			if err := fn(file, i, n); err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
		}
	}
	return nil
}

// docWriter encodes documents, separating them with "---" lines.
type docWriter struct {
	w     io.Writer
	f     format.Formatter
	count int
}

func (dw *docWriter) write(n *ir.Node) error {
	if dw.count > 0 {
		if _, err := dw.w.Write([]byte("---\n")); err != nil {
			return err
		}
	}
	dw.count++
	if err := dw.f.Encode(dw.w, n); err != nil {
		return fmt.Errorf("error encoding result %d: %w", dw.count, err)
	}
	return nil
}
