package main

import (
	"bytes"
	"testing"

	"github.com/signadot/objpatch/format"
	"github.com/signadot/objpatch/ir"
)

func TestDocWriterSeparates(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	dw := &docWriter{w: buf, f: format.JSON()}
	docs := []*ir.Node{
		ir.FromFields("", ir.FromInt("x", 1)),
		ir.FromFields("", ir.FromInt("x", 2)),
	}
	for _, d := range docs {
		if err := dw.write(d); err != nil {
			t.Fatal(err)
		}
	}
	parts := bytes.Split(buf.Bytes(), docSep)
	if len(parts) != 2 {
		t.Fatalf("got %d documents, want 2:\n%s", len(parts), buf)
	}
	for i, p := range parts {
		n, err := format.JSON().Decode(bytes.NewReader(p))
		if err != nil {
			t.Fatalf("document %d: %v", i, err)
		}
		if !ir.Equal(docs[i], n) {
			t.Errorf("document %d = %+v, want %+v", i, n, docs[i])
		}
	}
}

func TestOutFormat(t *testing.T) {
	cfg := &MainConfig{Y: true}
	if got := cfg.outFormat(nil).Name(); got != "yaml" {
		t.Errorf("outFormat() = %s, want yaml", got)
	}
	cfg = &MainConfig{Color: true}
	if got := cfg.outFormat(nil).Name(); got != "dump" {
		t.Errorf("outFormat() = %s, want dump", got)
	}
	if got := cfg.inFormat().Name(); got != "json" {
		t.Errorf("inFormat() = %s, want json", got)
	}
}
