package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/objpatch/format"
	"github.com/signadot/objpatch/ir"
)

// Logf writes a debug message to stderr. *ir.Node arguments are rendered
// with format.Dump, or as JSON if that fails.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			if x == nil {
				args[i] = "<no node>"
				continue
			}
			buf := bytes.NewBuffer(nil)
			if err := format.Dump(buf, x, nil); err != nil {
				args[i] = "[raw *ir.Node] " + jsonString(x)
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
