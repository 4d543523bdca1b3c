package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

type debug struct {
	Build   bool
	Extract bool
	Apply   bool
	Diff    bool
}

var d *debug

func init() {
	Reload()
}

// Reload re-reads the debug switches from the environment. Commands call it
// after loading a .env file. Reload is not synchronized with readers of the
// switches and must only be called at startup, before any patchers run.
func Reload() {
	d = &debug{}
	d.Build = boolEnv("OBJPATCH_DEBUG_BUILD")
	d.Extract = boolEnv("OBJPATCH_DEBUG_EXTRACT")
	d.Apply = boolEnv("OBJPATCH_DEBUG_APPLY")
	d.Diff = boolEnv("OBJPATCH_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Build() bool {
	return d.Build
}
func Extract() bool {
	return d.Extract
}
func Apply() bool {
	return d.Apply
}
func Diff() bool {
	return d.Diff
}

// jsonString renders v as JSON, falling back to %v.
func jsonString(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
