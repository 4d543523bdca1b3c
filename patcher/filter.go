package patcher

import (
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// FieldEnv is the environment field expressions are evaluated in.
type FieldEnv struct {
	Name     string
	GoName   string
	Type     string
	Kind     string
	Tag      string
	Depth    int
	Exported bool
}

func fieldEnv(f Field) FieldEnv {
	return FieldEnv{
		Name:     f.Name,
		GoName:   f.GoName,
		Type:     f.Type.String(),
		Kind:     f.Type.Kind().String(),
		Tag:      string(f.Tag),
		Depth:    f.Depth,
		Exported: f.Exported,
	}
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(FieldEnv{}),
		expr.AsBool(),
		expr.Function("tag", func(params ...any) (any, error) {
			tag, _ := params[0].(string)
			key, _ := params[1].(string)
			return reflect.StructTag(tag).Get(key), nil
		}, new(func(string, string) string)),
	}
}

// FieldExpr compiles a boolean expr-lang expression into a FieldPredicate.
// The expression sees the fields of FieldEnv and a tag(Tag, key) function:
//
//	Kind != "float64" && !(Name startsWith "Debug")
//	tag(Tag, "json") != "-"
//
// A field for which the expression fails at run time is excluded.
func FieldExpr(src string) (FieldPredicate, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("compiling field expression %q: %w", src, err)
	}
	return exprPredicate(prg), nil
}

func exprPredicate(prg *vm.Program) FieldPredicate {
	return func(f Field) bool {
		out, err := expr.Run(prg, fieldEnv(f))
		if err != nil {
			return false
		}
		b, _ := out.(bool)
		return b
	}
}
