package object

import "fmt"

// Builtins is the process-wide table of native functions consulted by the
// evaluator when an identifier lookup fails in the environment chain. The
// table is keyed by name rather than stored in any Environment, so builtins
// are in scope everywhere, but because the environment is searched first a
// `let` binding of the same name shadows the builtin (after `let len = 5`,
// `len` resolves to 5, not to the builtin).
var Builtins = map[string]*Builtin{
	"len": {Fn: builtinLen},
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// builtinLen implements len(x): byte length for strings. Any other
// argument type is unsupported.
func builtinLen(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d. want=1", len(args))
	}

	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	default:
		return newError("argument to 'len' not supported, got %s", args[0].Type())
	}
}
