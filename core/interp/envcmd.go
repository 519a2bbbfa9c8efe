package interp

import "fmt"

// Env implements the env builtin: valued entries in insertion order.
// Unlike the system env it runs no programs; any argument fails with
// the command-not-found status.
func Env(fr *Frame, args []string) int {
	if len(args) > 1 {
		fr.errorf("env: too many arguments")
		return 127
	}
	for _, kv := range fr.Env.Environ() {
		fmt.Fprintln(fr.Stdout, kv)
	}
	return 0
}

func init() {
	AllBuiltins["env"] = BuiltinFunc(Env)
}
