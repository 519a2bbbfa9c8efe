package interp

import "josephlewis.net/minishell/core/env"

// Unset implements the unset builtin. Invalid identifiers are
// diagnosed; the exit status stays 0 unless every argument failed.
func Unset(fr *Frame, args []string) int {
	if len(args) == 1 {
		return 0
	}

	failures := 0
	for _, arg := range args[1:] {
		if !env.ValidName(arg) {
			fr.errorf("unset: `%s': not a valid identifier", arg)
			failures++
			continue
		}
		fr.Env.Unsetenv(arg)
	}

	if failures == len(args)-1 {
		return 1
	}
	return 0
}

func init() {
	AllBuiltins["unset"] = BuiltinFunc(Unset)
}
