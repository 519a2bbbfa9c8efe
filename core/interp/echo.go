package interp

import (
	"fmt"
	"strings"
)

// Echo implements the echo builtin. The only flag is -n (and runs of
// it like -nnn); anything else is printed literally, as in bash.
func Echo(fr *Frame, args []string) int {
	args = args[1:]

	newline := true
	for len(args) > 0 && isEchoNFlag(args[0]) {
		newline = false
		args = args[1:]
	}

	fmt.Fprint(fr.Stdout, strings.Join(args, " "))
	if newline {
		fmt.Fprintln(fr.Stdout)
	}
	return 0
}

func isEchoNFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	for _, c := range arg[1:] {
		if c != 'n' {
			return false
		}
	}
	return true
}

func init() {
	AllBuiltins["echo"] = BuiltinFunc(Echo)
}
