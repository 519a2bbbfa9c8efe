package interp

import (
	"fmt"
	"strconv"
)

// Exit implements the exit builtin. A numeric argument is taken mod
// 256; a non-numeric one still quits, with status 2. With too many
// arguments the shell stays running.
func Exit(fr *Frame, args []string) int {
	if fr.Shell != nil && fr.Shell.interactive {
		fmt.Fprintln(fr.Stderr, "exit")
	}

	if len(args) == 1 {
		return fr.quit(fr.Shell.lastStatus)
	}

	v, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fr.errorf("exit: %s: numeric argument required", args[1])
		return fr.quit(2)
	}

	if len(args) > 2 {
		fr.errorf("exit: too many arguments")
		return 1
	}

	return fr.quit(int(((v % 256) + 256) % 256))
}

// quit stops the REPL when running in the parent; inside a pipeline
// the stage just reports the status.
func (fr *Frame) quit(status int) int {
	if fr.InParent && fr.Shell != nil {
		fr.Shell.Quit = true
		fr.Shell.quitStatus = status
	}
	return status
}

func init() {
	AllBuiltins["exit"] = BuiltinFunc(Exit)
}
