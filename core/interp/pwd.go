package interp

import (
	"fmt"
	"os"
)

// Pwd implements the pwd builtin.
func Pwd(fr *Frame, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fr.errorf("pwd: %v", err)
		return 1
	}
	fmt.Fprintln(fr.Stdout, wd)
	return 0
}

func init() {
	AllBuiltins["pwd"] = BuiltinFunc(Pwd)
}
