package interp

import (
	"fmt"
	"sort"
	"strings"

	"josephlewis.net/minishell/core/env"
)

// Export implements the export builtin. Without arguments it lists the
// environment sorted by name in `declare -x` form; otherwise each
// argument is NAME, NAME=VALUE or NAME+=VALUE.
func Export(fr *Frame, args []string) int {
	if len(args) == 1 {
		entries := fr.Env.Entries()
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
		for _, e := range entries {
			if e.HasValue {
				fmt.Fprintf(fr.Stdout, "declare -x %s=\"%s\"\n", e.Name, e.Value)
			} else {
				fmt.Fprintf(fr.Stdout, "declare -x %s\n", e.Name)
			}
		}
		return 0
	}

	status := 0
	for _, arg := range args[1:] {
		name, value, mode := splitAssignment(arg)
		if !env.ValidName(name) {
			fr.errorf("export: `%s': not a valid identifier", arg)
			status = 1
			continue
		}
		switch mode {
		case assignNone:
			fr.Env.Export(name)
		case assignSet:
			fr.Env.Setenv(name, value)
		case assignAppend:
			fr.Env.Setenv(name, fr.Env.Getenv(name)+value)
		}
	}
	return status
}

type assignMode int

const (
	assignNone assignMode = iota
	assignSet
	assignAppend
)

// splitAssignment splits NAME, NAME=VALUE or NAME+=VALUE.
func splitAssignment(arg string) (name, value string, mode assignMode) {
	i := strings.IndexByte(arg, '=')
	if i < 0 {
		return arg, "", assignNone
	}
	if i > 0 && arg[i-1] == '+' {
		return arg[:i-1], arg[i+1:], assignAppend
	}
	return arg[:i], arg[i+1:], assignSet
}

func init() {
	AllBuiltins["export"] = BuiltinFunc(Export)
}
