package interp

import (
	"os"
	"path/filepath"
	"strings"
)

// execError is a command-resolution failure with its POSIX status:
// 127 for not found, 126 for found-but-unusable.
type execError struct {
	status int
	msg    string
}

func (e *execError) Error() string { return e.msg }

// resolveCommand turns a command name into an executable path. Names
// containing a slash are used as-is; others are resolved against PATH
// (or the configured default path when PATH is unset), first match
// wins.
func (s *Shell) resolveCommand(name string) (string, *execError) {
	if strings.ContainsRune(name, '/') {
		return name, checkExecutable(name, name)
	}

	path, ok := s.Env.LookupEnv("PATH")
	if !ok {
		path = s.Config.DefaultPath
	}

	foundNonExec := false
	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode().Perm()&0111 == 0 {
			foundNonExec = true
			continue
		}
		return candidate, nil
	}

	if foundNonExec {
		return "", &execError{status: 126, msg: name + ": Permission denied"}
	}
	return "", &execError{status: 127, msg: name + ": command not found"}
}

func checkExecutable(name, path string) *execError {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return &execError{status: 127, msg: name + ": No such file or directory"}
	case info.IsDir():
		return &execError{status: 126, msg: name + ": Is a directory"}
	case info.Mode().Perm()&0111 == 0:
		return &execError{status: 126, msg: name + ": Permission denied"}
	}
	return nil
}
