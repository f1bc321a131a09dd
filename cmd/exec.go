package cmd

import (
	"os/exec"
)

// findExecutable wraps exec.LookPath for testability.
func findExecutable(name string) (string, error) {
	return exec.LookPath(name)
}
