package machine

import (
	"errors"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// Runner executes docker-machine with the given arguments and returns
// its trimmed standard output.
type Runner interface {
	Run(args ...string) (string, error)
}

// DockerMachineRunner spawns the real docker-machine binary.
type DockerMachineRunner struct {
	// Binary overrides the program name, mainly for tests.
	Binary string
}

func (r *DockerMachineRunner) Run(args ...string) (string, error) {
	bin := r.Binary
	if bin == "" {
		bin = "docker-machine"
	}

	out, err := exec.Command(bin, args...).Output()
	if err != nil {
		return "", &ToolError{Args: args, Err: err}
	}
	if !utf8.Valid(out) {
		return "", &ToolError{Args: args, Err: errInvalidOutput}
	}
	return strings.TrimSpace(string(out)), nil
}

var errInvalidOutput = errors.New("output is not valid UTF-8")
