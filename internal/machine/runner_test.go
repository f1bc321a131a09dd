package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDockerMachineRunnerTrimsOutput(t *testing.T) {
	r := &DockerMachineRunner{Binary: "echo"}

	out, err := r.Run("ls", "-q")
	require.NoError(t, err)
	assert.Equal(t, "ls -q", out)
}

func TestDockerMachineRunnerMissingBinary(t *testing.T) {
	r := &DockerMachineRunner{Binary: "definitely-not-a-real-binary"}

	_, err := r.Run("ls", "-q")
	require.Error(t, err)

	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, []string{"ls", "-q"}, toolErr.Args)
}

func TestDockerMachineRunnerNonZeroExit(t *testing.T) {
	r := &DockerMachineRunner{Binary: "false"}

	_, err := r.Run()
	require.Error(t, err)

	var toolErr *ToolError
	assert.True(t, errors.As(err, &toolErr))
}
