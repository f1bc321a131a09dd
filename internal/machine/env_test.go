package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envOutput = `export DOCKER_TLS_VERIFY="1"
export DOCKER_HOST="tcp://134.209.204.160:2376"
export DOCKER_CERT_PATH="/root/.docker/machine/machines/routinator"
export DOCKER_MACHINE_NAME="routinator"
# Run this command to configure your shell:
# eval $(docker-machine env --shell=bash routinator)`

func TestParseEnv(t *testing.T) {
	block, err := ParseEnv(envOutput)
	require.NoError(t, err)

	assert.Equal(t, "1", block["DOCKER_TLS_VERIFY"])
	assert.Equal(t, "tcp://134.209.204.160:2376", block["DOCKER_HOST"])
	assert.Equal(t, "/root/.docker/machine/machines/routinator", block["DOCKER_CERT_PATH"])
	assert.Equal(t, "routinator", block["DOCKER_MACHINE_NAME"])
}

func TestParseEnvLineOrderIrrelevant(t *testing.T) {
	reordered := `export DOCKER_MACHINE_NAME="routinator"
export DOCKER_CERT_PATH="/root/.docker/machine/machines/routinator"
export DOCKER_TLS_VERIFY="1"
export DOCKER_HOST="tcp://134.209.204.160:2376"`

	block, err := ParseEnv(reordered)
	require.NoError(t, err)
	assert.Equal(t, "tcp://134.209.204.160:2376", block["DOCKER_HOST"])
}

func TestParseEnvMissingValue(t *testing.T) {
	missingCert := `export DOCKER_TLS_VERIFY="1"
export DOCKER_HOST="tcp://134.209.204.160:2376"
export DOCKER_MACHINE_NAME="routinator"`

	_, err := ParseEnv(missingCert)
	require.Error(t, err)

	var envErr *EnvValueError
	require.True(t, errors.As(err, &envErr))
	assert.Equal(t, "DOCKER_CERT_PATH", envErr.Name)
}
