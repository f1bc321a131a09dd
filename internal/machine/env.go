package machine

import (
	"fmt"
	"regexp"
)

// EnvNames are the variables docker-machine env exports for a machine.
var EnvNames = []string{
	"DOCKER_TLS_VERIFY",
	"DOCKER_HOST",
	"DOCKER_CERT_PATH",
	"DOCKER_MACHINE_NAME",
}

// EnvBlock maps each exported variable name to its value.
type EnvBlock map[string]string

var envPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(EnvNames))
	for _, name := range EnvNames {
		patterns[name] = regexp.MustCompile(fmt.Sprintf(`%s="([^"]+)"`, name))
	}
	return patterns
}()

// ParseEnv extracts the exported variables from the shell-export text
// produced by `docker-machine env --shell=bash <id>`. The output is
// shell syntax, not a structured format, so we match each known
// NAME="value" assignment directly rather than parse the shell.
func ParseEnv(text string) (EnvBlock, error) {
	block := make(EnvBlock, len(EnvNames))
	for _, name := range EnvNames {
		m := envPatterns[name].FindStringSubmatch(text)
		if m == nil {
			return nil, &EnvValueError{Name: name}
		}
		block[name] = m[1]
	}
	return block, nil
}
