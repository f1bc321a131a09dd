package machine

import "fmt"

// ToolError reports a failed docker-machine invocation.
type ToolError struct {
	Args []string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("docker-machine %v: %v", e.Args, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// DescriptorError reports an unparseable or incomplete inspect descriptor.
type DescriptorError struct {
	Machine string
	Key     string // missing field path, empty when the JSON itself failed to parse
	Err     error
}

func (e *DescriptorError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("descriptor for %s: missing key %s", e.Machine, e.Key)
	}
	return fmt.Sprintf("descriptor for %s: %v", e.Machine, e.Err)
}

func (e *DescriptorError) Unwrap() error {
	return e.Err
}

// EnvValueError reports a variable absent from docker-machine env output.
type EnvValueError struct {
	Name string
}

func (e *EnvValueError) Error() string {
	return fmt.Sprintf("env output: %s not found", e.Name)
}
