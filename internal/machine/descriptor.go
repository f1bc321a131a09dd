package machine

import (
	"encoding/json"
	"fmt"
)

// Node is the typed view of one docker-machine inspect descriptor.
type Node struct {
	// Name comes from Driver.MachineName and is used as the inventory
	// host key. docker-machine does not guarantee it matches the name
	// the machine was queried under; we use it as reported.
	Name       string
	DriverName string
	IPAddress  string
	SSHPort    int
	SSHUser    string
	SSHKeyPath string
	Tags       string
	// Attrs holds the full descriptor tree for verbose output and
	// constructed rule evaluation.
	Attrs map[string]any
}

// ParseDescriptor extracts a Node from the JSON output of
// `docker-machine inspect <id>`.
func ParseDescriptor(id, jsonText string) (*Node, error) {
	var attrs map[string]any
	if err := json.Unmarshal([]byte(jsonText), &attrs); err != nil {
		return nil, &DescriptorError{Machine: id, Err: fmt.Errorf("unmarshal inspect output: %w", err)}
	}

	driver, ok := attrs["Driver"].(map[string]any)
	if !ok {
		return nil, &DescriptorError{Machine: id, Key: "Driver"}
	}

	node := &Node{Attrs: attrs}

	name, ok := driver["MachineName"].(string)
	if !ok {
		return nil, &DescriptorError{Machine: id, Key: "Driver.MachineName"}
	}
	node.Name = name

	driverName, ok := attrs["DriverName"].(string)
	if !ok {
		return nil, &DescriptorError{Machine: id, Key: "DriverName"}
	}
	node.DriverName = driverName

	ip, ok := driver["IPAddress"].(string)
	if !ok {
		return nil, &DescriptorError{Machine: id, Key: "Driver.IPAddress"}
	}
	node.IPAddress = ip

	port, ok := driver["SSHPort"].(float64)
	if !ok || port != float64(int(port)) {
		return nil, &DescriptorError{Machine: id, Key: "Driver.SSHPort"}
	}
	node.SSHPort = int(port)

	user, ok := driver["SSHUser"].(string)
	if !ok {
		return nil, &DescriptorError{Machine: id, Key: "Driver.SSHUser"}
	}
	node.SSHUser = user

	keyPath, ok := driver["SSHKeyPath"].(string)
	if !ok {
		return nil, &DescriptorError{Machine: id, Key: "Driver.SSHKeyPath"}
	}
	node.SSHKeyPath = keyPath

	tags, ok := driver["Tags"].(string)
	if !ok {
		return nil, &DescriptorError{Machine: id, Key: "Driver.Tags"}
	}
	node.Tags = tags

	return node, nil
}
