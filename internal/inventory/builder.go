package inventory

import (
	"fmt"
	"strings"

	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/config"
	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/constructed"
	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/machine"
)

// sshCommonArgs is set on every host so playbooks can reach freshly
// provisioned machines whose host keys are not yet known.
const sshCommonArgs = "-o StrictHostKeyChecking=no"

// Builder runs one discovery pass against docker-machine and produces
// the inventory graph.
type Builder struct {
	Runner machine.Runner
	Config *config.Config
	// NewConstructor builds the rule evaluator for an inventory.
	// Defaults to constructed.New.
	NewConstructor func(*Inventory) constructed.Constructor
}

// Build lists all machines and assembles the full inventory. Any
// failure aborts the pass; no partial inventory is returned.
func (b *Builder) Build() (*Inventory, error) {
	inv := NewInventory()

	ctor := b.constructor(inv)

	out, err := b.Runner.Run("ls", "-q")
	if err != nil {
		return nil, fmt.Errorf("listing machines: %w", err)
	}

	if out == "" {
		return inv, nil
	}

	for _, id := range strings.Split(out, "\n") {
		if err := b.addMachine(inv, ctor, id); err != nil {
			return nil, fmt.Errorf("machine %s: %w", id, err)
		}
	}

	return inv, nil
}

func (b *Builder) addMachine(inv *Inventory, ctor constructed.Constructor, id string) error {
	jsonText, err := b.Runner.Run("inspect", id)
	if err != nil {
		return fmt.Errorf("inspecting: %w", err)
	}

	node, err := machine.ParseDescriptor(id, jsonText)
	if err != nil {
		return err
	}

	// The descriptor's MachineName is the host key, even when it
	// differs from the id the machine was listed under.
	host := node.Name

	inv.AddHost(host)
	inv.ResetHostvars(host)
	inv.AddHostToGroup(host, node.DriverName)

	inv.SetHostvar(host, "ansible_host", node.IPAddress)
	inv.SetHostvar(host, "ansible_port", node.SSHPort)
	inv.SetHostvar(host, "ansible_user", node.SSHUser)
	inv.SetHostvar(host, "ansible_ssh_common_args", sshCommonArgs)
	inv.SetHostvar(host, "ansible_ssh_private_key_file", node.SSHKeyPath)

	// --shell=bash avoids docker-machine's shell auto-detection error
	// when run without a controlling terminal.
	envOut, err := b.Runner.Run("env", "--shell=bash", host)
	if err != nil {
		return fmt.Errorf("querying env: %w", err)
	}
	env, err := machine.ParseEnv(envOut)
	if err != nil {
		return err
	}
	for _, name := range machine.EnvNames {
		inv.SetHostvar(host, "dm_"+name, env[name])
	}

	for _, tag := range machine.ParseTags(node.Tags, b.Config.SplitTags, b.Config.SplitSeparator) {
		if tag.HasValue {
			inv.SetHostvar(host, "dm_tag_"+tag.Key, tag.Value)
		} else {
			// Bare tags become variables with no value, which is
			// not the same as an empty string.
			inv.SetHostvar(host, "dm_tag_"+tag.Key, nil)
		}
	}

	if b.Config.VerboseOutput {
		inv.SetHostvar(host, "docker_machine_node_attributes", node.Attrs)
	}

	// Constructed rules run last so they can reference everything set
	// above through the attribute bag.
	if err := ctor.ApplyCompose(b.Config.Compose, node.Attrs, host, b.Config.Strict); err != nil {
		return err
	}
	if err := ctor.ApplyConditionalGroups(b.Config.Groups, node.Attrs, host, b.Config.Strict); err != nil {
		return err
	}
	if err := ctor.ApplyKeyedGroups(b.Config.KeyedGroups, node.Attrs, host, b.Config.Strict); err != nil {
		return err
	}

	return nil
}

func (b *Builder) constructor(inv *Inventory) constructed.Constructor {
	if b.NewConstructor != nil {
		return b.NewConstructor(inv)
	}
	return constructed.New(inv)
}
