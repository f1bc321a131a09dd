package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/config"
	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/inventory"
	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/machine"
	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/ui"
)

var (
	listVerbose  bool
	listSplit    bool
	listSep      string
	listStrict   bool
	listNoChecks bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the full inventory as dynamic-inventory JSON",
	Long: `Query docker-machine for all machines and print the inventory in the
Ansible dynamic-inventory script format (groups plus _meta.hostvars).`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listVerbose, "verbose-output", false, "include the full inspect descriptor per host")
	listCmd.Flags().BoolVar(&listSplit, "split-tags", false, "split tags into key/value pairs")
	listCmd.Flags().StringVar(&listSep, "split-separator", "", "separator for --split-tags (default \":\")")
	listCmd.Flags().BoolVar(&listStrict, "strict", false, "fail on constructed rule evaluation errors")
	listCmd.Flags().BoolVar(&listNoChecks, "skip-plugin-check", false, "skip the config plugin token check")
}

func runList(cmd *cobra.Command, args []string) error {
	inv, err := buildInventory()
	if err != nil {
		return err
	}

	out, err := inv.ToScriptJSON()
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

func buildInventory() (*inventory.Inventory, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	builder := &inventory.Builder{
		Runner: &machine.DockerMachineRunner{},
		Config: cfg,
	}

	inv, err := builder.Build()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Discovery failed", err.Error(),
			"check that docker-machine is installed and your machines are reachable"))
		return nil, err
	}
	return inv, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(),
			"run 'machinv init' to create a config file"))
		return nil, err
	}

	applyFlagOverrides(cfg)

	if !listNoChecks {
		if err := cfg.CheckPlugin(); err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Invalid config", err.Error(),
				"set 'plugin: docker_machine' in docker_machine.yml"))
			return nil, err
		}
	}
	return cfg, nil
}

func applyFlagOverrides(cfg *config.Config) {
	if listVerbose {
		cfg.VerboseOutput = true
	}
	if listSplit {
		cfg.SplitTags = true
	}
	if listSep != "" {
		cfg.SplitSeparator = listSep
	}
	if listStrict {
		cfg.Strict = true
	}
}
