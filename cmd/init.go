package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/ui"
	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a docker_machine.yml config file interactively",
	Long: `Check the environment for docker-machine and generate a starter config
file through an interactive wizard.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "docker_machine.yml"

	detection := wizard.Detect(nil)

	if detection.ExistingConfig != "" {
		fmt.Printf("%s already exists.\n", detection.ExistingConfig)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
		configPath = detection.ExistingConfig
	}

	if !detection.DockerMachineAvailable {
		ui.Warn("docker-machine not found in PATH; the generated config will not work until it is installed")
	}

	answers, err := wizard.Run(detection)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success(fmt.Sprintf("Created %s", configPath))
	fmt.Println()
	fmt.Printf("Next step: %s\n", ui.Bold("machinv list"))
	fmt.Printf("           %s\n", ui.Hint("or edit docker_machine.yml to add constructed rules"))

	return nil
}
