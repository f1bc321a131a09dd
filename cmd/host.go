package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var hostCmd = &cobra.Command{
	Use:   "host <name>",
	Short: "Print one host's variables as JSON",
	Long: `Print the hostvars for a single machine, matching the --host half of
the Ansible dynamic-inventory script contract. Unknown hosts produce an
empty object.`,
	Args: cobra.ExactArgs(1),
	RunE: runHost,
}

func init() {
	rootCmd.AddCommand(hostCmd)
}

func runHost(cmd *cobra.Command, args []string) error {
	inv, err := buildInventory()
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(inv.HostVars(args[0]), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding hostvars: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
