package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/config"
	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate your docker_machine.yml configuration",
	Long: `Check that the configuration is usable: the plugin token is correct,
the docker-machine binary is available, and constructed rules are sane.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validationError reports a config problem with a suggested fix.
type validationError struct {
	Field      string
	Message    string
	Suggestion string
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(),
			"run 'machinv init' to create a config file"))
		return err
	}

	fmt.Fprintln(os.Stderr, ui.Bold("Validating docker_machine.yml..."))

	errs := validateConfig(cfg)

	passed := 0
	for _, ve := range errs {
		ui.ValidationErr(ve.Field, ve.Message, ve.Suggestion)
	}
	if len(errs) == 0 {
		ui.ValidationOK("plugin", "token is "+config.PluginToken)
		ui.ValidationOK("docker-machine", "binary found in PATH")
		passed = 2
	}

	fmt.Fprintln(os.Stderr)
	if len(errs) == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
		return nil
	}

	fmt.Fprintf(os.Stderr, "%d errors\n", len(errs))
	return fmt.Errorf("%d validation errors", len(errs))
}

func validateConfig(cfg *config.Config) []validationError {
	var errs []validationError

	if err := cfg.CheckPlugin(); err != nil {
		errs = append(errs, validationError{
			Field:      "plugin",
			Message:    err.Error(),
			Suggestion: "set 'plugin: docker_machine'",
		})
	}

	if _, err := findExecutable("docker-machine"); err != nil {
		errs = append(errs, validationError{
			Field:      "docker-machine",
			Message:    "binary not found in PATH",
			Suggestion: "install docker-machine or adjust PATH",
		})
	}

	if cfg.SplitTags && cfg.SplitSeparator == "" {
		errs = append(errs, validationError{
			Field:      "split_separator",
			Message:    "must not be empty when split_tags is enabled",
			Suggestion: "set 'split_separator: \":\"' or disable split_tags",
		})
	}

	for i, kg := range cfg.KeyedGroups {
		if kg.Key == "" {
			errs = append(errs, validationError{
				Field:      fmt.Sprintf("keyed_groups[%d].key", i),
				Message:    "key is required",
				Suggestion: "set an attribute path, e.g. 'dm_tag_env' or 'DriverName'",
			})
		}
	}

	for i, g := range cfg.Groups {
		if g.Name == "" || g.Key == "" {
			errs = append(errs, validationError{
				Field:      fmt.Sprintf("groups[%d]", i),
				Message:    "name and key are required",
				Suggestion: "give the group a name and an attribute path to test",
			})
		}
	}

	return errs
}
