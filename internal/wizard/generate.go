package wizard

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const configHeader = `# docker_machine inventory configuration
# Print the inventory with: machinv list
`

// GenerateConfig renders the answers into docker_machine.yml content.
func GenerateConfig(a Answers) (string, error) {
	cfg := map[string]any{
		"plugin":         "docker_machine",
		"verbose_output": a.VerboseOutput,
	}

	if a.SplitTags {
		cfg["split_tags"] = true
		if a.SplitSeparator != "" && a.SplitSeparator != ":" {
			cfg["split_separator"] = a.SplitSeparator
		}
	}
	if a.Strict {
		cfg["strict"] = true
	}
	if a.TagKeyedGroups {
		cfg["keyed_groups"] = []map[string]any{
			{"prefix": "tag", "key": "Driver.Tags"},
		}
	}

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	return configHeader + "\n" + string(body), nil
}
