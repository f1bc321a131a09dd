package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerateConfigMinimal(t *testing.T) {
	content, err := GenerateConfig(Answers{VerboseOutput: true, SplitSeparator: ":"})
	require.NoError(t, err)

	var cfg map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(content), &cfg))

	assert.Equal(t, "docker_machine", cfg["plugin"])
	assert.Equal(t, true, cfg["verbose_output"])
	assert.NotContains(t, cfg, "split_tags")
	assert.NotContains(t, cfg, "strict")
	assert.NotContains(t, cfg, "keyed_groups")
}

func TestGenerateConfigFull(t *testing.T) {
	content, err := GenerateConfig(Answers{
		VerboseOutput:  false,
		SplitTags:      true,
		SplitSeparator: "=",
		Strict:         true,
		TagKeyedGroups: true,
	})
	require.NoError(t, err)

	var cfg map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(content), &cfg))

	assert.Equal(t, false, cfg["verbose_output"])
	assert.Equal(t, true, cfg["split_tags"])
	assert.Equal(t, "=", cfg["split_separator"])
	assert.Equal(t, true, cfg["strict"])

	keyed, ok := cfg["keyed_groups"].([]any)
	require.True(t, ok)
	require.Len(t, keyed, 1)
	rule := keyed[0].(map[string]any)
	assert.Equal(t, "tag", rule["prefix"])
	assert.Equal(t, "Driver.Tags", rule["key"])
}

func TestGenerateConfigDefaultSeparatorOmitted(t *testing.T) {
	content, err := GenerateConfig(Answers{SplitTags: true, SplitSeparator: ":"})
	require.NoError(t, err)

	var cfg map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(content), &cfg))
	assert.NotContains(t, cfg, "split_separator")
}
