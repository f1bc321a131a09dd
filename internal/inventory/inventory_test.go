package inventory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventorySeedsAll(t *testing.T) {
	inv := NewInventory()
	require.Contains(t, inv.Groups, "all")
	assert.Empty(t, inv.Groups["all"].Hosts)
}

func TestAddHostToGroupIdempotent(t *testing.T) {
	inv := NewInventory()

	inv.AddHost("routinator")
	inv.AddHostToGroup("routinator", "digitalocean")
	inv.AddHostToGroup("routinator", "digitalocean")
	inv.AddHost("routinator")

	assert.Equal(t, []string{"routinator"}, inv.Groups["all"].Hosts)
	assert.Equal(t, []string{"routinator"}, inv.Groups["digitalocean"].Hosts)
}

func TestResetHostvars(t *testing.T) {
	inv := NewInventory()

	inv.SetHostvar("routinator", "ansible_host", "1.2.3.4")
	inv.SetHostvar("routinator", "dm_tag_env", "prod")
	inv.ResetHostvars("routinator")
	inv.SetHostvar("routinator", "ansible_host", "5.6.7.8")

	vars := inv.HostVars("routinator")
	assert.Equal(t, "5.6.7.8", vars["ansible_host"])
	assert.NotContains(t, vars, "dm_tag_env")
}

func TestHostVarsUnknownHost(t *testing.T) {
	inv := NewInventory()
	assert.Empty(t, inv.HostVars("ghost"))
}

func TestToScriptJSON(t *testing.T) {
	inv := NewInventory()
	inv.AddHost("routinator")
	inv.AddHostToGroup("routinator", "digitalocean")
	inv.SetHostvar("routinator", "ansible_port", 22)

	out, err := inv.ToScriptJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	all := doc["all"].(map[string]any)
	assert.Equal(t, []any{"routinator"}, all["hosts"])

	do := doc["digitalocean"].(map[string]any)
	assert.Equal(t, []any{"routinator"}, do["hosts"])

	meta := doc["_meta"].(map[string]any)
	hostvars := meta["hostvars"].(map[string]any)
	routinator := hostvars["routinator"].(map[string]any)
	assert.Equal(t, float64(22), routinator["ansible_port"])
}
