package inventory

import (
	"encoding/json"
	"sort"
)

// Inventory is the host/group/variable graph produced by one discovery
// pass.
type Inventory struct {
	Groups   map[string]*Group
	Hostvars map[string]map[string]any
}

// Group holds an ordered list of member hostnames.
type Group struct {
	Hosts []string
}

// NewInventory creates an Inventory seeded with the "all" group.
func NewInventory() *Inventory {
	inv := &Inventory{
		Groups:   make(map[string]*Group),
		Hostvars: make(map[string]map[string]any),
	}
	inv.Groups["all"] = &Group{}
	return inv
}

// AddGroup ensures a group exists and returns it.
func (inv *Inventory) AddGroup(name string) *Group {
	g, ok := inv.Groups[name]
	if !ok {
		g = &Group{}
		inv.Groups[name] = g
	}
	return g
}

// AddHost registers a host in the "all" group.
func (inv *Inventory) AddHost(host string) {
	inv.AddHostToGroup(host, "all")
	if _, ok := inv.Hostvars[host]; !ok {
		inv.Hostvars[host] = make(map[string]any)
	}
}

// AddHostToGroup adds a host to a group, creating the group if needed.
// Membership is idempotent.
func (inv *Inventory) AddHostToGroup(host, group string) {
	g := inv.AddGroup(group)
	for _, h := range g.Hosts {
		if h == host {
			return
		}
	}
	g.Hosts = append(g.Hosts, host)
}

// SetHostvar sets one variable for a host, registering the host if it
// is not yet known.
func (inv *Inventory) SetHostvar(host, name string, value any) {
	if _, ok := inv.Hostvars[host]; !ok {
		inv.AddHost(host)
	}
	inv.Hostvars[host][name] = value
}

// ResetHostvars discards all variables for a host. A machine reported
// twice replaces its earlier variables wholesale.
func (inv *Inventory) ResetHostvars(host string) {
	inv.Hostvars[host] = make(map[string]any)
}

// HostVars returns the variables for one host, or an empty map when the
// host is unknown.
func (inv *Inventory) HostVars(host string) map[string]any {
	if vars, ok := inv.Hostvars[host]; ok {
		return vars
	}
	return map[string]any{}
}

// ToScriptJSON renders the inventory in the Ansible dynamic-inventory
// script format: one key per group with its hosts, plus _meta.hostvars.
func (inv *Inventory) ToScriptJSON() ([]byte, error) {
	doc := make(map[string]any, len(inv.Groups)+1)

	names := make([]string, 0, len(inv.Groups))
	for name := range inv.Groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		doc[name] = map[string]any{"hosts": inv.Groups[name].Hosts}
	}
	doc["_meta"] = map[string]any{"hostvars": inv.Hostvars}

	return json.MarshalIndent(doc, "", "  ")
}
