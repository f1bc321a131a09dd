// Package constructed applies user-declared grouping and composition
// rules to a per-host attribute bag, in the spirit of Ansible's
// constructed inventory features. Rules reference attributes by dotted
// path into the bag (e.g. "Driver.IPAddress"); there is no template
// language.
package constructed

import (
	"fmt"
	"strings"

	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/util"
)

// Target is the mutable inventory surface rules write to.
type Target interface {
	SetHostvar(host, name string, value any)
	AddHostToGroup(host, group string)
}

// GroupRule adds a host to a group when an attribute path resolves
// truthy, or equals a given value when Equals is set.
type GroupRule struct {
	Name   string `mapstructure:"name" yaml:"name"`
	Key    string `mapstructure:"key" yaml:"key"`
	Equals string `mapstructure:"equals,omitempty" yaml:"equals,omitempty"`
}

// KeyedGroup derives a group name from an attribute value:
// <prefix><separator><value>.
type KeyedGroup struct {
	Prefix    string `mapstructure:"prefix" yaml:"prefix"`
	Key       string `mapstructure:"key" yaml:"key"`
	Separator string `mapstructure:"separator,omitempty" yaml:"separator,omitempty"`
}

// Constructor evaluates declarative rules against a host's attribute
// bag and mutates the inventory accordingly. With strict true a rule
// failure is returned; otherwise the failing rule is skipped for that
// host.
type Constructor interface {
	ApplyCompose(rules map[string]string, attrs map[string]any, host string, strict bool) error
	ApplyConditionalGroups(rules []GroupRule, attrs map[string]any, host string, strict bool) error
	ApplyKeyedGroups(rules []KeyedGroup, attrs map[string]any, host string, strict bool) error
}

// RuleError reports a rule that could not be evaluated for a host.
type RuleError struct {
	Host string
	Rule string
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %q for host %s: %v", e.Rule, e.Host, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// Rules is the Constructor backed by an inventory.
type Rules struct {
	Inv Target
}

// New returns a Constructor that mutates inv.
func New(inv Target) *Rules {
	return &Rules{Inv: inv}
}

func (r *Rules) ApplyCompose(rules map[string]string, attrs map[string]any, host string, strict bool) error {
	for varname, path := range rules {
		value, err := lookup(attrs, path)
		if err != nil {
			if strict {
				return &RuleError{Host: host, Rule: varname, Err: err}
			}
			continue
		}
		r.Inv.SetHostvar(host, varname, value)
	}
	return nil
}

func (r *Rules) ApplyConditionalGroups(rules []GroupRule, attrs map[string]any, host string, strict bool) error {
	for _, rule := range rules {
		value, err := lookup(attrs, rule.Key)
		if err != nil {
			if strict {
				return &RuleError{Host: host, Rule: rule.Name, Err: err}
			}
			continue
		}

		match := false
		if rule.Equals != "" {
			match = fmt.Sprintf("%v", value) == rule.Equals
		} else {
			match = truthy(value)
		}
		if match {
			r.Inv.AddHostToGroup(host, util.SanitizeGroupName(rule.Name))
		}
	}
	return nil
}

func (r *Rules) ApplyKeyedGroups(rules []KeyedGroup, attrs map[string]any, host string, strict bool) error {
	for _, rule := range rules {
		value, err := lookup(attrs, rule.Key)
		if err == nil && !scalar(value) {
			err = fmt.Errorf("value for %s is not a scalar", rule.Key)
		}
		if err != nil {
			if strict {
				return &RuleError{Host: host, Rule: rule.Prefix, Err: err}
			}
			continue
		}

		sep := rule.Separator
		if sep == "" {
			sep = "_"
		}
		name := fmt.Sprintf("%s%s%v", rule.Prefix, sep, value)
		r.Inv.AddHostToGroup(host, util.SanitizeGroupName(name))
	}
	return nil
}

// lookup resolves a dotted path into nested string-keyed maps.
func lookup(attrs map[string]any, path string) (any, error) {
	if path == "" {
		return nil, fmt.Errorf("empty attribute path")
	}

	var current any = attrs
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: not a map", path)
		}
		current, ok = m[part]
		if !ok {
			return nil, fmt.Errorf("%s: no attribute %q", path, part)
		}
	}
	return current, nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

func scalar(v any) bool {
	switch v.(type) {
	case string, bool, float64, int:
		return true
	}
	return false
}
