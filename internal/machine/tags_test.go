package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		split    bool
		sep      string
		expected []TagEntry
	}{
		{
			"no splitting",
			"a,b:c", false, ":",
			[]TagEntry{{Key: "a"}, {Key: "b:c"}},
		},
		{
			"splitting enabled",
			"a,b:c", true, ":",
			[]TagEntry{{Key: "a"}, {Key: "b", Value: "c", HasValue: true}},
		},
		{
			"split on first separator only",
			"url:tcp://host:2376", true, ":",
			[]TagEntry{{Key: "url", Value: "tcp://host:2376", HasValue: true}},
		},
		{
			"custom separator",
			"env=prod,component=router", true, "=",
			[]TagEntry{
				{Key: "env", Value: "prod", HasValue: true},
				{Key: "component", Value: "router", HasValue: true},
			},
		},
		{
			"empty raw string yields one bare empty tag",
			"", true, ":",
			[]TagEntry{{Key: ""}},
		},
		{
			"duplicate tags are not deduplicated",
			"env:prod,env:dev", true, ":",
			[]TagEntry{
				{Key: "env", Value: "prod", HasValue: true},
				{Key: "env", Value: "dev", HasValue: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTags(tt.raw, tt.split, tt.sep)
			assert.Equal(t, tt.expected, got)
		})
	}
}
