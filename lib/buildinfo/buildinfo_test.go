package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLinkingAndTags(t *testing.T) {
	oldTags := Tags
	defer func() { Tags = oldTags }()

	Tags = nil
	linking, tags := GetLinkingAndTags()
	assert.Equal(t, "static", linking)
	assert.Equal(t, "none", tags)

	Tags = []string{"noasm", "cgo", "debug"}
	linking, tags = GetLinkingAndTags()
	assert.Equal(t, "dynamic", linking)
	assert.Equal(t, "debug noasm", tags)
}

func TestGetOSVersion(t *testing.T) {
	assert.NotPanics(t, func() {
		_, _ = GetOSVersion()
	})
}
