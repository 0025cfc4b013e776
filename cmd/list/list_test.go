package list

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/digestbridge/digestbridge/digest/dispatch"
	"github.com/digestbridge/digestbridge/digest/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeholder is listed but can't be computed
var placeholder = hash.RegisterHash("placeholder", "Placeholder", 16, nil)

func TestListTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf, false, false))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(hash.All()))
	assert.True(t, strings.HasPrefix(lines[0], "sha1 "))
	assert.Contains(t, buf.String(), "unsupported")
	assert.Equal(t, len(hash.All())-1, hash.Supported().Count())

	buf.Reset()
	require.NoError(t, List(&buf, false, true))
	lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, hash.Supported().Count())
	assert.NotContains(t, buf.String(), "unsupported")
	assert.NotContains(t, buf.String(), placeholder.String())
	assert.Contains(t, buf.String(), "fsb512 ")
}

func TestListJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf, true, true))
	var out struct {
		Algorithms []dispatch.Algorithm `json:"algorithms"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Algorithms, hash.Supported().Count())
	assert.Equal(t, "sha1", out.Algorithms[0].Name)
	assert.Equal(t, 20, out.Algorithms[0].Size)
	assert.Equal(t, uint64(255*20), out.Algorithms[0].MaxKey)
	for _, algorithm := range out.Algorithms {
		assert.True(t, algorithm.Supported, algorithm.Name)
	}
}
