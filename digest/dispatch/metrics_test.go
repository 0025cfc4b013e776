package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// count returns the calls counted for op, algorithm and status
func count(t *testing.T, op, algorithm string, status int) uint64 {
	calls, err := CallCounts()
	require.NoError(t, err)
	for _, c := range calls {
		if c.Op == op && c.Algorithm == algorithm && c.Status == status {
			return c.Count
		}
	}
	return 0
}

func TestMetricsHash(t *testing.T) {
	before := count(t, "hash", "sha256", 32)
	_, err := Hash([]byte("abc"), []uint64{3}, sha256ID)
	require.NoError(t, err)
	assert.Equal(t, before+1, count(t, "hash", "sha256", 32))

	before = count(t, "hash", "unknown", StatusUnrecognized)
	_, err = Hash(nil, nil, badID)
	require.Error(t, err)
	assert.Equal(t, before+1, count(t, "hash", "unknown", StatusUnrecognized))

	before = count(t, "hash", "sha256", StatusInvalidPartition)
	_, err = Hash([]byte("abc"), []uint64{4}, sha256ID)
	require.Error(t, err)
	assert.Equal(t, before+1, count(t, "hash", "sha256", StatusInvalidPartition))
}

func TestMetricsHKDF(t *testing.T) {
	before := count(t, "hkdf", "sha1", StatusOK)
	_, err := HKDF([]byte("pw"), nil, nil, 10, sha1ID)
	require.NoError(t, err)
	assert.Equal(t, before+1, count(t, "hkdf", "sha1", StatusOK))

	before = count(t, "hkdf", placeholder.String(), StatusUnsupported)
	_, err = HKDF([]byte("pw"), nil, nil, 10, placeholderID)
	require.Error(t, err)
	assert.Equal(t, before+1, count(t, "hkdf", placeholder.String(), StatusUnsupported))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.Nil(t, m.Collectors())
	assert.NotPanics(t, func() { m.onCall("hash", "sha1", nil, nil) })
}

func TestRCStats(t *testing.T) {
	_, err := Hash([]byte("abc"), nil, sha1ID)
	require.NoError(t, err)
	out, err := rcStats(context.Background(), nil)
	require.NoError(t, err)
	calls, ok := out["calls"].([]CallCount)
	require.True(t, ok)
	assert.NotEmpty(t, calls)
}
