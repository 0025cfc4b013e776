package gomobile

import (
	"encoding/binary"
	"encoding/hex"
	"net/http"
	"testing"

	"github.com/digestbridge/digestbridge/digest/dispatch"
	"github.com/digestbridge/digestbridge/digest/hash"
	"github.com/stretchr/testify/assert"
)

func encodeParts(parts ...uint64) []byte {
	b := make([]byte, 8*len(parts))
	for i, part := range parts {
		binary.LittleEndian.PutUint64(b[8*i:], part)
	}
	return b
}

func TestDigestHash(t *testing.T) {
	md5ID := int64(hash.MD5.ID())

	result := DigestHash([]byte("abc"), encodeParts(2, 1), md5ID)
	assert.Equal(t, 16, result.Status)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hex.EncodeToString(result.Output))

	result = DigestHash([]byte("abc"), []byte{1, 2, 3}, md5ID)
	assert.Equal(t, dispatch.StatusInvalidPartition, result.Status)
	assert.Nil(t, result.Output)

	result = DigestHash([]byte("abc"), []byte{1, 2, 3}, 1)
	assert.Equal(t, dispatch.StatusUnrecognized, result.Status)
}

func TestDigestHKDF(t *testing.T) {
	result := DigestHKDF([]byte("pw"), nil, nil, 20, int64(hash.SHA1.ID()))
	assert.Equal(t, dispatch.StatusOK, result.Status)
	assert.Len(t, result.Output, 20)

	result = DigestHKDF([]byte("pw"), nil, nil, -1, int64(hash.SHA1.ID()))
	assert.Equal(t, dispatch.StatusKeyTooLong, result.Status)
}

func TestDigestRPC(t *testing.T) {
	DigestInitialize()
	defer DigestFinalize()
	result := DigestRPC("rc/noop", `{"a":"b"}`)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Contains(t, result.Output, `"a"`)
}
