package hash_test

import (
	"bytes"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/digestbridge/digestbridge/digest/hash"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Digests of the empty string
var emptyVectors = map[hash.Type]string{
	hash.SHA1:       "da39a3ee5e6b4b0d3255bfef95601890afd80709",
	hash.SHA224:     "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f",
	hash.SHA256:     "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	hash.SHA384:     "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b",
	hash.SHA512:     "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
	hash.SHA3_224:   "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7",
	hash.SHA3_256:   "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
	hash.SHA3_384:   "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004",
	hash.SHA3_512:   "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26",
	hash.Keccak224:  "f71837502ba8e10837bdd8d365adb85591895602fc552b48b7390abd",
	hash.Keccak256:  "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
	hash.Keccak384:  "2c23146a63a29acf99e73b88f8c24eaa7dc60aa771780ccc006afbfa8fe2479b2dd2b21362337441ac12b515911957ff",
	hash.Keccak512:  "0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e",
	hash.MD2:        "8350e5a3e24c153df2275c9f80692773",
	hash.MD4:        "31d6cfe0d16ae931b73c59d7e0c089c0",
	hash.MD5:        "d41d8cd98f00b204e9800998ecf8427e",
	hash.RIPEMD160:  "9c1185a5c5e9fc54612808977ee8f548b2258d31",
	hash.Whirlpool:  "19fa61d75522a4669b44e39c1d2e1726c530232130d407f89afee0964997f7a73e83be698b288febcf88e3e03c4f0757ea8964e59b63d93708b138cc42a66eb3",
	hash.BLAKE2b512: "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce",
	hash.BLAKE2s256: "69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9",
	hash.SM3:        "1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b",
	hash.RIPEMD256:  "02ba4c4e5f8ecd1877fc52d64d30e37a2d9774fb1e5d026380ae0168e3c5522d",
	hash.RIPEMD320:  "22d65d5661536cdc75c1fdf5c6de7b41b9f27325ebc61e8557177d705a0ec880151c3a32a00899b8",
	hash.Groestl224: "f2e180fb5947be964cd584e22e496242c6a329c577fc4ce8c36d34c3",
	hash.Groestl256: "1a52d11d550039be16107f9c58db9ebcc417f16f736adb2502567119f0083467",
	hash.Groestl384: "ac353c1095ace21439251007862d6c62f829ddbe6de4f78e68d310a9205a736d8b11d99bffe448f57a1cfa2934f044a5",
	hash.Groestl512: "6d3ad29d279110eef3adbd66de2a0345a77baede1557f5d099fce0c03d6dc2ba8e6d4a6633dfbd66053c20faa87d1a11f39a7fbe4a6c2f009801370308fc4ad8",
	hash.Shabal256:  "aec750d11feee9f16271922fbaf5a9be142f62019ef8d720f858940070889014",
	hash.Shabal512:  "fc2d5dff5d70b7f6b1f8c2fcc8c1f9fe9934e54257eded0cf2b539a2ef0a19ccffa84f8d9fa135e4bd3c09f590f3a927ebd603ac29eb729e6f2a9af031ad8dc6",
	hash.GOST94:     "981e5f3ca30c841487830f84fb433e13ac1101569b9c13584ac483234cd656c0",
	hash.Tiger:      "3293ac630c13f0245f92bbb1766e16167a4e58492dde73f3",
}

// Digests of the 63 byte message M1 from RFC 6986.  The digests are
// given in the byte order the hash emits, as openssl prints them.
var streebogVectors = map[hash.Type]string{
	hash.Streebog256: "9d151eefd8590b89daa6ba6cb74af9275dd051026bb149a452fd84e5e57b5500",
	hash.Streebog512: "1b54d01a4af5b9d5cc3d86d68d285462b19abc2475222f35c085122be4ba1ffa00ad30f8767b3a82384c6574f024c311e2a481332b08ef7f41797891c1646f48",
}

const streebogM1 = "012345678901234567890123456789012345678901234567890123456789012"

// Digests of "abc"
var abcVectors = map[hash.Type]string{
	hash.SHA1:   "a9993e364706816aba3e25717850c26c9cd0d89d",
	hash.SHA256: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	hash.MD5:    "900150983cd24fb0d6963f7d28e17f72",
	hash.SM3:    "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0",
}

// builtins is the number of capabilities registered by the package
const builtins = 38

// placeholder is known but has no implementation
var placeholder = hash.RegisterHash("placeholder", "Placeholder", 16, nil)

func TestEmptyVectors(t *testing.T) {
	for hashType, want := range emptyVectors {
		t.Run(hashType.String(), func(t *testing.T) {
			// no chunks at all
			got, err := hash.Sum(hashType, nil)
			require.NoError(t, err)
			assert.Equal(t, want, hex.EncodeToString(got))

			// a single empty chunk
			got, err = hash.Sum(hashType, [][]byte{{}})
			require.NoError(t, err)
			assert.Equal(t, want, hex.EncodeToString(got))
		})
	}
}

func TestStreebogVectors(t *testing.T) {
	for hashType, want := range streebogVectors {
		t.Run(hashType.String(), func(t *testing.T) {
			got, err := hash.Sum(hashType, [][]byte{[]byte(streebogM1[:31]), []byte(streebogM1[31:])})
			require.NoError(t, err)
			assert.Equal(t, want, hex.EncodeToString(got))
		})
	}
}

// There is no published FSB vector to pin so check the output is
// well formed and chunking doesn't change it.
func TestFSB(t *testing.T) {
	for _, hashType := range []hash.Type{hash.FSB160, hash.FSB224, hash.FSB256, hash.FSB384, hash.FSB512} {
		t.Run(hashType.String(), func(t *testing.T) {
			whole, err := hash.Sum(hashType, [][]byte{[]byte("The quick brown fox")})
			require.NoError(t, err)
			assert.Len(t, whole, hashType.Size())
			split, err := hash.Sum(hashType, [][]byte{[]byte("The quick"), nil, []byte(" brown fox")})
			require.NoError(t, err)
			assert.Equal(t, whole, split)
			other, err := hash.Sum(hashType, [][]byte{[]byte("The quick brown fax")})
			require.NoError(t, err)
			assert.NotEqual(t, whole, other)
		})
	}
}

func TestABCVectors(t *testing.T) {
	for hashType, want := range abcVectors {
		t.Run(hashType.String(), func(t *testing.T) {
			got, err := hash.Sum(hashType, [][]byte{[]byte("a"), []byte("bc")})
			require.NoError(t, err)
			assert.Equal(t, want, hex.EncodeToString(got))
		})
	}
}

func TestSizes(t *testing.T) {
	for _, test := range []struct {
		hashType hash.Type
		size     int
	}{
		{hash.SHA1, 20},
		{hash.SHA224, 28},
		{hash.SHA256, 32},
		{hash.SHA384, 48},
		{hash.SHA512, 64},
		{hash.Streebog256, 32},
		{hash.Streebog512, 64},
		{hash.Whirlpool, 64},
		{hash.RIPEMD160, 20},
		{hash.RIPEMD256, 32},
		{hash.RIPEMD320, 40},
		{hash.GOST94, 32},
		{hash.SM3, 32},
		{hash.MD2, 16},
		{hash.MD4, 16},
		{hash.MD5, 16},
		{hash.Groestl224, 28},
		{hash.Groestl512, 64},
		{hash.BLAKE2b512, 64},
		{hash.BLAKE2s256, 32},
		{hash.SHA3_224, 28},
		{hash.SHA3_512, 64},
		{hash.Keccak224, 28},
		{hash.Keccak384, 48},
		{hash.FSB160, 20},
		{hash.FSB384, 48},
		{hash.Shabal256, 32},
		{hash.Tiger, 24},
	} {
		assert.Equal(t, test.size, test.hashType.Size(), test.hashType.String())
		assert.Equal(t, 2*test.size, hash.Width(test.hashType), test.hashType.String())
	}
	assert.Equal(t, 0, hash.None.Size())
}

func TestSupportedDigestLength(t *testing.T) {
	for _, hashType := range hash.Supported().Array() {
		t.Run(hashType.String(), func(t *testing.T) {
			got, err := hash.Sum(hashType, [][]byte{[]byte("hello"), []byte(" world")})
			require.NoError(t, err)
			assert.Len(t, got, hashType.Size())
			assert.Greater(t, hashType.BlockSize(), 0)
		})
	}
}

func TestEveryBuiltinIsSupported(t *testing.T) {
	for _, hashType := range hash.All() {
		if hashType == placeholder {
			continue
		}
		assert.True(t, hashType.IsSupported(), hashType.String())
		got, err := hash.SumID(hashType.ID(), [][]byte{[]byte("x")})
		require.NoError(t, err, hashType.String())
		assert.Len(t, got, hashType.Size(), hashType.String())
	}
	assert.Equal(t, builtins, hash.Supported().Count())
}

func TestUnsupported(t *testing.T) {
	assert.False(t, placeholder.IsSupported())
	assert.False(t, hash.Supported().Contains(placeholder))
	got, err := hash.Sum(placeholder, [][]byte{[]byte("x")})
	assert.Nil(t, got)
	assert.Equal(t, hash.ErrUnsupported, errors.Cause(err))
	assert.Equal(t, 0, placeholder.BlockSize())

	// still recognized
	resolved, err := hash.Resolve(placeholder.ID())
	require.NoError(t, err)
	assert.Equal(t, placeholder, resolved)
	assert.Equal(t, len(hash.All()), hash.Supported().Count()+1)
}

func TestRegisterAlias(t *testing.T) {
	alias := hash.ID(0x5ea1ed)
	_, err := hash.Resolve(alias)
	assert.Equal(t, hash.ErrUnrecognized, errors.Cause(err))

	require.NoError(t, hash.RegisterAlias(alias, hash.SM3))
	got, err := hash.Resolve(alias)
	require.NoError(t, err)
	assert.Equal(t, hash.SM3, got)

	// again for the same type is fine
	require.NoError(t, hash.RegisterAlias(alias, hash.SM3))

	err = hash.RegisterAlias(alias, hash.MD5)
	assert.Equal(t, hash.ErrIDInUse, errors.Cause(err))
	err = hash.RegisterAlias(hash.SHA1.ID(), hash.MD5)
	assert.Equal(t, hash.ErrIDInUse, errors.Cause(err))
	err = hash.RegisterAlias(0x5ea1ee, hash.None)
	assert.Equal(t, hash.ErrUnrecognized, errors.Cause(err))

	// the alias digests the same as the type
	viaAlias, err := hash.SumID(alias, [][]byte{[]byte("abc")})
	require.NoError(t, err)
	assert.Equal(t, abcVectors[hash.SM3], hex.EncodeToString(viaAlias))
}

func TestRegisterAliasWhileResolving(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				got, err := hash.Resolve(hash.SHA256.ID())
				assert.NoError(t, err)
				assert.Equal(t, hash.SHA256, got)
			}
		}()
	}
	for i := 0; i < 100; i++ {
		assert.NoError(t, hash.RegisterAlias(hash.ID(0xa11a5000+i), hash.SHA256))
	}
	wg.Wait()
	got, err := hash.Resolve(0xa11a5063)
	require.NoError(t, err)
	assert.Equal(t, hash.SHA256, got)
}

func TestResolve(t *testing.T) {
	seen := map[hash.ID]hash.Type{}
	for _, hashType := range hash.All() {
		id := hashType.ID()
		assert.Equal(t, hash.NameToID(hashType.String()), id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate ID for %v", hashType)
		seen[id] = hashType

		got, err := hash.Resolve(id)
		require.NoError(t, err)
		assert.Equal(t, hashType, got)
	}
	assert.Len(t, seen, builtins+1)

	for _, id := range []hash.ID{0, 1, 0xFFFFFFFFFFFFFFFF, hash.NameToID("sha257")} {
		got, err := hash.Resolve(id)
		assert.Equal(t, hash.None, got)
		assert.Equal(t, hash.ErrUnrecognized, errors.Cause(err))
	}

	got, err := hash.SumID(0, nil)
	assert.Nil(t, got)
	assert.Equal(t, hash.ErrUnrecognized, errors.Cause(err))
}

func TestResolveIsStable(t *testing.T) {
	// IDs are part of the external contract
	assert.Equal(t, hash.NameToID("sha256"), hash.SHA256.ID())
	first, err := hash.Resolve(hash.SHA256.ID())
	require.NoError(t, err)
	second, err := hash.Resolve(hash.SHA256.ID())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHashSet(t *testing.T) {
	var h hash.Set

	assert.Equal(t, 0, h.Count())
	a := h.Array()
	assert.Len(t, a, 0)

	h = h.Add(hash.MD5)
	assert.Equal(t, 1, h.Count())
	assert.Equal(t, hash.MD5, h.GetOne())
	a = h.Array()
	assert.Len(t, a, 1)
	assert.Equal(t, a[0], hash.MD5)

	// Test overlap, with all hashes
	h = h.Overlap(hash.Supported())
	assert.Equal(t, 1, h.Count())
	assert.Equal(t, hash.MD5, h.GetOne())
	assert.True(t, h.SubsetOf(hash.Supported()))
	assert.True(t, h.SubsetOf(hash.NewHashSet(hash.MD5)))

	h = h.Add(hash.SHA1)
	assert.Equal(t, 2, h.Count())
	one := h.GetOne()
	if !(one == hash.MD5 || one == hash.SHA1) {
		t.Fatalf("expected to be either MD5 or SHA1, got %v", one)
	}
	assert.True(t, h.SubsetOf(hash.Supported()))
	assert.False(t, h.SubsetOf(hash.NewHashSet(hash.MD5)))
	assert.False(t, h.SubsetOf(hash.NewHashSet(hash.SHA1)))
	assert.True(t, h.SubsetOf(hash.NewHashSet(hash.MD5, hash.SHA1)))
	assert.Equal(t, "[sha1, md5]", h.String())

	// Tiger was registered last so the top bits are in use
	h = hash.NewHashSet(hash.Tiger)
	assert.Equal(t, 1, h.Count())
	assert.Equal(t, hash.Tiger, h.GetOne())
	assert.Equal(t, []hash.Type{hash.Tiger}, h.Array())
}

func TestTypeSet(t *testing.T) {
	var h hash.Type
	require.NoError(t, h.Set("sha256"))
	assert.Equal(t, hash.SHA256, h)
	require.NoError(t, h.Set("SHA-256"))
	assert.Equal(t, hash.SHA256, h)
	require.NoError(t, h.Set("blake2b-512"))
	assert.Equal(t, hash.BLAKE2b512, h)
	require.NoError(t, h.Set("none"))
	assert.Equal(t, hash.None, h)
	assert.Error(t, h.Set("sha257"))
	assert.Equal(t, "string", h.Type())
}

func TestStreamTypes(t *testing.T) {
	sums, err := hash.StreamTypes(bytes.NewBufferString("abc"), hash.NewHashSet(hash.MD5, hash.SHA256))
	require.NoError(t, err)
	assert.Equal(t, abcVectors[hash.MD5], sums[hash.MD5])
	assert.Equal(t, abcVectors[hash.SHA256], sums[hash.SHA256])

	_, err = hash.StreamTypes(bytes.NewBufferString("abc"), hash.NewHashSet(placeholder))
	assert.Equal(t, hash.ErrUnsupported, errors.Cause(err))
}

func TestMultiHasher(t *testing.T) {
	m := hash.NewMultiHasher()
	_, err := m.Write([]byte("ab"))
	require.NoError(t, err)
	_, err = m.Write([]byte("c"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), m.Size())
	sums := m.Sums()
	assert.Equal(t, hash.Supported().Count(), len(sums))
	for hashType, want := range abcVectors {
		assert.Equal(t, want, sums[hashType])
		got, err := m.Sum(hashType)
		require.NoError(t, err)
		assert.Equal(t, want, hex.EncodeToString(got))
	}
	_, err = m.Sum(placeholder)
	assert.Equal(t, hash.ErrUnsupported, err)
}

func drawHashType(t *rapid.T) hash.Type {
	return rapid.SampledFrom(hash.Supported().Array()).Draw(t, "hashType")
}

// drawChunks splits data at random points
func drawChunks(t *rapid.T, data []byte) [][]byte {
	var chunks [][]byte
	rest := data
	for len(rest) > 0 {
		n := rapid.IntRange(0, len(rest)).Draw(t, "chunkLen")
		chunks = append(chunks, rest[:n])
		rest = rest[n:]
	}
	return chunks
}

func TestConcatenationInvariance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hashType := drawHashType(t)
		data := rapid.SliceOf(rapid.Byte()).Draw(t, "data")

		whole, err := hash.Sum(hashType, [][]byte{data})
		assert.NoError(t, err)

		parts, err := hash.Sum(hashType, drawChunks(t, data))
		assert.NoError(t, err)

		assert.Equal(t, whole, parts)
	})
}

func TestDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hashType := drawHashType(t)
		data := rapid.SliceOf(rapid.Byte()).Draw(t, "data")

		first, err := hash.Sum(hashType, [][]byte{data})
		assert.NoError(t, err)
		second, err := hash.Sum(hashType, [][]byte{data})
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, first, hashType.Size())
	})
}
