package hash

import (
	"hash"

	"github.com/cxmcc/tiger"
	"github.com/deatil/go-hash/fsb"
	"github.com/deatil/go-hash/groestl"
	"github.com/deatil/go-hash/ripemd"
	"github.com/deatil/go-hash/shabal"
	"github.com/ebfe/keccak"
	"github.com/emmansun/gmsm/sm3"
	md2 "github.com/htruong/go-md2"
	"github.com/jzelinskie/whirlpool"
	sha256simd "github.com/minio/sha256-simd"
	"go.cypherpunks.ru/gogost/v5/gost28147"
	"go.cypherpunks.ru/gogost/v5/gost34112012256"
	"go.cypherpunks.ru/gogost/v5/gost34112012512"
	"go.cypherpunks.ru/gogost/v5/gost341194"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"       //nolint:staticcheck
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
	"golang.org/x/crypto/sha3"
)

func newSHA256() hash.Hash { return sha256simd.New() }

func newStreebog256() hash.Hash { return gost34112012256.New() }

func newStreebog512() hash.Hash { return gost34112012512.New() }

func newGOST94() hash.Hash {
	return gost341194.New(&gost28147.SboxIdGostR341194CryptoProParamSet)
}

func newWhirlpool() hash.Hash { return whirlpool.New() }

func newRIPEMD160() hash.Hash { return ripemd160.New() }

func newRIPEMD256() hash.Hash { return ripemd.New256() }

func newRIPEMD320() hash.Hash { return ripemd.New320() }

func newSM3() hash.Hash { return sm3.New() }

func newMD2() hash.Hash { return md2.New() }

func newMD4() hash.Hash { return md4.New() }

// blake2 only fails for an oversized key and we never pass one
func newBLAKE2b512() hash.Hash {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	return h
}

func newBLAKE2s256() hash.Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

func newSHA3_224() hash.Hash { return sha3.New224() }

func newSHA3_256() hash.Hash { return sha3.New256() }

func newSHA3_384() hash.Hash { return sha3.New384() }

func newSHA3_512() hash.Hash { return sha3.New512() }

// x/crypto only carries the legacy Keccak padding for 256 and 512 bits
func newKeccak224() hash.Hash { return keccak.New224() }

func newKeccak256() hash.Hash { return sha3.NewLegacyKeccak256() }

func newKeccak384() hash.Hash { return keccak.New384() }

func newKeccak512() hash.Hash { return sha3.NewLegacyKeccak512() }

func newTiger() hash.Hash { return tiger.New() }

func newGroestl224() hash.Hash { return groestl.New224() }

func newGroestl256() hash.Hash { return groestl.New256() }

func newGroestl384() hash.Hash { return groestl.New384() }

func newGroestl512() hash.Hash { return groestl.New512() }

func newFSB160() hash.Hash { return fsb.New160() }

func newFSB224() hash.Hash { return fsb.New224() }

func newFSB256() hash.Hash { return fsb.New256() }

func newFSB384() hash.Hash { return fsb.New384() }

func newFSB512() hash.Hash { return fsb.New512() }

func newShabal256() hash.Hash { return shabal.New256() }

func newShabal512() hash.Hash { return shabal.New512() }
