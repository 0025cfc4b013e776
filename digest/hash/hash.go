// Package hash holds the registry of digest capabilities and runs
// them over sequences of chunks.
package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Type indicates a digest capability
type Type uint64

// ID is the numeric identifier a caller passes to select a Type
type ID uint64

type hashDefinition struct {
	width    int // hex characters of the digest
	size     int // bytes of the digest
	name     string
	alias    string
	newFunc  func() hash.Hash
	hashType Type
	id       ID
}

var (
	type2hash  = map[Type]*hashDefinition{}
	name2hash  = map[string]*hashDefinition{}
	alias2hash = map[string]*hashDefinition{}
	all        = []Type{}
	supported  = []Type{}

	// id2hash is replaced wholesale on every change so Resolve can
	// read it without locking
	id2hash atomic.Pointer[map[ID]*hashDefinition]
	idMu    sync.Mutex
)

// lookupID returns the definition selected by id or nil
func lookupID(id ID) *hashDefinition {
	ids := id2hash.Load()
	if ids == nil {
		return nil
	}
	return (*ids)[id]
}

// storeID points id at definition.  It fails if id already selects a
// different definition.
func storeID(id ID, definition *hashDefinition) error {
	idMu.Lock()
	defer idMu.Unlock()
	old := id2hash.Load()
	var ids map[ID]*hashDefinition
	if old == nil {
		ids = make(map[ID]*hashDefinition, 1)
	} else {
		if existing := (*old)[id]; existing != nil {
			if existing == definition {
				return nil
			}
			return errors.Wrapf(ErrIDInUse, "0x%016x selects %q", uint64(id), existing.name)
		}
		ids = make(map[ID]*hashDefinition, len(*old)+1)
		for k, v := range *old {
			ids[k] = v
		}
	}
	ids[id] = definition
	id2hash.Store(&ids)
	return nil
}

// idPrefix is hashed together with the name to make the ID
const idPrefix = "digest/"

// NameToID returns the ID a capability called name is registered
// under.
func NameToID(name string) ID {
	return ID(xxhash.Sum64String(idPrefix + name))
}

// RegisterHash adds a new Hash to the list and returns its Type.
//
// size is the length of the digest in bytes.  newFunc may be nil for a
// capability which is recognized but which has no implementation.
func RegisterHash(name, alias string, size int, newFunc func() hash.Hash) Type {
	if len(all) >= 64 {
		panic("internal error: too many hash types")
	}
	hashType := Type(1) << uint(len(all))
	id := NameToID(name)
	if lookupID(id) != nil {
		panic(fmt.Sprintf("internal error: duplicate hash ID 0x%016x for %q", uint64(id), name))
	}
	all = append(all, hashType)
	if newFunc != nil {
		supported = append(supported, hashType)
	}

	definition := &hashDefinition{
		name:     name,
		alias:    alias,
		width:    2 * size,
		size:     size,
		newFunc:  newFunc,
		hashType: hashType,
		id:       id,
	}

	type2hash[hashType] = definition
	name2hash[name] = definition
	alias2hash[alias] = definition
	if err := storeID(id, definition); err != nil {
		panic(fmt.Sprintf("internal error: %v", err))
	}

	return hashType
}

// RegisterAlias makes id select hashType in addition to its own ID.
//
// It may be called while other goroutines are resolving IDs.
// Registering the same alias twice for the same type is not an error.
func RegisterAlias(id ID, hashType Type) error {
	definition := type2hash[hashType]
	if definition == nil {
		return errors.Wrapf(ErrUnrecognized, "hash type 0x%x", uint64(hashType))
	}
	return storeID(id, definition)
}

var (
	// ErrUnrecognized is returned for an identifier which doesn't
	// select any capability.
	ErrUnrecognized = errors.New("unrecognized hash algorithm")

	// ErrUnsupported is returned for a capability which is known but
	// has no implementation available.
	ErrUnsupported = errors.New("hash type not supported")

	// ErrIDInUse is returned when registering an alias for an ID
	// which already selects another capability.
	ErrIDInUse = errors.New("hash ID already in use")
)

// Resolve returns the Type selected by id.
//
// It is safe to call concurrently with RegisterAlias.
func Resolve(id ID) (Type, error) {
	if definition := lookupID(id); definition != nil {
		return definition.hashType, nil
	}
	return None, errors.Wrapf(ErrUnrecognized, "id 0x%016x", uint64(id))
}

// None indicates no hashes are selected
const None Type = 0

var (
	// SHA1 indicates SHA-1 support
	SHA1 Type
	// SHA224 indicates SHA-224 support
	SHA224 Type
	// SHA256 indicates SHA-256 support
	SHA256 Type
	// SHA384 indicates SHA-384 support
	SHA384 Type
	// SHA512 indicates SHA-512 support
	SHA512 Type
	// Streebog256 indicates GOST R 34.11-2012 256 bit support
	Streebog256 Type
	// Streebog512 indicates GOST R 34.11-2012 512 bit support
	Streebog512 Type
	// Whirlpool indicates Whirlpool support
	Whirlpool Type
	// RIPEMD160 indicates RIPEMD-160 support
	RIPEMD160 Type
	// RIPEMD256 indicates RIPEMD-256 support
	RIPEMD256 Type
	// RIPEMD320 indicates RIPEMD-320 support
	RIPEMD320 Type
	// GOST94 indicates GOST R 34.11-94 with the CryptoPro S-box
	GOST94 Type
	// SM3 indicates SM3 support
	SM3 Type
	// MD2 indicates MD2 support
	MD2 Type
	// MD4 indicates MD4 support
	MD4 Type
	// MD5 indicates MD5 support
	MD5 Type
	// Groestl224 indicates Grøstl-224 support
	Groestl224 Type
	// Groestl256 indicates Grøstl-256 support
	Groestl256 Type
	// Groestl384 indicates Grøstl-384 support
	Groestl384 Type
	// Groestl512 indicates Grøstl-512 support
	Groestl512 Type
	// BLAKE2b512 indicates BLAKE2b-512 support
	BLAKE2b512 Type
	// BLAKE2s256 indicates BLAKE2s-256 support
	BLAKE2s256 Type
	// SHA3_224 indicates SHA3-224 support
	SHA3_224 Type
	// SHA3_256 indicates SHA3-256 support
	SHA3_256 Type
	// SHA3_384 indicates SHA3-384 support
	SHA3_384 Type
	// SHA3_512 indicates SHA3-512 support
	SHA3_512 Type
	// Keccak224 indicates Keccak-224 support
	Keccak224 Type
	// Keccak256 indicates Keccak-256 support
	Keccak256 Type
	// Keccak384 indicates Keccak-384 support
	Keccak384 Type
	// Keccak512 indicates Keccak-512 support
	Keccak512 Type
	// FSB160 indicates FSB-160 support
	FSB160 Type
	// FSB224 indicates FSB-224 support
	FSB224 Type
	// FSB256 indicates FSB-256 support
	FSB256 Type
	// FSB384 indicates FSB-384 support
	FSB384 Type
	// FSB512 indicates FSB-512 support
	FSB512 Type
	// Shabal256 indicates Shabal-256 support
	Shabal256 Type
	// Shabal512 indicates Shabal-512 support
	Shabal512 Type
	// Tiger indicates Tiger/192 support
	Tiger Type
)

func init() {
	SHA1 = RegisterHash("sha1", "SHA-1", sha1.Size, sha1.New)
	SHA224 = RegisterHash("sha224", "SHA-224", sha256.Size224, sha256.New224)
	SHA256 = RegisterHash("sha256", "SHA-256", sha256.Size, newSHA256)
	SHA384 = RegisterHash("sha384", "SHA-384", sha512.Size384, sha512.New384)
	SHA512 = RegisterHash("sha512", "SHA-512", sha512.Size, sha512.New)
	Streebog256 = RegisterHash("streebog256", "Streebog-256", 32, newStreebog256)
	Streebog512 = RegisterHash("streebog512", "Streebog-512", 64, newStreebog512)
	Whirlpool = RegisterHash("whirlpool", "Whirlpool", 64, newWhirlpool)
	RIPEMD160 = RegisterHash("ripemd160", "RIPEMD-160", 20, newRIPEMD160)
	RIPEMD256 = RegisterHash("ripemd256", "RIPEMD-256", 32, newRIPEMD256)
	RIPEMD320 = RegisterHash("ripemd320", "RIPEMD-320", 40, newRIPEMD320)
	GOST94 = RegisterHash("gost-r-34.11-94", "GOST-R-34.11-94", 32, newGOST94)
	SM3 = RegisterHash("sm3", "SM3", 32, newSM3)
	MD2 = RegisterHash("md2", "MD2", 16, newMD2)
	MD4 = RegisterHash("md4", "MD4", 16, newMD4)
	MD5 = RegisterHash("md5", "MD5", md5.Size, md5.New)
	Groestl224 = RegisterHash("groestl224", "Groestl-224", 28, newGroestl224)
	Groestl256 = RegisterHash("groestl256", "Groestl-256", 32, newGroestl256)
	Groestl384 = RegisterHash("groestl384", "Groestl-384", 48, newGroestl384)
	Groestl512 = RegisterHash("groestl512", "Groestl-512", 64, newGroestl512)
	BLAKE2b512 = RegisterHash("blake2b512", "BLAKE2b-512", 64, newBLAKE2b512)
	BLAKE2s256 = RegisterHash("blake2s256", "BLAKE2s-256", 32, newBLAKE2s256)
	SHA3_224 = RegisterHash("sha3-224", "SHA3-224", 28, newSHA3_224)
	SHA3_256 = RegisterHash("sha3-256", "SHA3-256", 32, newSHA3_256)
	SHA3_384 = RegisterHash("sha3-384", "SHA3-384", 48, newSHA3_384)
	SHA3_512 = RegisterHash("sha3-512", "SHA3-512", 64, newSHA3_512)
	Keccak224 = RegisterHash("keccak224", "Keccak-224", 28, newKeccak224)
	Keccak256 = RegisterHash("keccak256", "Keccak-256", 32, newKeccak256)
	Keccak384 = RegisterHash("keccak384", "Keccak-384", 48, newKeccak384)
	Keccak512 = RegisterHash("keccak512", "Keccak-512", 64, newKeccak512)
	FSB160 = RegisterHash("fsb160", "FSB-160", 20, newFSB160)
	FSB224 = RegisterHash("fsb224", "FSB-224", 28, newFSB224)
	FSB256 = RegisterHash("fsb256", "FSB-256", 32, newFSB256)
	FSB384 = RegisterHash("fsb384", "FSB-384", 48, newFSB384)
	FSB512 = RegisterHash("fsb512", "FSB-512", 64, newFSB512)
	Shabal256 = RegisterHash("shabal256", "Shabal-256", 32, newShabal256)
	Shabal512 = RegisterHash("shabal512", "Shabal-512", 64, newShabal512)
	Tiger = RegisterHash("tiger", "Tiger", 24, newTiger)
}

// All returns every registered hash type, with or without an
// implementation, in registration order.
func All() []Type {
	return append([]Type(nil), all...)
}

// Supported returns a set of all the hash types which can be computed.
func Supported() Set {
	return NewHashSet(supported...)
}

// Width returns the width in characters for any HashType
func Width(hashType Type) int {
	if hash := type2hash[hashType]; hash != nil {
		return hash.width
	}
	return 0
}

// Size returns the length of the digest in bytes, or 0 for an unknown
// type.
func (h Type) Size() int {
	if hash := type2hash[h]; hash != nil {
		return hash.size
	}
	return 0
}

// BlockSize returns the block size of the underlying construction, or
// 0 if h can't be computed.
func (h Type) BlockSize() int {
	state, err := h.New()
	if err != nil {
		return 0
	}
	return state.BlockSize()
}

// ID returns the identifier which selects h
func (h Type) ID() ID {
	if hash := type2hash[h]; hash != nil {
		return hash.id
	}
	return 0
}

// Alias returns the display name of h
func (h Type) Alias() string {
	if hash := type2hash[h]; hash != nil {
		return hash.alias
	}
	return ""
}

// IsSupported returns true if h can be computed
func (h Type) IsSupported() bool {
	hash := type2hash[h]
	return hash != nil && hash.newFunc != nil
}

// NewFunc returns the constructor for h for callers such as HMAC which
// need fresh states on demand.
func (h Type) NewFunc() (func() hash.Hash, error) {
	definition := type2hash[h]
	if definition == nil {
		return nil, errors.Wrapf(ErrUnrecognized, "hash type 0x%x", uint64(h))
	}
	if definition.newFunc == nil {
		return nil, errors.Wrapf(ErrUnsupported, "%s", definition.alias)
	}
	return definition.newFunc, nil
}

// New returns a fresh incremental state for h
func (h Type) New() (hash.Hash, error) {
	newFunc, err := h.NewFunc()
	if err != nil {
		return nil, err
	}
	return newFunc(), nil
}

// String returns a string representation of the hash type.
// The function will panic if the hash type is unknown.
func (h Type) String() string {
	if h == None {
		return "none"
	}
	if hash := type2hash[h]; hash != nil {
		return hash.name
	}
	panic(fmt.Sprintf("internal error: unknown hash type: 0x%x", uint64(h)))
}

// Set a Type from a flag.
// Both name and alias are accepted.
func (h *Type) Set(s string) error {
	if s == "none" || s == "None" {
		*h = None
		return nil
	}
	if hash := name2hash[strings.ToLower(s)]; hash != nil {
		*h = hash.hashType
		return nil
	}
	if hash := alias2hash[s]; hash != nil {
		*h = hash.hashType
		return nil
	}
	for alias, hash := range alias2hash {
		if strings.EqualFold(alias, s) {
			*h = hash.hashType
			return nil
		}
	}
	return errors.Errorf("Unknown hash type %q", s)
}

// Type of the value
func (h Type) Type() string {
	return "string"
}

// HelpString returns help message with supported hashes
func HelpString(indent int) string {
	padding := strings.Repeat(" ", indent)
	var help strings.Builder
	help.WriteString(padding)
	help.WriteString("Supported hashes are:\n")
	for _, h := range Supported().Array() {
		fmt.Fprintf(&help, "%s  * %v\n", padding, h)
	}
	return help.String()
}

// A Set Indicates one or more hash types.
type Set uint64

// NewHashSet will create a new hash set with the hash types supplied
func NewHashSet(t ...Type) Set {
	h := Set(None)
	return h.Add(t...)
}

// Add one or more hash types to the set.
// Returns the modified hash set.
func (h *Set) Add(t ...Type) Set {
	for _, v := range t {
		*h |= Set(v)
	}
	return *h
}

// Contains returns true if the set contains t
func (h Set) Contains(t Type) bool {
	return uint64(h)&uint64(t) != 0
}

// Overlap returns the overlapping hash types
func (h Set) Overlap(t Set) Set {
	return Set(uint64(h) & uint64(t))
}

// SubsetOf will return true if all types of h
// is present in the set c
func (h Set) SubsetOf(c Set) bool {
	return uint64(h)|uint64(c) == uint64(c)
}

// GetOne will return a hash type.
// Currently the first is returned.
func (h Set) GetOne() Type {
	v := uint64(h)
	i := uint(0)
	for v != 0 {
		if v&1 != 0 {
			return Type(1) << i
		}
		i++
		v >>= 1
	}
	return None
}

// Array returns an array of all hash types in the set
func (h Set) Array() (ht []Type) {
	v := uint64(h)
	i := uint(0)
	for v != 0 {
		if v&1 != 0 {
			ht = append(ht, Type(1)<<i)
		}
		i++
		v >>= 1
	}
	return ht
}

// Count returns the number of hash types in the set
func (h Set) Count() int {
	if h == 0 {
		return 0
	}
	// credit: https://code.google.com/u/arnehormann/
	x := uint64(h)
	x -= (x >> 1) & 0x5555555555555555
	x = (x>>2)&0x3333333333333333 + x&0x3333333333333333
	x += x >> 4
	x &= 0x0f0f0f0f0f0f0f0f
	x *= 0x0101010101010101
	return int(x >> 56)
}

// String returns a string representation of the hash set.
// The function will panic if it contains an unknown type.
func (h Set) String() string {
	a := h.Array()
	var r []string
	for _, v := range a {
		r = append(r, v.String())
	}
	return "[" + strings.Join(r, ", ") + "]"
}

// Names returns the sorted names of every registered hash type
func Names() []string {
	names := make([]string, 0, len(name2hash))
	for name := range name2hash {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
