package ghostrider

import (
	"errors"
	"sync"

	"github.com/Qitmeer/qitmeer/crypto/x16rv3/blake"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/bmw"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/cubehash"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/echo"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/fugue"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/groestl"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/hamsi"
	x16hash "github.com/Qitmeer/qitmeer/crypto/x16rv3/hash"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/jh"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/keccak"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/luffa"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/shabal"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/shavite"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/simd"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/skein"
	"github.com/Qitmeer/qitmeer/crypto/x16rv3/whirlpool"
)

// CoreHash names one of the 15 fixed 512-bit hash primitives chained by the
// pipeline. The numeric order is consensus-critical and matches the
// GhostRider reference; substituting or reordering entries produces an
// incompatible hash function.
type CoreHash uint8

const (
	Blake512 CoreHash = iota
	BMW512
	Groestl512
	JH512
	Keccak512
	Skein512
	Luffa512
	CubeHash512
	SHAvite512
	SIMD512
	ECHO512
	Hamsi512
	Fugue512
	Shabal512
	Whirlpool

	NumCoreHashes = 15
)

func (c CoreHash) String() string {
	if int(c) < len(coreHashNames) {
		return coreHashNames[c]
	}
	return "invalid"
}

var coreHashNames = [NumCoreHashes]string{
	"blake512", "bmw512", "groestl512", "jh512", "keccak512",
	"skein512", "luffa512", "cubehash512", "shavite512", "simd512",
	"echo512", "hamsi512", "fugue512", "shabal512", "whirlpool",
}

// The streaming-digest primitives. hamsi, fugue, shabal and whirlpool use
// different call shapes and go through the switch in coreSum instead.
var coreDigests = [NumCoreHashes]func() x16hash.Digest{
	Blake512:    blake.New,
	BMW512:      bmw.New,
	Groestl512:  groestl.New,
	JH512:       jh.New,
	Keccak512:   keccak.New,
	Skein512:    skein.New,
	Luffa512:    luffa.New,
	CubeHash512: cubehash.New,
	SHAvite512:  shavite.New,
	SIMD512:     simd.New,
	ECHO512:     echo.New,
}

// The hamsi, fugue and shabal ports hold their running state in package
// variables, so calls into them are serialized.
var sphMu sync.Mutex

// ErrInvalidCoreHash core hash index outside 0..14
var ErrInvalidCoreHash = errors.New("ghostrider: core hash index out of range")

// coreSum runs one primitive over data, writing the 64-byte digest into out.
// out may alias data: every primitive consumes its input before the first
// output byte is stored.
func coreSum(algo CoreHash, data []byte, out *[64]byte) {
	switch algo {
	case Hamsi512:
		sphMu.Lock()
		hamsi.Sph_hamsi512_process(data, out[:], uint(len(data)))
		sphMu.Unlock()
	case Fugue512:
		sphMu.Lock()
		fugue.Sph_fugue512_process(data, out[:], uint(len(data)))
		sphMu.Unlock()
	case Shabal512:
		sphMu.Lock()
		shabal.Shabal_512_process(data, out[:], len(data))
		sphMu.Unlock()
	case Whirlpool:
		w := whirlpool.New()
		_, _ = w.Write(data)
		w.Sum(out[:0])
	default:
		digest := coreDigests[algo]()
		_, _ = digest.Write(data)
		_ = digest.Close(out[:], 0, 0)
	}
}

// CoreSum exposes a single primitive by index for isolated testing,
// independent of the pipeline.
func CoreSum(algo CoreHash, data []byte) ([64]byte, error) {
	var out [64]byte
	if algo >= NumCoreHashes {
		return out, ErrInvalidCoreHash
	}
	coreSum(algo, data, &out)
	return out, nil
}
