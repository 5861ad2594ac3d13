// Package ghostrider implements the GhostRider proof-of-work hash: a
// 3-stage pipeline where each stage chains 5 of 15 fixed 512-bit hash
// primitives and one of 6 CryptoNight memory-hard parameter sets, the
// ordering of both drawn from the previous-block-hash bytes of the header.
// The structure of every hash therefore depends on its input, which is what
// makes the function hostile to fixed-pipeline ASIC implementations.
package ghostrider

import (
	"errors"

	"github.com/mxhess/salvium-go/ghostrider/cryptonight"
	"github.com/mxhess/salvium-go/types"
)

// MinInputLength is the smallest valid header: the seed occupies bytes
// 4..36 and the memory-hard tweak consumes bytes 35..43.
const MinInputLength = 43

// seedOffset is where the 32-byte previous-block hash sits in the header.
const seedOffset = 4

const stages = 3

// ErrInputTooShort header too short to carry the seed and tweak material
var ErrInputTooShort = errors.New("ghostrider: input must be at least 43 bytes")

// Hasher is a per-worker hashing context. It owns a CryptoNight context
// with its 2 MiB scratchpad and must not be shared between concurrent
// workers; parallel mining uses one Hasher per worker.
type Hasher struct {
	cn *cryptonight.Context
}

// NewHasher allocates a hashing context for exclusive use by one worker.
func NewHasher() *Hasher {
	return &Hasher{cn: cryptonight.NewContext()}
}

// Sum computes the 32-byte GhostRider hash of a block header. The header
// must be at least MinInputLength bytes; bytes beyond the minimum are
// hashed as part of stage 0.
func (h *Hasher) Sum(input []byte) (types.Hash, error) {
	if len(input) < MinInputLength {
		return types.ZeroHash, ErrInputTooShort
	}

	seed := (*[32]byte)(input[seedOffset : seedOffset+32])

	var coreOrder [NumCoreHashes]uint32
	var variantOrder [cryptonight.NumVariants]uint32
	selectIndices(coreOrder[:], seed)
	selectIndices(variantOrder[:], seed)

	var tmp [64]byte
	data := input

	var out types.Hash
	for stage := 0; stage < stages; stage++ {
		for i := 0; i < 5; i++ {
			coreSum(CoreHash(coreOrder[stage*5+i]), data, &tmp)
			data = tmp[:]
		}

		var err error
		out, err = h.cn.Sum(tmp[:], cryptonight.Variant(variantOrder[stage]))
		if err != nil {
			return types.ZeroHash, err
		}

		copy(tmp[:32], out[:])
		clear(tmp[32:])
		data = tmp[:]
	}

	return out, nil
}
