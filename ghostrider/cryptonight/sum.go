package cryptonight

import (
	"encoding/binary"
	"math/bits"
	"unsafe"

	"github.com/mxhess/salvium-go/types"
)

func (cn *Context) stateBytes() []byte {
	// #nosec G103 -- fixed length view of the 200-byte state
	return unsafe.Slice((*byte)(unsafe.Pointer(&cn.state)), len(cn.state)*8)
}

// Sum computes the CryptoNight hash of data under one of the six GhostRider
// parameter sets. The input is expanded into a 200-byte state with Keccak,
// the scratchpad is filled with a keyed 10-round AES stream, mixed by a
// strictly sequential data-dependent loop, drained back into the state,
// re-permuted, and finished with one of four 256-bit hashes selected by the
// low bits of the state.
func (cn *Context) Sum(data []byte, variant Variant) (types.Hash, error) {
	if variant < 0 || variant >= NumVariants {
		return types.ZeroHash, ErrInvalidVariant
	}
	if len(data) < minInputLength {
		return types.ZeroHash, ErrShortInput
	}
	v := &variants[variant]

	// expand the input into the full 200-byte working state
	keccak1600(data, cn.stateBytes())

	// per-hash tweak, perturbs the second store path of the main loop
	tweak := cn.state[24] ^ binary.LittleEndian.Uint64(data[35:43])

	cn.explode(v, true)

	var a, b, c, d [2]uint64

	a[0] = cn.state[0] ^ cn.state[4]
	a[1] = cn.state[1] ^ cn.state[5]
	b[0] = cn.state[2] ^ cn.state[6]
	b[1] = cn.state[3] ^ cn.state[7]

	mask := v.mask
	for it := uint32(0); it < v.iterations; it++ {
		addr := (a[0] & mask) >> 3
		aes_single_round(&c, cn.scratchpad[addr:addr+2], &a)

		cn.scratchpad[addr] = b[0] ^ c[0]
		hi := b[1] ^ c[1]
		// flip 2 bits of byte 11 of the stored block, index derived from
		// the byte itself; the 0x75310 pattern comes from the reference
		// and must not be re-derived
		t := (hi >> 24) & 0xff
		index := (((t >> 3) & 6) | (t & 1)) << 1
		cn.scratchpad[addr+1] = hi ^ (((0x75310 >> index) & 0x30) << 24)

		addr = (c[0] & mask) >> 3
		d[0] = cn.scratchpad[addr]
		d[1] = cn.scratchpad[addr+1]

		// byteMul
		mulHi, mulLo := bits.Mul64(c[0], d[0])

		// byteAdd
		a[0] += mulHi
		a[1] += mulLo

		cn.scratchpad[addr] = a[0]
		cn.scratchpad[addr+1] = a[1] ^ tweak

		a[0] ^= d[0]
		a[1] ^= d[1]

		b = c
	}

	cn.implode(v)

	keccakF1600(&cn.state)

	var sum types.Hash
	finalHash(uint8(cn.state[0]), cn.stateBytes(), sum[:])

	return sum, nil
}

// explode fills the scratchpad with the keyed block-cipher stream derived
// from the state: key schedule from state bytes 0..31, 8 working blocks
// from state bytes 64..191, each 128-byte stride is the blocks after 10
// more AES rounds. Half-memory variants fill only half the configured size;
// the working blocks are saved after the first fill so the identical stream
// can be continued later to regenerate the second half.
func (cn *Context) explode(v *variantParams, firstHalf bool) {
	var roundKeys [aesRounds * 4]uint32
	aes_expand_key(cn.state[:4], &roundKeys)

	n := int(v.memory) / 8
	if v.halfMem {
		n /= 2
	}

	var blocks [16]uint64
	if v.halfMem && !firstHalf {
		blocks = cn.saveState
	} else {
		copy(blocks[:], cn.state[8:24])
	}

	for i := 0; i < n; i += 16 {
		for j := 0; j < 16; j += 2 {
			aes_rounds(blocks[j:j+2], &roundKeys)
		}
		copy(cn.scratchpad[i:i+16], blocks[:])
	}

	if v.halfMem && firstHalf {
		cn.saveState = blocks
	}
}

// implode drains the scratchpad back into state bytes 64..191: key schedule
// from state bytes 32..63, XOR each 128-byte stride into the working blocks
// then encrypt them with the full 10 rounds. Half-memory variants run two
// passes, regenerating the second logical half in place between them.
func (cn *Context) implode(v *variantParams) {
	var roundKeys [aesRounds * 4]uint32
	aes_expand_key(cn.state[4:8], &roundKeys)

	n := int(v.memory) / 8
	if v.halfMem {
		n /= 2
	}

	var blocks [16]uint64
	copy(blocks[:], cn.state[8:24])

	passes := 1
	if v.halfMem {
		passes = 2
	}

	for pass := 0; pass < passes; pass++ {
		if pass == 1 {
			cn.explode(v, false)
		}
		for i := 0; i < n; i += 16 {
			for j := range blocks {
				blocks[j] ^= cn.scratchpad[i+j]
			}
			for j := 0; j < 16; j += 2 {
				aes_rounds(blocks[j:j+2], &roundKeys)
			}
		}
	}

	copy(cn.state[8:24], blocks[:])
}
