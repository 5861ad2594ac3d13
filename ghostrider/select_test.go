package ghostrider

import (
	"crypto/rand"
	"testing"

	"github.com/sclevine/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naive reference: same nibble walk, expressed independently
func referenceIndices(n int, seed *[32]byte) []uint32 {
	var out []uint32
	picked := make(map[uint32]bool)

	for i := 0; i < 64 && len(out) < n; i++ {
		b := seed[i/2]
		nibble := b & 0x0F
		if i%2 == 1 {
			nibble = b >> 4
		}
		index := uint32(nibble) % uint32(n)
		if !picked[index] {
			picked[index] = true
			out = append(out, index)
		}
	}
	for i := uint32(0); int(i) < n; i++ {
		if !picked[i] {
			out = append(out, i)
		}
	}
	return out
}

func isPermutation(dst []uint32) bool {
	seen := make([]bool, len(dst))
	for _, index := range dst {
		if int(index) >= len(dst) || seen[index] {
			return false
		}
		seen[index] = true
	}
	return true
}

func TestSelectIndices(t *testing.T) {
	spec.Run(t, "selectIndices", func(t *testing.T, when spec.G, it spec.S) {
		it("returns the identity order for an all-zero seed", func() {
			var seed [32]byte

			var perm15 [15]uint32
			selectIndices(perm15[:], &seed)
			for i, index := range perm15 {
				assert.Equal(t, uint32(i), index)
			}

			var perm6 [6]uint32
			selectIndices(perm6[:], &seed)
			for i, index := range perm6 {
				assert.Equal(t, uint32(i), index)
			}
		})

		it("handles the all-0xFF seed", func() {
			seed := [32]byte{}
			for i := range seed {
				seed[i] = 0xFF
			}

			// nibble 15 mod 15 == 0, everything else appended ascending
			var perm15 [15]uint32
			selectIndices(perm15[:], &seed)
			for i, index := range perm15 {
				assert.Equal(t, uint32(i), index)
			}

			// nibble 15 mod 6 == 3
			var perm6 [6]uint32
			selectIndices(perm6[:], &seed)
			assert.Equal(t, []uint32{3, 0, 1, 2, 4, 5}, perm6[:])
		})

		it("always yields a permutation and matches the reference walk", func() {
			for trial := 0; trial < 256; trial++ {
				var seed [32]byte
				_, err := rand.Read(seed[:])
				require.NoError(t, err)

				var perm15 [15]uint32
				selectIndices(perm15[:], &seed)
				require.True(t, isPermutation(perm15[:]), "seed %x", seed)
				require.Equal(t, referenceIndices(15, &seed), perm15[:], "seed %x", seed)

				var perm6 [6]uint32
				selectIndices(perm6[:], &seed)
				require.True(t, isPermutation(perm6[:]), "seed %x", seed)
				require.Equal(t, referenceIndices(6, &seed), perm6[:], "seed %x", seed)
			}
		})

		it("is low-nibble first", func() {
			// 0x21 scans as nibble 1 then nibble 2
			var seed [32]byte
			seed[0] = 0x21

			var perm6 [6]uint32
			selectIndices(perm6[:], &seed)
			assert.Equal(t, []uint32{1, 2, 0, 3, 4, 5}, perm6[:])
		})
	})
}
