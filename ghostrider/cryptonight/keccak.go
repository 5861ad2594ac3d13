package cryptonight

import (
	"encoding/binary"
	_ "unsafe"

	_ "golang.org/x/crypto/sha3" //nolint:depguard
)

//go:noescape
//go:linkname keccakF1600 golang.org/x/crypto/sha3.keccakF1600
func keccakF1600(a *[25]uint64)

const keccakRounds = 24

// fullStateRate is the absorption rate used when the caller squeezes the
// entire 1600-bit state (len(md) == 200).
const fullStateRate = 136

// keccak1600 absorbs in into an all-zero 1600-bit state and squeezes
// len(md) bytes of digest, up to the full 200-byte state. The rate is
// 200 - 2*len(md) except in full-state mode. The final partial block is
// closed with the 0x01 start byte and 0x80 OR'd into the last rate byte.
func keccak1600(in []byte, md []byte) {
	var st [25]uint64

	rsiz := fullStateRate
	if len(md) != 200 {
		rsiz = 200 - 2*len(md)
	}
	rsizw := rsiz / 8

	for len(in) >= rsiz {
		for i := 0; i < rsizw; i++ {
			st[i] ^= binary.LittleEndian.Uint64(in[i*8:])
		}
		keccakF1600(&st)
		in = in[rsiz:]
	}

	// last block and multi-rate padding; sized for the full state so any
	// rate up to 200 - 2*len(md) fits
	var temp [200]byte
	n := copy(temp[:], in)
	temp[n] = 1
	temp[rsiz-1] |= 0x80

	for i := 0; i < rsizw; i++ {
		st[i] ^= binary.LittleEndian.Uint64(temp[i*8:])
	}
	keccakF1600(&st)

	for i := 0; i < len(md)/8; i++ {
		binary.LittleEndian.PutUint64(md[i*8:], st[i])
	}
	if tail := len(md) % 8; tail != 0 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], st[len(md)/8])
		copy(md[len(md)-tail:], buf[:tail])
	}
}
