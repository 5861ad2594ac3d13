package cryptonight

import (
	"crypto/rand"
	"fmt"
	"testing"
)

func testInput(tb testing.TB, n int) []byte {
	tb.Helper()
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i*7 + 3)
	}
	return buf
}

func TestSumDeterministic(t *testing.T) {
	input := testInput(t, 64)

	for variant := Dark; variant < NumVariants; variant++ {
		t.Run(variant.String(), func(t *testing.T) {
			cn := NewContext()
			first, err := cn.Sum(input, variant)
			if err != nil {
				t.Fatalf("Sum: %v", err)
			}

			// reused context must not leak state across calls
			again, err := cn.Sum(input, variant)
			if err != nil {
				t.Fatalf("Sum: %v", err)
			}
			if first != again {
				t.Errorf("context reuse changed output: %s != %s", first, again)
			}

			// fresh context must agree with the reused one
			fresh, err := NewContext().Sum(input, variant)
			if err != nil {
				t.Fatalf("Sum: %v", err)
			}
			if first != fresh {
				t.Errorf("fresh context disagrees: %s != %s", first, fresh)
			}
		})
	}
}

func TestSumVariantsDistinct(t *testing.T) {
	input := testInput(t, 64)
	cn := NewContext()

	seen := map[string]Variant{}
	for variant := Dark; variant < NumVariants; variant++ {
		sum, err := cn.Sum(input, variant)
		if err != nil {
			t.Fatalf("Sum(%s): %v", variant, err)
		}
		if prev, ok := seen[sum.String()]; ok {
			t.Errorf("%s and %s produced the same digest", prev, variant)
		}
		seen[sum.String()] = variant
	}
}

func TestSumInvalidVariant(t *testing.T) {
	input := testInput(t, 64)
	cn := NewContext()

	for _, variant := range []Variant{-1, NumVariants, 100} {
		if _, err := cn.Sum(input, variant); err != ErrInvalidVariant {
			t.Errorf("Sum(variant=%d) err = %v, want ErrInvalidVariant", variant, err)
		}
	}
}

func TestSumInputBoundary(t *testing.T) {
	cn := NewContext()

	if _, err := cn.Sum(testInput(t, 42), Turtle); err != ErrShortInput {
		t.Errorf("42-byte input err = %v, want ErrShortInput", err)
	}

	sum, err := cn.Sum(testInput(t, 43), Turtle)
	if err != nil {
		t.Fatalf("43-byte input err = %v", err)
	}
	var zero [32]byte
	if sum == zero {
		t.Error("43-byte input produced all-zero digest")
	}
}

// Every variant's mask must keep any masked address 16-byte aligned and
// strictly inside the addressable scratchpad region, including the halved
// region of half-memory variants.
func TestVariantTableBounds(t *testing.T) {
	for variant := Dark; variant < NumVariants; variant++ {
		v := &variants[variant]

		addressable := uint64(v.memory)
		if v.halfMem {
			addressable /= 2
		}
		if want := addressable - 16; v.mask != want {
			t.Errorf("%s: mask = %#x, want %#x", Variant(variant), v.mask, want)
		}
		if v.mask&0xF != 0 {
			t.Errorf("%s: mask %#x breaks 16-byte alignment", Variant(variant), v.mask)
		}

		for _, a := range []uint64{0, ^uint64(0), 0x123456789abcdef0} {
			offset := a & v.mask
			if offset+16 > addressable {
				t.Errorf("%s: masked offset %#x exceeds %#x", Variant(variant), offset, addressable)
			}
		}
	}
}

// The half-memory drain must see exactly the scratchpad a full-size explode
// over the same logical size would have produced: continuing the cipher
// stream from the saved blocks has to line up byte for byte with an
// uninterrupted fill.
func TestHalfMemoryContinuation(t *testing.T) {
	for _, variant := range []Variant{DarkLite, TurtleLite} {
		t.Run(variant.String(), func(t *testing.T) {
			v := &variants[variant]
			cn := NewContext()
			keccak1600(testInput(t, 64), cn.stateBytes())

			// uninterrupted reference stream over the full logical size
			var roundKeys [aesRounds * 4]uint32
			aes_expand_key(cn.state[:4], &roundKeys)
			var blocks [16]uint64
			copy(blocks[:], cn.state[8:24])

			full := int(v.memory) / 8
			ref := make([]uint64, full)
			for i := 0; i < full; i += 16 {
				for j := 0; j < 16; j += 2 {
					aes_rounds(blocks[j:j+2], &roundKeys)
				}
				copy(ref[i:i+16], blocks[:])
			}

			half := full / 2

			cn.explode(v, true)
			for i := 0; i < half; i++ {
				if cn.scratchpad[i] != ref[i] {
					t.Fatalf("first half diverges at word %d", i)
				}
			}

			cn.explode(v, false)
			for i := 0; i < half; i++ {
				if cn.scratchpad[i] != ref[half+i] {
					t.Fatalf("regenerated second half diverges at word %d", i)
				}
			}
		})
	}
}

// The four finishing hashes must all be reachable and distinct over the
// same state.
func TestFinalHashSelection(t *testing.T) {
	data := testInput(t, 200)

	seen := map[string]uint8{}
	for i := uint8(0); i < 4; i++ {
		var out [32]byte
		finalHash(i, data, out[:])
		key := fmt.Sprintf("%x", out)
		if prev, ok := seen[key]; ok {
			t.Errorf("finisher %d and %d collide", prev, i)
		}
		seen[key] = i

		var again [32]byte
		finalHash(i+4, data, again[:])
		if out != again {
			t.Errorf("finisher selection must only use the low 2 bits")
		}
	}
}

func BenchmarkSum(b *testing.B) {
	for variant := Dark; variant < NumVariants; variant++ {
		b.Run(variant.String(), func(b *testing.B) {
			b.ReportAllocs()

			cn := NewContext()

			var input [64]byte
			_, _ = rand.Read(input[:])

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = cn.Sum(input[:], variant)
			}
		})
	}
}
