package ghostrider

import (
	"crypto/rand"
	"fmt"
	"testing"

	fasthex "github.com/tmthrgd/go-hex"

	"github.com/mxhess/salvium-go/types"
)

// XMRig self-test reference data for GhostRider: for each of 8 slots,
// hashing two fixed 80-byte blobs and XOR-ing the digests must reproduce
// the published differential. The varying seed bytes walk the pipeline
// through different primitive and variant permutations.
var xmrigDifferentials = fasthex.MustDecodeString("" +
	"42170cc185e6763cc7cb27c417392de2" +
	"296b406685a4e3d38ce9a58f10fc81e4" +
	"9056f29e00d0f8a1888286c086046b0e" +
	"9adbdbfd23167794fe589305103f2775" +
	"5144f35fe2f961bec030b58eb11ba1f7" +
	"064ef16afda5448e64478c6751e25c55" +
	"3e39a6a5f7b8d05ee2bf9244d9aa7622" +
	"e33e1596d86a782da977241a4be75a2e" +
	"8977ae92e4a42daf0b2709b25f9561a9" +
	"a8be5d39be415f9c6728484fae2a502b" +
	"b8c74273516059d89cba222f8e34dec8" +
	"1bae9ebdf7e8fd8a97bef047ac27dd28" +
	"c928a87b2ab8903ecab47844cecd91ec" +
	"c25a17597c14f8952814c3adc4e1135a" +
	"c4a7c777adf8096116bbaa7eabc30025" +
	"baa897c77d38460e59accbaefe3c6f01")

func TestSumReferenceDifferentials(t *testing.T) {
	h := NewHasher()

	for slot := byte(0); slot < 8; slot++ {
		t.Run(fmt.Sprintf("slot%d", slot), func(t *testing.T) {
			var blob1 [80]byte
			blob1[0] = slot
			blob1[4] = 0x10
			blob1[5] = 0x02
			sum1, err := h.Sum(blob1[:])
			if err != nil {
				t.Fatalf("Sum: %v", err)
			}

			var blob2 [80]byte
			blob2[0] = slot
			blob2[4] = 0x43
			blob2[5] = 0x05
			sum2, err := h.Sum(blob2[:])
			if err != nil {
				t.Fatalf("Sum: %v", err)
			}

			var xor types.Hash
			for i := range xor {
				xor[i] = sum1[i] ^ sum2[i]
			}

			want := types.HashFromBytes(xmrigDifferentials[int(slot)*32 : int(slot)*32+32])
			if xor != want {
				t.Errorf("differential = %s, want %s", xor, want)
			}
		})
	}
}

func TestSumDeterministic(t *testing.T) {
	input := make([]byte, 80)
	for i := range input {
		input[i] = byte(i)
	}

	h := NewHasher()
	first, err := h.Sum(input)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}

	again, err := h.Sum(input)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if first != again {
		t.Errorf("context reuse changed output: %s != %s", first, again)
	}

	fresh, err := NewHasher().Sum(input)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if first != fresh {
		t.Errorf("fresh hasher disagrees: %s != %s", first, fresh)
	}
}

func TestSumInputBoundary(t *testing.T) {
	h := NewHasher()

	short := make([]byte, MinInputLength-1)
	if _, err := h.Sum(short); err != ErrInputTooShort {
		t.Errorf("42-byte header err = %v, want ErrInputTooShort", err)
	}

	exact := make([]byte, MinInputLength)
	sum, err := h.Sum(exact)
	if err != nil {
		t.Fatalf("43-byte header err = %v", err)
	}
	if sum == types.ZeroHash {
		t.Error("43-byte header produced all-zero digest")
	}

	// headers longer than the minimum feed the extra bytes into stage 0
	longer := make([]byte, 120)
	longSum, err := h.Sum(longer)
	if err != nil {
		t.Fatalf("120-byte header err = %v", err)
	}
	if longSum == types.ZeroHash {
		t.Error("120-byte header produced all-zero digest")
	}
}

func TestSumAvalanche(t *testing.T) {
	var base [80]byte
	_, _ = rand.Read(base[:])

	h := NewHasher()
	ref, err := h.Sum(base[:])
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}

	// one flipped bit anywhere, sampled across the header, must change
	// the digest
	for bit := 0; bit < 80*8; bit += 67 {
		flipped := base
		flipped[bit/8] ^= 1 << (bit % 8)

		sum, err := h.Sum(flipped[:])
		if err != nil {
			t.Fatalf("Sum: %v", err)
		}
		if sum == ref {
			t.Errorf("flipping bit %d left the digest unchanged", bit)
		}
	}
}

func BenchmarkSum(b *testing.B) {
	b.ReportAllocs()

	h := NewHasher()

	var input [80]byte
	_, _ = rand.Read(input[:])

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Sum(input[:])
	}
}
