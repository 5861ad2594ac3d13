package ghostrider

import (
	"testing"

	fasthex "github.com/tmthrgd/go-hex"
)

// Published 512-bit test vectors for "abc", matching the reference naming
// order of the bank. Any index shuffle or algorithm substitution breaks
// network compatibility, so these pin both the algorithms and their order.
var coreHashVectors = map[CoreHash]string{
	Blake512:  "14266c7c704a3b58fb421ee69fd005fcc6eeff742136be67435df995b7c986e7cbde4dbde135e7689c354d2bc5b8d260536c554b4f84c118e61efc576fed7cd3",
	BMW512:    "8f37bef264289f61f3d713944d394a7ac1dd95d3fe5787b5d325a310bc9cd18783852bfee12fbdeaab3ad9a67f2b654e348714aed3acf7d7548e95591af68046",
	Keccak512: "18587dc2ea106b9a1563e32b3312421ca164c7f1f07bc922a9c83d77cea3a1e5d0c69910739025372dc14ac9642629379540c17e2a65b19d77aa511a9d00bb96",
	Skein512:  "8f5dd9ec798152668e35129496b029a960c9a9b88662f7f9482f110b31f9f93893ecfb25c009baad9e46737197d5630379816a886aa05526d3a70df272d96e75",
	Whirlpool: "4e2448a4c6f486bb16b6562c73b4020bf3043e3a731bce721ae1b303d97e6d4c7181eebdb6c57e277d0e34957114cbd6c797fc9d95d8b582d225292076d4eef5",
}

func TestCoreSumVectors(t *testing.T) {
	for algo, want := range coreHashVectors {
		t.Run(algo.String(), func(t *testing.T) {
			out, err := CoreSum(algo, []byte("abc"))
			if err != nil {
				t.Fatalf("CoreSum: %v", err)
			}
			if got := fasthex.EncodeToString(out[:]); got != want {
				t.Errorf("CoreSum(%s, \"abc\") = %s, want %s", algo, got, want)
			}
		})
	}
}

func TestCoreSumDistinct(t *testing.T) {
	input := []byte("GhostRider test vector")

	seen := map[string]CoreHash{}
	for algo := CoreHash(0); algo < NumCoreHashes; algo++ {
		out, err := CoreSum(algo, input)
		if err != nil {
			t.Fatalf("CoreSum(%s): %v", algo, err)
		}

		var zero [64]byte
		if out == zero {
			t.Errorf("CoreSum(%s) returned all zeros", algo)
		}

		key := fasthex.EncodeToString(out[:])
		if prev, ok := seen[key]; ok {
			t.Errorf("%s and %s produced the same digest", prev, algo)
		}
		seen[key] = algo

		again, err := CoreSum(algo, input)
		if err != nil || again != out {
			t.Errorf("CoreSum(%s) not deterministic", algo)
		}
	}
}

func TestCoreSumInvalidIndex(t *testing.T) {
	if _, err := CoreSum(NumCoreHashes, []byte("abc")); err != ErrInvalidCoreHash {
		t.Errorf("CoreSum(15) err = %v, want ErrInvalidCoreHash", err)
	}
}
