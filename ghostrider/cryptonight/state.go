package cryptonight

import (
	"errors"

	"golang.org/x/sys/cpu"
)

// ScratchpadMax is the scratchpad size of the largest variant (cn/fast, 2 MiB).
const ScratchpadMax = 2 * 1024 * 1024

// Variant selects one of the six CryptoNight parameter sets used by
// GhostRider. The numeric values are consensus-critical: the pipeline's
// variant permutation indexes directly into this order.
type Variant int

const (
	Dark Variant = iota
	DarkLite
	Fast
	Lite
	Turtle
	TurtleLite

	NumVariants = 6
)

func (v Variant) String() string {
	switch v {
	case Dark:
		return "cn/dark"
	case DarkLite:
		return "cn/dark-lite"
	case Fast:
		return "cn/fast"
	case Lite:
		return "cn/lite"
	case Turtle:
		return "cn/turtle"
	case TurtleLite:
		return "cn/turtle-lite"
	}
	return "cn/invalid"
}

const cnIter = 0x80000

type variantParams struct {
	memory     uint32 // scratchpad bytes
	iterations uint32
	mask       uint64 // byte-offset mask, keeps addresses 16-byte aligned inside the scratchpad
	halfMem    bool   // scratchpad is logically half-sized, second half regenerated during drain
}

var variants = [NumVariants]variantParams{
	Dark:       {memory: 0x80000, iterations: cnIter / 4, mask: 0x7FFF0},
	DarkLite:   {memory: 0x80000, iterations: cnIter / 4, mask: 0x3FFF0, halfMem: true},
	Fast:       {memory: 0x200000, iterations: cnIter / 2, mask: 0x1FFFF0},
	Lite:       {memory: 0x100000, iterations: cnIter / 2, mask: 0xFFFF0},
	Turtle:     {memory: 0x40000, iterations: cnIter / 8, mask: 0x3FFF0},
	TurtleLite: {memory: 0x40000, iterations: cnIter / 8, mask: 0x1FFF0, halfMem: true},
}

// minInputLength covers the 8 tweak bytes read at input offset 35.
const minInputLength = 43

var (
	// ErrShortInput input does not carry the fixed-offset tweak material
	ErrShortInput = errors.New("cryptonight: input must be at least 43 bytes")
	// ErrInvalidVariant variant index outside 0..5
	ErrInvalidVariant = errors.New("cryptonight: variant index out of range")
)

// Context CryptoNight state, to reuse between hashes. Not thread-safe:
// each context is owned by exactly one worker for its entire lifetime.
// Every buffer is fully overwritten per hash, nothing leaks across calls.
type Context struct {
	scratchpad [ScratchpadMax / 8]uint64

	_ cpu.CacheLinePad // prevents false sharing of the hot state below

	state [25]uint64
	_     [8]byte // padded to keep 16-byte align

	saveState [16]uint64 // explode cipher blocks saved for half-memory continuation
}

// NewContext allocates a fresh per-worker hashing context.
func NewContext() *Context {
	return &Context{}
}
