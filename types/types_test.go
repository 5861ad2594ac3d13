package types

import (
	"testing"
)

func TestHashFromString(t *testing.T) {
	s := "eb14e8a833fac6fe9a43b57b336789c46ffe93f2868452240720607b14387e11"

	h, err := HashFromString(s)
	if err != nil {
		t.Fatalf("HashFromString: %v", err)
	}
	if h.String() != s {
		t.Errorf("round trip = %s, want %s", h.String(), s)
	}

	if _, err = HashFromString("abcd"); err == nil {
		t.Error("short string must fail")
	}
}

func TestHashCompare(t *testing.T) {
	// little-endian 256-bit comparison: the last byte is most significant
	var low, high Hash
	low[0] = 0xFF
	high[31] = 0x01

	if low.Compare(high) != -1 || high.Compare(low) != 1 {
		t.Error("comparison must weigh trailing bytes highest")
	}
	if low.Compare(low) != 0 {
		t.Error("equal hashes must compare as 0")
	}
}

func TestHashJSON(t *testing.T) {
	h := MustHashFromString("2f8e3df40bd11f9ac90c743ca8e32bb391da4fb98612aa3b6cdc639ee00b31f5")

	buf, err := h.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var back Hash
	if err = back.UnmarshalJSON(buf); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back != h {
		t.Errorf("round trip = %s, want %s", back, h)
	}
}
