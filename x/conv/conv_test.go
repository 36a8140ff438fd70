package conv

import "testing"

func TestItoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-74, "-74"},
		{1234567890, "1234567890"},
	} {
		if got := string(Itoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Itoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestAppendHex32(t *testing.T) {
	got := string(AppendHex32([]byte("0x"), 0xFF30CF))
	if got != "0x00FF30CF" {
		t.Fatalf("AppendHex32 = %q", got)
	}
	if got := string(U32Hex(make([]byte, 4), 1)); got != "" {
		t.Fatalf("short buffer should yield empty, got %q", got)
	}
}

func TestAppendDecimal(t *testing.T) {
	for _, c := range []struct {
		n    int64
		frac int
		want string
	}{
		{43392, 2, "433.92"},
		{31500, 2, "315.00"},
		{5, 2, "0.05"},
		{0, 2, "0.00"},
		{-150, 2, "-1.50"},
		{42, 0, "42"},
	} {
		if got := string(AppendDecimal(nil, c.n, c.frac)); got != c.want {
			t.Fatalf("AppendDecimal(%d, %d) = %q, want %q", c.n, c.frac, got, c.want)
		}
	}
}
