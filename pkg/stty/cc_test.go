package stty

import (
	"errors"
	"testing"
)

func TestControlChar(t *testing.T) {
	if got := ControlChar('C'); got != 0x03 {
		t.Errorf("ControlChar('C') = %#x, want 0x03", got)
	}
	if got := ControlChar('@'); got != 0x00 {
		t.Errorf("ControlChar('@') = %#x, want 0x00", got)
	}
}

func TestCCRoundTripPrintable(t *testing.T) {
	// Every printable ASCII character maps to itself.
	for c := byte(0x20); c < 0x7f; c++ {
		s := string(rune(c))
		b, err := CCByte(s)
		if err != nil {
			t.Fatalf("CCByte(%q) failed: %v", s, err)
		}
		if got := CCString(b); got != s {
			t.Errorf("CCString(CCByte(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestCCRoundTripCaret(t *testing.T) {
	// The POSIX circumflex character list: letters (case-insensitive) and
	// the punctuation that maps into the control range.
	var chars []byte
	for c := byte('a'); c <= 'z'; c++ {
		chars = append(chars, c)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chars = append(chars, c)
	}
	chars = append(chars, '[', '\\', ']', '^', '_')

	for _, c := range chars {
		in := "^" + string(rune(c))
		want := in
		if c >= 'a' && c <= 'z' {
			want = "^" + string(rune(c-('a'-'A')))
		}

		b, err := CCByte(in)
		if err != nil {
			t.Fatalf("CCByte(%q) failed: %v", in, err)
		}
		if got := CCString(b); got != want {
			t.Errorf("CCString(CCByte(%q)) = %q, want %q", in, got, want)
		}
	}
}

func TestCCRoundTripHighBytes(t *testing.T) {
	// Bytes above DEL render as one rune but several UTF-8 bytes; the
	// rendered form must still resolve back to the same byte.
	for b := 0x80; b <= 0xff; b++ {
		if byte(b) == platformDisableChar {
			continue
		}
		s := CCString(byte(b))
		got, err := CCByte(s)
		if err != nil {
			t.Fatalf("CCByte(CCString(%#x)) = CCByte(%q) failed: %v", b, s, err)
		}
		if got != byte(b) {
			t.Errorf("CCString/CCByte round trip for %#x gave %#x", b, got)
		}
	}
}

func TestCCCaretKnownBytes(t *testing.T) {
	tests := []struct {
		in   string
		want byte
	}{
		{"^C", 0x03},
		{"^c", 0x03},
		{"^?", 0x7f},
		{"^[", 0x1b},
		{"^_", 0x1f},
	}

	for _, tt := range tests {
		got, err := CCByte(tt.in)
		if err != nil {
			t.Fatalf("CCByte(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("CCByte(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestCCUndefForms(t *testing.T) {
	for _, in := range []string{"undef", "^-"} {
		b, err := CCByte(in)
		if err != nil {
			t.Fatalf("CCByte(%q) failed: %v", in, err)
		}
		if b != platformDisableChar {
			t.Errorf("CCByte(%q) = %#x, want disable byte %#x", in, b, platformDisableChar)
		}
		if got := CCString(b); got != CCUndef {
			t.Errorf("CCString(%#x) = %q, want %q", b, got, CCUndef)
		}
	}
}

func TestCCByteInvalid(t *testing.T) {
	for _, in := range []string{"", "ab", "abc", "undefined"} {
		if _, err := CCByte(in); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("CCByte(%q) = %v, want ErrInvalidValue", in, err)
		}
	}
}
