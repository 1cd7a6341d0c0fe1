package stty

import (
	"fmt"
	"unicode/utf8"
)

// del is the DEL byte, written "^?" in caret notation.
const del byte = 0x7f

// CCUndef is the symbolic form of a disabled control character.
const CCUndef = "undef"

// ControlChar returns the control code of c, e.g. ControlChar('C') == 0x03.
func ControlChar(c byte) byte {
	return c & 0x1f
}

// CCByte resolves the symbolic form of a control character to its raw byte.
// Accepted forms are a one-character string whose character value fits in a
// byte, the two-character caret notation "^X" (letter case-insensitive,
// with the POSIX special cases "^?" for DEL and "^-" for a disabled
// character), and the string "undef", which also means disabled.
func CCByte(s string) (byte, error) {
	if s == CCUndef {
		return platformDisableChar, nil
	}

	if len(s) == 1 {
		return s[0], nil
	}

	if len(s) == 2 && s[0] == '^' {
		switch c := s[1]; c {
		case '?':
			return del, nil
		case '-':
			return platformDisableChar, nil
		default:
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			return ControlChar(c), nil
		}
	}

	// Bytes above 0x7f render as one rune but more than one UTF-8 byte;
	// accept that form back so CCString output always resolves.
	if r, size := utf8.DecodeRuneInString(s); size == len(s) && r <= 0xff {
		return byte(r), nil
	}

	return 0, fmt.Errorf("%w: %q is not a control character form", ErrInvalidValue, s)
}

// CCString returns the symbolic form of a raw control-character byte:
// "undef" for the platform's disabled value, caret notation for control
// codes and DEL, and the character itself otherwise.
func CCString(b byte) string {
	switch {
	case b == platformDisableChar:
		return CCUndef
	case b == del:
		return "^?"
	case b < 0x20:
		return "^" + string(rune('@'+b))
	default:
		return string(rune(b))
	}
}
