package stty

// NCC is the size of the portable control-character array. It is larger than
// any supported platform's NCCS so that platform arrays always fit.
const NCC = 32

// Termios is the portable form of the raw terminal attribute block: four
// flag words, the encoded input/output speeds, and the control-character
// array. pkg/term converts it to and from the platform's native layout.
type Termios struct {
	Iflag  uint64    `json:"iflag"`
	Oflag  uint64    `json:"oflag"`
	Cflag  uint64    `json:"cflag"`
	Lflag  uint64    `json:"lflag"`
	Ispeed uint64    `json:"ispeed"`
	Ospeed uint64    `json:"ospeed"`
	Cc     [NCC]byte `json:"cc"`
}

// flag returns a pointer to the flag word selected by f.
func (t *Termios) flag(f Field) *uint64 {
	switch f {
	case FieldInput:
		return &t.Iflag
	case FieldOutput:
		return &t.Oflag
	case FieldControl:
		return &t.Cflag
	default:
		return &t.Lflag
	}
}

// Winsize is the portable form of the raw window-size block. The pixel
// dimensions are reserved and usually zero.
type Winsize struct {
	Rows   uint16 `json:"rows"`
	Cols   uint16 `json:"cols"`
	XPixel uint16 `json:"xpixel"`
	YPixel uint16 `json:"ypixel"`
}
