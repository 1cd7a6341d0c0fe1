package stty

// When selects the timing policy for applying a raw attribute block to a
// device. The semantics are exactly those of the three POSIX tcsetattr
// actions; scripts depend on them for safe attribute changes during
// active I/O.
type When int

const (
	// TCSANow applies the change immediately.
	TCSANow When = iota

	// TCSADrain applies the change after pending output has drained.
	TCSADrain

	// TCSAFlush applies the change after pending output has drained,
	// discarding pending input.
	TCSAFlush
)

// String returns the POSIX action name.
func (w When) String() string {
	switch w {
	case TCSANow:
		return "TCSANOW"
	case TCSADrain:
		return "TCSADRAIN"
	case TCSAFlush:
		return "TCSAFLUSH"
	}
	return "unknown"
}

// Device is the boundary to an open terminal. pkg/term implements it with
// the platform ioctls; tests implement it in memory. A Device is borrowed
// only for the duration of a single fetch or apply call; the caller owns
// its lifetime.
type Device interface {
	// Termios reads the raw attribute block from the device.
	Termios() (Termios, error)

	// SetTermios applies a raw attribute block to the device with the
	// given timing policy.
	SetTermios(t Termios, when When) error

	// HasWinsize reports whether the device supports the window-size
	// queries below.
	HasWinsize() bool

	// Winsize reads the raw window-size block from the device.
	Winsize() (Winsize, error)

	// SetWinsize applies a raw window-size block to the device.
	SetWinsize(ws Winsize) error
}
