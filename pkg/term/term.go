//go:build linux || darwin

package term

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/ttykit/ttykit-go/pkg/stty"
)

// TTY is an open terminal device. It implements stty.Device.
type TTY struct {
	f *os.File
}

// Compile-time interface satisfaction check.
var _ stty.Device = (*TTY)(nil)

// Open opens the terminal device at path, e.g. "/dev/tty".
func Open(path string) (*TTY, error) {
	f, err := os.OpenFile(path, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, err
	}
	return &TTY{f: f}, nil
}

// NewTTY wraps an already-open terminal file. The caller keeps ownership
// of f.
func NewTTY(f *os.File) *TTY {
	return &TTY{f: f}
}

// File returns the underlying terminal file.
func (t *TTY) File() *os.File {
	return t.f
}

// Fd returns the terminal file descriptor.
func (t *TTY) Fd() int {
	return int(t.f.Fd())
}

// Close closes the terminal device.
func (t *TTY) Close() error {
	return t.f.Close()
}

// Termios reads the raw attribute block from the terminal.
func (t *TTY) Termios() (stty.Termios, error) {
	u, err := unix.IoctlGetTermios(t.Fd(), ioctlReadTermios)
	if err != nil {
		return stty.Termios{}, err
	}
	return fromUnix(u), nil
}

// SetTermios applies a raw attribute block with the given timing policy.
func (t *TTY) SetTermios(raw stty.Termios, when stty.When) error {
	u := toUnix(raw)
	return unix.IoctlSetTermios(t.Fd(), writeRequest(when), &u)
}

// HasWinsize reports window-size ioctl support.
func (t *TTY) HasWinsize() bool {
	return true
}

// Winsize reads the raw window-size block from the terminal.
func (t *TTY) Winsize() (stty.Winsize, error) {
	ws, err := unix.IoctlGetWinsize(t.Fd(), unix.TIOCGWINSZ)
	if err != nil {
		return stty.Winsize{}, err
	}
	return stty.Winsize{
		Rows:   ws.Row,
		Cols:   ws.Col,
		XPixel: ws.Xpixel,
		YPixel: ws.Ypixel,
	}, nil
}

// SetWinsize applies a raw window-size block to the terminal.
func (t *TTY) SetWinsize(ws stty.Winsize) error {
	return unix.IoctlSetWinsize(t.Fd(), unix.TIOCSWINSZ, &unix.Winsize{
		Row:    ws.Rows,
		Col:    ws.Cols,
		Xpixel: ws.XPixel,
		Ypixel: ws.YPixel,
	})
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// writeRequest maps a timing policy onto the platform's tcsetattr ioctl.
func writeRequest(when stty.When) uint {
	switch when {
	case stty.TCSADrain:
		return reqSetTermiosDrain
	case stty.TCSAFlush:
		return reqSetTermiosFlush
	default:
		return reqSetTermiosNow
	}
}

// fromUnix converts the platform attribute block to the portable form.
func fromUnix(u *unix.Termios) stty.Termios {
	t := stty.Termios{
		Iflag:  uint64(u.Iflag),
		Oflag:  uint64(u.Oflag),
		Cflag:  uint64(u.Cflag),
		Lflag:  uint64(u.Lflag),
		Ispeed: uint64(u.Ispeed),
		Ospeed: uint64(u.Ospeed),
	}
	for i := 0; i < len(u.Cc) && i < len(t.Cc); i++ {
		t.Cc[i] = u.Cc[i]
	}
	return t
}

// toUnix converts the portable attribute block to the platform form.
func toUnix(t stty.Termios) unix.Termios {
	var u unix.Termios
	u.Iflag = tcflag(t.Iflag)
	u.Oflag = tcflag(t.Oflag)
	u.Cflag = tcflag(t.Cflag)
	u.Lflag = tcflag(t.Lflag)
	u.Ispeed = tcflag(t.Ispeed)
	u.Ospeed = tcflag(t.Ospeed)
	for i := 0; i < len(u.Cc) && i < len(t.Cc); i++ {
		u.Cc[i] = t.Cc[i]
	}
	return u
}
