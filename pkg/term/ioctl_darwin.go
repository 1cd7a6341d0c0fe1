//go:build darwin

package term

import "golang.org/x/sys/unix"

// tcflag matches the width of the platform termios flag and speed fields.
type tcflag = uint64

const (
	ioctlReadTermios uint = unix.TIOCGETA

	reqSetTermiosNow   uint = unix.TIOCSETA
	reqSetTermiosDrain uint = unix.TIOCSETAW
	reqSetTermiosFlush uint = unix.TIOCSETAF
)
