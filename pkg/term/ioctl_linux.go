//go:build linux

package term

import "golang.org/x/sys/unix"

// tcflag matches the width of the platform termios flag and speed fields.
type tcflag = uint32

const (
	ioctlReadTermios uint = unix.TCGETS

	reqSetTermiosNow   uint = unix.TCSETS
	reqSetTermiosDrain uint = unix.TCSETSW
	reqSetTermiosFlush uint = unix.TCSETSF
)
