//go:build linux

package term

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// OpenPty opens a pseudo-terminal pair and returns the controller side, the
// terminal side, and the terminal side's path. Useful for exercising
// attribute changes without a controlling terminal.
func OpenPty() (ptm, pts *os.File, name string, err error) {
	ptm, err = os.OpenFile("/dev/ptmx", os.O_RDWR, 0)
	if err != nil {
		return nil, nil, "", err
	}

	n, err := unix.IoctlGetInt(int(ptm.Fd()), unix.TIOCGPTN)
	if err != nil {
		ptm.Close()
		return nil, nil, "", err
	}
	name = "/dev/pts/" + strconv.Itoa(n)

	if err = unix.IoctlSetPointerInt(int(ptm.Fd()), unix.TIOCSPTLCK, 0); err != nil {
		ptm.Close()
		return nil, nil, "", err
	}

	pts, err = os.OpenFile(name, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		ptm.Close()
		return nil, nil, "", err
	}
	return ptm, pts, name, nil
}
