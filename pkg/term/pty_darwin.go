//go:build darwin

package term

import (
	"os"
	"syscall"
	"unsafe"
)

// OpenPty opens a pseudo-terminal pair and returns the controller side, the
// terminal side, and the terminal side's path. Useful for exercising
// attribute changes without a controlling terminal.
func OpenPty() (ptm, pts *os.File, name string, err error) {
	ptm, err = os.OpenFile("/dev/ptmx", os.O_RDWR, 0)
	if err != nil {
		return nil, nil, "", err
	}

	// TIOCPTYGNAME fills a fixed 128-byte path buffer.
	var buf [128]byte
	if err = ptyIoctl(ptm.Fd(), syscall.TIOCPTYGNAME, uintptr(unsafe.Pointer(&buf[0]))); err != nil {
		ptm.Close()
		return nil, nil, "", err
	}
	for i, b := range buf {
		if b == 0 {
			name = string(buf[:i])
			break
		}
	}

	if err = ptyIoctl(ptm.Fd(), syscall.TIOCPTYGRANT, 0); err != nil {
		ptm.Close()
		return nil, nil, "", err
	}
	if err = ptyIoctl(ptm.Fd(), syscall.TIOCPTYUNLK, 0); err != nil {
		ptm.Close()
		return nil, nil, "", err
	}

	pts, err = os.OpenFile(name, os.O_RDWR|syscall.O_NOCTTY, 0)
	if err != nil {
		ptm.Close()
		return nil, nil, "", err
	}
	return ptm, pts, name, nil
}

// ptyIoctl issues a raw ioctl. golang.org/x/sys/unix has no pointer-argument
// ioctl wrapper for the TIOCPTY* requests on this platform.
func ptyIoctl(fd uintptr, req uint, arg uintptr) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(req), arg); errno != 0 {
		return errno
	}
	return nil
}
