// Package term implements the device boundary of pkg/stty for real
// terminals: fetching and applying raw attribute and window-size blocks
// with the platform's termios ioctls.
package term
