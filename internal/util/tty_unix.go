//go:build !windows

package util

import (
	"syscall"
	"unsafe"
)

func isTerminal(fd uintptr) bool {
	var termios syscall.Termios
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, ioctlReadTermios, uintptr(unsafe.Pointer(&termios)))
	return errno == 0
}

// tcell opens /dev/tty on its own, there is nothing to swap
func acquireTerminal() (func(), error) {
	return func() {}, nil
}
