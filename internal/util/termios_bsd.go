//go:build darwin || freebsd || openbsd || netbsd || dragonfly

package util

import "syscall"

const ioctlReadTermios = syscall.TIOCGETA
