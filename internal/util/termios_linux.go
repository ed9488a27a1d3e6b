//go:build !windows && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

package util

import "syscall"

const ioctlReadTermios = syscall.TCGETS
