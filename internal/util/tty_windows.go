package util

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

var procSetStdHandle = syscall.NewLazyDLL("kernel32.dll").NewProc("SetStdHandle")

func isTerminal(fd uintptr) bool {
	var mode uint32
	return syscall.GetConsoleMode(syscall.Handle(fd), &mode) == nil
}

func setStdin(f *os.File) error {
	os.Stdin = f
	syscall.Stdin = syscall.Handle(f.Fd())
	r1, _, err := procSetStdHandle.Call(uintptr(syscall.STD_INPUT_HANDLE), uintptr(syscall.Stdin))
	if r1 == 0 {
		return errors.Wrap(err, "failed to call SetStdHandle")
	}
	return nil
}

// acquireTerminal points stdin at the console for the lifetime of the
// picker, so that items piped through stdin do not hide the keyboard.
func acquireTerminal() (func(), error) {
	conin, err := os.Open("CONIN$")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open console input")
	}

	saved := os.Stdin
	if err := setStdin(conin); err != nil {
		conin.Close()
		return nil, err
	}

	return func() {
		_ = setStdin(saved)
		conin.Close()
	}, nil
}
