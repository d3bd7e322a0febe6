//go:build linux

package system

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const kdSetMode = 0x4B3A // KDSETMODE ioctl

// Active virtual terminal first, then the console.
var consolePaths = []string{"/dev/tty", "/dev/tty0"}

func setConsoleMode(mode int) error {
	var errs []error
	for _, path := range consolePaths {
		fd, err := unix.Open(path, unix.O_RDONLY, 0)
		if err != nil {
			errs = append(errs, fmt.Errorf("open %s: %w", path, err))
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			errs = append(errs, fmt.Errorf("KDSETMODE %d on %s: %w", mode, path, err))
			continue
		}
		return nil
	}
	return errors.Join(errs...)
}

func writeConsole(seq string) error {
	var errs []error
	for _, path := range consolePaths {
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		_, err = f.WriteString(seq)
		_ = f.Close()
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
