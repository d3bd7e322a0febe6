//go:build !linux

package system

import "errors"

var errNoConsole = errors.New("console control is only supported on linux")

func setConsoleMode(int) error  { return errNoConsole }
func writeConsole(string) error { return errNoConsole }
