package system

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
)

const (
	hideCursorSeq = "\x1b[?25l"
	showCursorSeq = "\x1b[?25h"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Console switches the virtual terminal into graphics mode while the clock
// owns the framebuffer, so the blinking text cursor does not bleed through.
type Console struct {
	Logger logger
}

// Acquire enters graphics mode and hides the cursor. Failures are logged
// and returned but leave the console usable.
func (c Console) Acquire() error {
	err := c.step("KD_GRAPHICS", setConsoleMode(kdGraphics))
	if cerr := c.step("hide cursor", writeConsole(hideCursorSeq)); err == nil {
		err = cerr
	}
	return err
}

// Release restores the cursor and text mode.
func (c Console) Release() error {
	err := c.step("show cursor", writeConsole(showCursorSeq))
	if terr := c.step("KD_TEXT", setConsoleMode(kdText)); err == nil {
		err = terr
	}
	return err
}

func (c Console) step(name string, err error) error {
	if c.Logger == nil {
		return err
	}
	if err != nil {
		c.Logger.Errorf("tty", "%s failed: %v", name, err)
	} else {
		c.Logger.Infof("tty", "%s done", name)
	}
	return err
}
