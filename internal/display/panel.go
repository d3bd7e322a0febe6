package display

import (
	"errors"
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

// Panel presents frames on any periph display driver. The frame is scaled
// into the panel bounds and converted by the driver's color model.
type Panel struct {
	Dev display.Drawer

	bus    i2c.BusCloser
	buffer *image.RGBA
}

// OpenSSD1306 initializes the host drivers and opens a 128x64 SSD1306 on
// the named I2C bus ("" picks the first one).
func OpenSSD1306(busName string) (*Panel, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}
	opts := ssd1306.DefaultOpts
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("ssd1306: %w", err)
	}
	return &Panel{Dev: dev, bus: bus}, nil
}

func (p *Panel) Present(img image.Image) error {
	bounds := p.Dev.Bounds()
	if p.buffer == nil || p.buffer.Bounds() != bounds {
		p.buffer = image.NewRGBA(bounds)
	}
	blit(p.buffer, img, img.At(img.Bounds().Min.X, img.Bounds().Min.Y))
	if err := p.Dev.Draw(bounds, p.buffer, bounds.Min); err != nil {
		return fmt.Errorf("%s: %w", p.Dev, err)
	}
	return nil
}

func (p *Panel) Close() error {
	err := p.Dev.Halt()
	if p.bus != nil {
		err = errors.Join(err, p.bus.Close())
	}
	return err
}
