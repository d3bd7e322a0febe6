package web

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

var errEmptyURL = errors.New("web: empty URL")

// TerminalQR renders url as a QR code made of half-block characters, so a
// phone can open the simulator from the terminal it was started in.
func TerminalQR(url string) (string, error) {
	if url == "" {
		return "", errEmptyURL
	}
	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", err
	}
	return code.ToSmallString(false), nil
}
