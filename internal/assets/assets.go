package assets

import (
	"fmt"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// Font names accepted by Face.
const (
	FontBasic          = "basic"
	FontGoMono         = "gomono"
	FontGoMonoFreetype = "gomono-tt"
)

// DefaultFontSize is used for scalable fonts when no size is given.
const DefaultFontSize = 15

// Face returns the label font called name. Scalable fonts are rasterized at
// sizePt points and 72 DPI, so one point is one pixel.
func Face(name string, sizePt float64) (font.Face, error) {
	if sizePt <= 0 {
		sizePt = DefaultFontSize
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FontBasic:
		return basicfont.Face7x13, nil
	case FontGoMono:
		fnt, err := opentype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse go mono: %w", err)
		}
		face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: sizePt, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return nil, fmt.Errorf("go mono face: %w", err)
		}
		return face, nil
	case FontGoMonoFreetype:
		tt, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("truetype parse go mono: %w", err)
		}
		return truetype.NewFace(tt, &truetype.Options{Size: sizePt, DPI: 72, Hinting: font.HintingFull}), nil
	default:
		return nil, fmt.Errorf("unknown font %q (want %s, %s or %s)", name, FontBasic, FontGoMono, FontGoMonoFreetype)
	}
}
