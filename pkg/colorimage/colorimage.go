// Package colorimage produces solid-color images, typically 1x1 pixels used
// as backgrounds or placeholders.
package colorimage

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"strings"
)

var (
	ErrInvalidSize    = errors.New("colorimage: width and height must be positive")
	ErrInvalidHex     = errors.New("colorimage: invalid hex color")
	ErrFailedToEncode = errors.New("colorimage: failed to encode png")
)

// Solid returns a w by h image filled with c. Non-positive sizes yield an
// empty image and a nil color is transparent.
func Solid(c color.Color, w, h int) *image.RGBA {
	if c == nil {
		c = color.Transparent
	}
	img := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// OnePixel is Solid(c, 1, 1).
func OnePixel(c color.Color) *image.RGBA {
	return Solid(c, 1, 1)
}

// PNG encodes a solid w by h image.
func PNG(c color.Color, w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, Solid(c, w, h)); err != nil {
		return nil, errors.Join(ErrFailedToEncode, err)
	}
	return buf.Bytes(), nil
}

// DataURI returns the PNG as a data URI suitable for an img src attribute:
//
//	<img src="{{.Placeholder}}">
func DataURI(c color.Color, w, h int) (string, error) {
	b, err := PNG(c, w, h)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA". The leading '#' is
// optional. Colors without an alpha component are opaque.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when c is not opaque.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
