package decor

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/extensioncollection/kit/pkg/colorimage"
)

// Corner is a set of rounded corners.
type Corner uint8

const (
	TopLeft Corner = 1 << iota
	TopRight
	BottomLeft
	BottomRight

	AllCorners = TopLeft | TopRight | BottomLeft | BottomRight
)

func (c Corner) Has(o Corner) bool { return c&o == o }

// Border describes a stroked, optionally rounded outline.
type Border struct {
	Width   float64
	Radius  float64
	Color   color.Color
	Corners Corner
}

// DefaultBorder is a 1pt light grey outline with a radius of 10 on every corner.
func DefaultBorder() Border {
	return Border{
		Width:   1,
		Radius:  10,
		Color:   color.NRGBA{R: 194, G: 194, B: 194, A: 255},
		Corners: AllCorners,
	}
}

// ViewBorder is a 1pt transparent outline without rounding.
func ViewBorder() Border {
	return Border{
		Width:   1,
		Color:   color.Transparent,
		Corners: AllCorners,
	}
}

// RoundCorners rounds only the given corners.
func RoundCorners(corners Corner, radius float64) Border {
	b := ViewBorder()
	b.Corners = corners
	b.Radius = radius
	return b
}

// Style renders b as CSS declarations. Content is always clipped to the outline.
func (b Border) Style() string {
	c := b.Color
	if c == nil {
		c = color.Transparent
	}
	decls := []string{
		"border:" + num(b.Width) + "px solid " + colorimage.Hex(c),
		"overflow:hidden",
	}
	if b.Radius > 0 && b.Corners != 0 {
		r := num(b.Radius) + "px"
		if b.Corners == AllCorners {
			decls = append(decls, "border-radius:"+r)
		} else {
			radius := func(c Corner) string {
				if b.Corners.Has(c) {
					return r
				}
				return "0"
			}
			decls = append(decls, "border-radius:"+strings.Join([]string{
				radius(TopLeft), radius(TopRight), radius(BottomRight), radius(BottomLeft),
			}, " "))
		}
	}
	return strings.Join(decls, ";")
}

// PlaceholderColor is the default placeholder text color, near-black at 28% opacity.
func PlaceholderColor() color.NRGBA {
	return color.NRGBA{R: 27, G: 27, B: 27, A: 71}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
