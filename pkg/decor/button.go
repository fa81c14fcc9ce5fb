package decor

// Size is a width and height in points.
type Size struct {
	Width, Height float64
}

// LeftTextRightImageParams feeds LeftTextRightImage. Start from
// DefaultLeftTextRightImageParams so the padding defaults are set.
type LeftTextRightImageParams struct {
	ImageWidth  float64 // width of the button's image
	BoundsWidth float64 // current width of the button

	ImageRightPadding  float64
	ImageLeftPadding   float64 // accepted for symmetry; not part of the layout
	ImageBottomPadding float64
	TitleLeftPadding   float64
	TitleBottomPadding float64

	// Width overrides BoundsWidth when non-zero.
	Width float64
}

func DefaultLeftTextRightImageParams(imageWidth, boundsWidth float64) LeftTextRightImageParams {
	return LeftTextRightImageParams{
		ImageWidth:         imageWidth,
		BoundsWidth:        boundsWidth,
		ImageRightPadding:  10,
		ImageBottomPadding: -3,
	}
}

// LeftTextRightImage returns the title and image insets that put a
// left-aligned title before an image pinned to the right edge.
//
// The bounds path also subtracts the title padding; the explicit width path
// does not.
func LeftTextRightImage(p LeftTextRightImageParams) (title, image Insets) {
	title = Insets{
		Left:   -p.ImageWidth + p.TitleLeftPadding,
		Bottom: p.TitleBottomPadding,
	}

	left := p.BoundsWidth - p.ImageWidth - p.ImageRightPadding - p.TitleLeftPadding
	if p.Width != 0 {
		left = p.Width - p.ImageWidth - p.ImageRightPadding
	}
	image = Insets{
		Left:   left,
		Bottom: p.ImageBottomPadding,
		Right:  -p.ImageRightPadding,
	}
	return title, image
}

const DefaultTextBelowSpace = 8

// AlignTextBelow returns the insets that stack the title under the image with
// space points between them.
func AlignTextBelow(imageSize, titleSize Size, space float64) (title, image Insets) {
	title = Insets{
		Top:    space,
		Left:   -imageSize.Width,
		Bottom: -imageSize.Height,
	}
	image = Insets{
		Top:   -(titleSize.Height + space),
		Right: -titleSize.Width,
	}
	return title, image
}
