package decor

// Insets are edge distances in points. Negative values pull content outward.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Uniform returns v on every edge.
func Uniform(v float64) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// TextViewInsets is the default text container inset of 15 on every edge.
func TextViewInsets() Insets {
	return Uniform(15)
}

const DefaultLeftPadding = 10

// LeftPadding insets the leading edge of a text field. Non-positive widths
// use DefaultLeftPadding.
func LeftPadding(width float64) Insets {
	if width <= 0 {
		width = DefaultLeftPadding
	}
	return Insets{Left: width}
}

// Padding renders i as a CSS padding declaration.
func (i Insets) Padding() string {
	return "padding:" + num(i.Top) + "px " + num(i.Right) + "px " + num(i.Bottom) + "px " + num(i.Left) + "px"
}
