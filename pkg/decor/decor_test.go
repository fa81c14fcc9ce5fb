package decor_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/extensioncollection/kit/pkg/decor"
)

func TestBorder(t *testing.T) {
	t.Parallel()

	b := decor.DefaultBorder()
	assert.Equal(t, float64(1), b.Width)
	assert.Equal(t, float64(10), b.Radius)
	assert.Equal(t, color.NRGBA{R: 194, G: 194, B: 194, A: 255}, b.Color)
	assert.Equal(t, "border:1px solid #c2c2c2;overflow:hidden;border-radius:10px", b.Style())

	v := decor.ViewBorder()
	assert.Equal(t, float64(0), v.Radius)
	assert.Equal(t, "border:1px solid #00000000;overflow:hidden", v.Style())

	r := decor.RoundCorners(decor.TopLeft|decor.BottomRight, 6)
	assert.Equal(t, "border:1px solid #00000000;overflow:hidden;border-radius:6px 0 6px 0", r.Style())

	assert.Equal(t, "border:0px solid #00000000;overflow:hidden", decor.Border{}.Style())
}

func TestCorner(t *testing.T) {
	t.Parallel()

	assert.True(t, decor.AllCorners.Has(decor.TopRight))
	assert.True(t, decor.AllCorners.Has(decor.TopLeft|decor.BottomLeft))
	assert.False(t, decor.TopLeft.Has(decor.TopRight))
}

func TestInsets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, decor.Insets{Top: 15, Left: 15, Bottom: 15, Right: 15}, decor.TextViewInsets())
	assert.Equal(t, decor.Insets{Left: 10}, decor.LeftPadding(0))
	assert.Equal(t, decor.Insets{Left: 24}, decor.LeftPadding(24))
	assert.Equal(t, "padding:1px 4px 3px 2px", decor.Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}.Padding())
	assert.Equal(t, color.NRGBA{R: 27, G: 27, B: 27, A: 71}, decor.PlaceholderColor())
}

func TestLeftTextRightImage(t *testing.T) {
	t.Parallel()

	t.Run("bounds width", func(t *testing.T) {
		t.Parallel()
		p := decor.DefaultLeftTextRightImageParams(20, 200)
		p.TitleLeftPadding = 4
		title, image := decor.LeftTextRightImage(p)
		assert.Equal(t, decor.Insets{Left: -16}, title)
		assert.Equal(t, decor.Insets{Left: 166, Bottom: -3, Right: -10}, image)
	})

	t.Run("explicit width ignores title padding", func(t *testing.T) {
		t.Parallel()
		p := decor.DefaultLeftTextRightImageParams(20, 200)
		p.TitleLeftPadding = 4
		p.TitleBottomPadding = 2
		p.Width = 300
		title, image := decor.LeftTextRightImage(p)
		assert.Equal(t, decor.Insets{Left: -16, Bottom: 2}, title)
		assert.Equal(t, decor.Insets{Left: 270, Bottom: -3, Right: -10}, image)
	})
}

func TestAlignTextBelow(t *testing.T) {
	t.Parallel()

	title, image := decor.AlignTextBelow(
		decor.Size{Width: 24, Height: 24},
		decor.Size{Width: 40, Height: 14},
		decor.DefaultTextBelowSpace,
	)
	assert.Equal(t, decor.Insets{Top: 8, Left: -24, Bottom: -24}, title)
	assert.Equal(t, decor.Insets{Top: -22, Right: -40}, image)
}
