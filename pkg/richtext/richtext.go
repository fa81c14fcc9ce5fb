package richtext

import (
	"context"
	"image/color"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/extensioncollection/kit/pkg/colorimage"
)

const (
	WeightRegular = 400
	WeightBold    = 700
)

// Font replaces the font of a range. A zero Family means the system font.
type Font struct {
	Family string
	Size   float64
	Weight int
}

// Span is one styling call. Start and End are byte offsets into the text.
// Nil fields were not set by the call.
type Span struct {
	Start, End     int
	Font           *Font
	Color          color.Color
	Underline      bool
	UnderlineColor color.Color
	BaselineOffset *float64
}

// Text is a string with styled ranges. The zero value is an empty text.
type Text struct {
	s           string
	spans       []Span
	lineSpacing float64
}

func New(s string) *Text {
	return &Text{s: s}
}

func (t *Text) String() string { return t.s }

// Spans returns a copy of the applied spans in call order.
func (t *Text) Spans() []Span {
	return slices.Clone(t.spans)
}

func (t *Text) LineSpacingValue() float64 { return t.lineSpacing }

func (t *Text) add(sub string, span Span) *Text {
	if sub == "" {
		return t
	}
	i := strings.Index(t.s, sub)
	if i < 0 {
		return t
	}
	span.Start, span.End = i, i+len(sub)
	t.spans = append(t.spans, span)
	return t
}

// Bold sets a bold system font of the given size on sub.
func (t *Text) Bold(sub string, size float64) *Text {
	return t.add(sub, Span{Font: &Font{Size: size, Weight: WeightBold}})
}

func (t *Text) Color(sub string, c color.Color) *Text {
	if c == nil {
		return t
	}
	return t.add(sub, Span{Color: c})
}

// SizeOption adjusts a Size call.
type SizeOption func(*sizeConfig)

type sizeConfig struct {
	family string
	weight int
	offset float64
}

func WithFamily(family string) SizeOption {
	return func(c *sizeConfig) { c.family = family }
}

func WithWeight(weight int) SizeOption {
	return func(c *sizeConfig) { c.weight = weight }
}

// WithOffset shifts the baseline of the resized text up by offset points.
func WithOffset(offset float64) SizeOption {
	return func(c *sizeConfig) { c.offset = offset }
}

// Size sets the font of sub. Without options it is the regular-weight system
// font with no baseline offset.
func (t *Text) Size(sub string, size float64, opts ...SizeOption) *Text {
	cfg := sizeConfig{weight: WeightRegular}
	for _, opt := range opts {
		opt(&cfg)
	}
	offset := cfg.offset
	return t.add(sub, Span{
		Font:           &Font{Family: cfg.family, Size: size, Weight: cfg.weight},
		BaselineOffset: &offset,
	})
}

// Underline draws a single underline under sub. A nil color uses the text color.
func (t *Text) Underline(sub string, c color.Color) *Text {
	return t.add(sub, Span{Underline: true, UnderlineColor: c})
}

// LineSpacing sets extra space between lines for the whole text. Overflow is
// truncated at the tail.
func (t *Text) LineSpacing(space float64) *Text {
	t.lineSpacing = space
	return t
}

type segment struct {
	text  string
	style Span
}

// segments cuts the text at every span boundary and merges the spans
// covering each piece in call order.
func (t *Text) segments() []segment {
	cuts := []int{0, len(t.s)}
	for _, sp := range t.spans {
		cuts = append(cuts, sp.Start, sp.End)
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	out := make([]segment, 0, len(cuts))
	for i := 0; i+1 < len(cuts); i++ {
		from, to := cuts[i], cuts[i+1]
		var st Span
		for _, sp := range t.spans {
			if sp.Start <= from && to <= sp.End {
				merge(&st, sp)
			}
		}
		out = append(out, segment{text: t.s[from:to], style: st})
	}
	return out
}

func merge(dst *Span, src Span) {
	if src.Font != nil {
		dst.Font = src.Font
	}
	if src.Color != nil {
		dst.Color = src.Color
	}
	if src.Underline {
		dst.Underline = true
		dst.UnderlineColor = src.UnderlineColor
	}
	if src.BaselineOffset != nil {
		dst.BaselineOffset = src.BaselineOffset
	}
}

func css(sp Span) string {
	var decls []string
	if f := sp.Font; f != nil {
		if f.Family != "" {
			decls = append(decls, "font-family:"+strconv.Quote(f.Family))
		}
		decls = append(decls,
			"font-size:"+px(f.Size),
			"font-weight:"+strconv.Itoa(f.Weight),
		)
	}
	if sp.Color != nil {
		decls = append(decls, "color:"+colorimage.Hex(sp.Color))
	}
	if sp.Underline {
		decls = append(decls, "text-decoration:underline")
		if sp.UnderlineColor != nil {
			decls = append(decls, "text-decoration-color:"+colorimage.Hex(sp.UnderlineColor))
		}
	}
	if sp.BaselineOffset != nil && *sp.BaselineOffset != 0 {
		decls = append(decls, "vertical-align:"+px(*sp.BaselineOffset))
	}
	return strings.Join(decls, ";")
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// HTML renders the text as escaped HTML with inline styles.
func (t *Text) HTML() string {
	var b strings.Builder
	if t.lineSpacing > 0 {
		b.WriteString(`<span style="display:block;line-height:calc(1em + `)
		b.WriteString(px(t.lineSpacing))
		b.WriteString(`);overflow:hidden;text-overflow:ellipsis">`)
	}
	for _, seg := range t.segments() {
		style := css(seg.style)
		if style == "" {
			b.WriteString(templ.EscapeString(seg.text))
			continue
		}
		b.WriteString(`<span style="`)
		b.WriteString(templ.EscapeString(style))
		b.WriteString(`">`)
		b.WriteString(templ.EscapeString(seg.text))
		b.WriteString(`</span>`)
	}
	if t.lineSpacing > 0 {
		b.WriteString(`</span>`)
	}
	return b.String()
}

// Component renders HTML inside templ pages.
func (t *Text) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, t.HTML())
		return err
	})
}
