// Package richtext styles parts of a string and renders the result as HTML.
//
// Each styling call targets the first occurrence of a substring; a substring
// that does not occur (or is empty) leaves the text unchanged. Calls chain and
// later styles win where they overlap:
//
//	t := richtext.New("총 결제 금액 12,000원").
//		Bold("12,000원", 18).
//		Color("12,000원", brand).
//		LineSpacing(4)
//
//	templ.Handler(t.Component())
//
// The rendered HTML is escaped, so user text can be passed in directly.
package richtext
