package identifier

import "regexp"

// Pattern is an immutable, compiled identifier grammar.
type Pattern struct {
	kind        Kind
	re          *regexp.Regexp
	description string
}

// Kind returns the identifier kind this pattern classifies.
func (p *Pattern) Kind() Kind { return p.kind }

// Expression returns the source text of the regular expression.
func (p *Pattern) Expression() string { return p.re.String() }

// Description returns a short human readable summary of the format.
func (p *Pattern) Description() string { return p.description }

// Match reports whether text conforms to the pattern in full.
func (p *Pattern) Match(text string) bool {
	return p.re.MatchString(text)
}

const (
	emailExpr = `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`
	phoneExpr = `^[0-9]{11}$`

	// Plate digits are any Unicode decimal digit; phone digits are ASCII only.
	// The leading bracket is a character class, not an alternation. See package docs.
	businessPlateOldExpr = `^[서울|부산|대구|인천|대전|광주|울산|제주|경기|강원|충남|전남|전북|경남|경북|세종]{2}(8([0-7])|9(8|9))[아바사자]\p{Nd}{4}$`
	businessPlateNewExpr = `^\p{Nd}{3}[아바사자]\p{Nd}{4}$`
	personalPlateExpr    = `^\p{Nd}{2,3}[가-힣]\p{Nd}{4}$`

	businessPlateOldStrictExpr = `^(서울|부산|대구|인천|대전|광주|울산|제주|경기|강원|충남|전남|전북|경남|경북|세종)(8([0-7])|9(8|9))[아바사자]\p{Nd}{4}$`
)

// patterns is indexed by Kind. Index 0 is unused.
var patterns = [...]*Pattern{
	Email: {
		kind:        Email,
		re:          regexp.MustCompile(emailExpr),
		description: "email address",
	},
	PhoneNumber: {
		kind:        PhoneNumber,
		re:          regexp.MustCompile(phoneExpr),
		description: "11-digit mobile number without separators",
	},
	BusinessVehiclePlateOld: {
		kind:        BusinessVehiclePlateOld,
		re:          regexp.MustCompile(businessPlateOldExpr),
		description: "old business vehicle plate (region, use code, class syllable, 4 digits)",
	},
	BusinessVehiclePlateNew: {
		kind:        BusinessVehiclePlateNew,
		re:          regexp.MustCompile(businessPlateNewExpr),
		description: "new business vehicle plate (3 digits, class syllable, 4 digits)",
	},
	PersonalVehiclePlate: {
		kind:        PersonalVehiclePlate,
		re:          regexp.MustCompile(personalPlateExpr),
		description: "personal vehicle plate (2-3 digits, Hangul syllable, 4 digits)",
	},
}

var strictBusinessPlateOld = &Pattern{
	kind:        BusinessVehiclePlateOld,
	re:          regexp.MustCompile(businessPlateOldStrictExpr),
	description: "old business vehicle plate with a whole region name",
}

// PatternFor returns the pattern registered for kind.
func PatternFor(kind Kind) (*Pattern, bool) {
	if !kind.Valid() {
		return nil, false
	}
	return patterns[kind], true
}

// Patterns returns every pattern in kind order.
// The slice is fresh on each call; the patterns are shared and read-only.
func Patterns() []*Pattern {
	out := make([]*Pattern, 0, len(kindNames))
	for _, k := range Kinds() {
		out = append(out, patterns[k])
	}
	return out
}

// StrictBusinessPlateOld returns the region-name alternation variant of the
// old business plate pattern used by WithStrictRegions.
func StrictBusinessPlateOld() *Pattern {
	return strictBusinessPlateOld
}
