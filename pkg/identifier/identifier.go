package identifier

// IsValidEmail reports whether text is an email address of the form
// local@domain.tld, where the top-level label is 2 to 64 ASCII letters.
func IsValidEmail(text string) bool {
	return patterns[Email].Match(text)
}

// IsValidPhoneNumber reports whether text is exactly 11 ASCII digits.
// Separators and surrounding whitespace are rejected.
func IsValidPhoneNumber(text string) bool {
	return patterns[PhoneNumber].Match(text)
}

// PlateOption configures IsValidVehiclePlate.
type PlateOption func(*plateConfig)

type plateConfig struct {
	business      bool
	strictRegions bool
}

// WithBusinessUse selects the business (true) or personal (false) grammar.
// Business use is the default.
func WithBusinessUse(business bool) PlateOption {
	return func(c *plateConfig) { c.business = business }
}

// WithPersonalUse is shorthand for WithBusinessUse(false).
func WithPersonalUse() PlateOption {
	return WithBusinessUse(false)
}

// WithVehicleUse maps a VehicleUse value onto the business flag.
func WithVehicleUse(use VehicleUse) PlateOption {
	return WithBusinessUse(use != PersonalUse)
}

// WithStrictRegions makes the old business format require one of the sixteen
// whole region names instead of any two characters taken from them.
// It has no effect on personal plates.
func WithStrictRegions() PlateOption {
	return func(c *plateConfig) { c.strictRegions = true }
}

// IsValidVehiclePlate reports whether text is a vehicle registration plate.
//
// Under business use (the default) the old format is tried first and then the
// new one; personal plates are never considered. Under personal use only the
// personal format is tried.
func IsValidVehiclePlate(text string, opts ...PlateOption) bool {
	cfg := plateConfig{business: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !cfg.business {
		return patterns[PersonalVehiclePlate].Match(text)
	}

	old := patterns[BusinessVehiclePlateOld]
	if cfg.strictRegions {
		old = strictBusinessPlateOld
	}
	if old.Match(text) {
		return true
	}
	return patterns[BusinessVehiclePlateNew].Match(text)
}

// Match reports whether text matches the pattern of a single kind.
// Unknown kinds never match.
func Match(kind Kind, text string) bool {
	p, ok := PatternFor(kind)
	if !ok {
		return false
	}
	return p.Match(text)
}

// Classify returns every kind whose pattern matches text, in kind order.
func Classify(text string) []Kind {
	var kinds []Kind
	for _, k := range Kinds() {
		if patterns[k].Match(text) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Request is a single validation call in data form.
type Request struct {
	Input      string
	Category   Category
	VehicleUse VehicleUse
}

// Result carries the outcome of Validate.
type Result struct {
	Matched bool
}

// Validate dispatches req to the classifier for its category.
// Unknown categories yield an unmatched result.
func Validate(req Request) Result {
	switch req.Category {
	case CategoryEmail:
		return Result{Matched: IsValidEmail(req.Input)}
	case CategoryPhone:
		return Result{Matched: IsValidPhoneNumber(req.Input)}
	case CategoryVehicle:
		return Result{Matched: IsValidVehiclePlate(req.Input, WithVehicleUse(req.VehicleUse))}
	default:
		return Result{}
	}
}
