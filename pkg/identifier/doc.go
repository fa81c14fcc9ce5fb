// Package identifier classifies user input against a fixed table of
// locale-specific identifier formats: email addresses, 11-digit domestic
// mobile numbers, and the three Korean vehicle registration plate formats.
//
// Every classifier is a total, side-effect free function that returns a
// boolean. Malformed or empty input simply does not match; there is no error
// channel.
//
// # Pattern table
//
// The five patterns are compiled once at package initialization and never
// mutated afterwards, so every function in this package is safe for concurrent
// use without locking. All patterns are anchored: a match must consume the
// whole input, a matching substring is not enough.
//
// # Usage
//
//	identifier.IsValidEmail("user@example.com")             // true
//	identifier.IsValidPhoneNumber("01012345678")            // true
//	identifier.IsValidVehiclePlate("123아4567")              // true, business use by default
//	identifier.IsValidVehiclePlate("12가3456", identifier.WithPersonalUse()) // true
//
// Request-shaped callers can use Validate:
//
//	res := identifier.Validate(identifier.Request{
//		Input:      plate,
//		Category:   identifier.CategoryVehicle,
//		VehicleUse: identifier.PersonalUse,
//	})
//
// # Old business plates
//
// The old business plate pattern starts with a bracket expression built from
// the sixteen region names (서울, 부산, ... 세종). Being a character class, it
// accepts any two characters drawn from the union of those names, including
// the '|' separator, rather than exactly one region name. That broader
// behaviour is kept as the default because existing inputs may rely on it.
// WithStrictRegions selects a separate pattern that only accepts whole region
// names.
package identifier
