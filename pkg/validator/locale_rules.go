package validator

import (
	"github.com/extensioncollection/kit/pkg/identifier"
)

// ValidEmail checks value against the anchored local@domain.tld pattern.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return identifier.IsValidEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPhoneNumber requires exactly 11 digits with no separators.
func ValidPhoneNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return identifier.IsValidPhoneNumber(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be an 11-digit phone number without separators",
			TranslationKey: "validation.phone_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidVehiclePlate checks a registration plate under the given use.
// Extra options such as identifier.WithStrictRegions are applied after use.
func ValidVehiclePlate(field, value string, use identifier.VehicleUse, opts ...identifier.PlateOption) Rule {
	plateOpts := append([]identifier.PlateOption{identifier.WithVehicleUse(use)}, opts...)
	return Rule{
		Check: func() bool {
			return identifier.IsValidVehiclePlate(value, plateOpts...)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid " + use.String() + " vehicle plate number",
			TranslationKey: "validation.vehicle_plate",
			TranslationValues: map[string]any{
				"field": field,
				"use":   use.String(),
			},
		},
	}
}

// ValidBusinessVehiclePlate accepts old and new business plates.
func ValidBusinessVehiclePlate(field, value string) Rule {
	return ValidVehiclePlate(field, value, identifier.BusinessUse)
}

// ValidPersonalVehiclePlate accepts personal plates only.
func ValidPersonalVehiclePlate(field, value string) Rule {
	return ValidVehiclePlate(field, value, identifier.PersonalUse)
}

// ValidIdentifier checks value against the pattern of a single identifier kind.
func ValidIdentifier(field, value string, kind identifier.Kind) Rule {
	return Rule{
		Check: func() bool {
			return identifier.Match(kind, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid " + kind.String(),
			TranslationKey: "validation.identifier",
			TranslationValues: map[string]any{
				"field": field,
				"kind":  kind.String(),
			},
		},
	}
}
