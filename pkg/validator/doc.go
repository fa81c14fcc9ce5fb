// Package validator turns field values into Rule values that the presentation
// layer can evaluate together and render as localized messages.
//
// A Rule pairs a deferred Check with the ValidationError reported when the
// check fails. Apply evaluates a set of rules and returns ValidationErrors,
// which implements error and matches ErrValidationFailed through errors.Is.
// Each ValidationError carries a TranslationKey (for example
// "validation.vehicle_plate") and TranslationValues for the i18n package.
//
// Format rules delegate to the identifier package, so they share its pattern
// table and its anchored, total semantics.
//
// # Usage
//
//	err := validator.Apply(
//		validator.RequiredString("email", req.Email),
//		validator.ValidEmail("email", req.Email),
//		validator.ValidPhoneNumber("phone", req.Phone),
//		validator.ValidVehiclePlate("plate", req.Plate, identifier.PersonalUse),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for field, msgs := range verrs.Messages() {
//			// ...
//		}
//	}
//
// Rules hold no state beyond their captured arguments and are safe to build
// and evaluate from any goroutine.
package validator
