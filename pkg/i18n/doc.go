// Package i18n renders validation errors and durations in the user's
// language.
//
// Messages live in YAML documents keyed by language code, then by
// dot-separated keys. Korean and English messages for every validator
// translation key are embedded; WithYAML layers project-specific sources on
// top. Placeholders use the %{name} form.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.WithLogger(log))
//	lang := tr.Match(r.Header.Get("Accept-Language"))
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		msgs := tr.Errors(lang, verrs)
//	}
//
// Language negotiation uses golang.org/x/text/language, so regional tags such
// as "en-GB" resolve to a loaded base language.
package i18n
