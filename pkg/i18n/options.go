package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the fallback language. It must be present in the
// loaded translations.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithYAML adds a translation source applied after the bundled messages.
func WithYAML(content []byte) Option {
	return func(t *Translator) {
		if len(content) > 0 {
			t.sources = append(t.sources, content)
		}
	}
}

// WithoutBundledMessages skips the embedded ko/en messages.
func WithoutBundledMessages() Option {
	return func(t *Translator) { t.noDefaults = true }
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs unknown languages and keys at warn level.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) { t.missingLogMode = enabled }
}
