package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/extensioncollection/kit/pkg/datetime"
	"github.com/extensioncollection/kit/pkg/logger"
	"github.com/extensioncollection/kit/pkg/validator"
)

// DefaultLanguage is used when a requested language is not available.
const DefaultLanguage = "ko"

//go:embed locales/*.yaml
var defaultLocales embed.FS

// Translator resolves dot-separated keys such as "validation.email" into
// localized strings. It is immutable after NewTranslator returns and safe for
// concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	langs          []string
	matcher        language.Matcher
	missingLogMode bool
	logger         *slog.Logger

	sources    [][]byte
	noDefaults bool
}

// NewTranslator loads the bundled ko/en messages plus any WithYAML sources.
// Later sources override earlier ones key by key.
func NewTranslator(ctx context.Context, opts ...Option) (*Translator, error) {
	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	var sources [][]byte
	if !t.noDefaults {
		entries, err := defaultLocales.ReadDir("locales")
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			content, err := defaultLocales.ReadFile("locales/" + e.Name())
			if err != nil {
				return nil, err
			}
			sources = append(sources, content)
		}
	}
	sources = append(sources, t.sources...)

	t.translations = make(map[string]map[string]any)
	for _, src := range sources {
		parsed, err := parseYAML(ctx, src)
		if err != nil {
			return nil, err
		}
		for lang, trans := range parsed {
			lang = strings.ToLower(lang)
			if _, ok := t.translations[lang]; !ok {
				t.translations[lang] = make(map[string]any)
			}
			merge(t.translations[lang], trans)
		}
	}
	if len(t.translations) == 0 {
		return nil, ErrNoTranslations
	}
	if _, ok := t.translations[t.defaultLang]; !ok {
		return nil, errors.Join(ErrNoTranslations, fmt.Errorf("default language %q", t.defaultLang))
	}

	t.langs = make([]string, 0, len(t.translations))
	for lang := range t.translations {
		t.langs = append(t.langs, lang)
	}
	slices.Sort(t.langs)

	// The matcher falls back to its first tag, so the default language goes first.
	tags := []language.Tag{language.Make(t.defaultLang)}
	ordered := []string{t.defaultLang}
	for _, lang := range t.langs {
		if lang != t.defaultLang {
			tags = append(tags, language.Make(lang))
			ordered = append(ordered, lang)
		}
	}
	t.langs = ordered
	t.matcher = language.NewMatcher(tags)

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// SupportedLanguages lists loaded languages, default first, the rest sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the fallback language code.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the best supported language for an Accept-Language header
// value such as "en-US,en;q=0.9,ko;q=0.8".
func (t *Translator) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation reports whether lang defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[strings.ToLower(lang)]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces %{name} placeholders; unknown names are left as is.
func namedSprintf(tmpl string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// T translates key for lang with args given as name/value pairs.
// Unsupported languages fall back to the default language; a missing key
// is returned as the key itself.
//
//	t.T("ko", "datetime.days", "count", "3") // "3일"
func (t *Translator) T(lang, key string, args ...string) string {
	return t.translate(lang, key, buildParams(args))
}

func (t *Translator) translate(lang, key string, params map[string]string) string {
	resolved, ok := t.resolve(lang)
	if !ok && t.missingLogMode {
		t.logger.Warn("language not supported", logger.Component("i18n"), slog.String("lang", lang), slog.String("key", key))
	}

	tmpl, ok := t.lookup(resolved, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", logger.Component("i18n"), slog.String("lang", resolved), slog.String("key", key))
		}
		tmpl = key
	}
	return namedSprintf(tmpl, params)
}

// Error renders one validation error. The field name is looked up under
// "fields.<field>", and every string value v of parameter p is also offered
// as "<p>_label" when "labels.<p>.<v>" exists.
func (t *Translator) Error(lang string, verr validator.ValidationError) string {
	if verr.TranslationKey == "" {
		return verr.Message
	}

	resolved, _ := t.resolve(lang)
	params := make(map[string]string, len(verr.TranslationValues)*2)
	for name, val := range verr.TranslationValues {
		s := stringify(val)
		params[name] = s
		if label, ok := t.lookup(resolved, "labels."+name+"."+s); ok {
			params[name+"_label"] = label
		}
	}
	if field, ok := t.lookup(resolved, "fields."+verr.Field); ok {
		params["field"] = field
	} else if _, set := params["field"]; !set {
		params["field"] = verr.Field
	}

	return t.translate(lang, verr.TranslationKey, params)
}

// Errors renders validation errors grouped by field, preserving rule order.
func (t *Translator) Errors(lang string, verrs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(verrs))
	for _, verr := range verrs {
		out[verr.Field] = append(out[verr.Field], t.Error(lang, verr))
	}
	return out
}

// Duration renders a number of seconds as days, hours, minutes and seconds,
// skipping zero units: 90061 renders as "1일 1시간 1분 1초" in Korean.
// Negative input renders as zero seconds.
func (t *Translator) Duration(lang string, seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	span := datetime.Breakdown(seconds)

	units := []struct {
		key string
		n   int
	}{
		{"datetime.days", span.Days},
		{"datetime.hours", span.HoursOfDay()},
		{"datetime.minutes", span.Minutes},
		{"datetime.seconds", span.Seconds},
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		if u.n == 0 {
			continue
		}
		parts = append(parts, t.T(lang, u.key, "count", strconv.Itoa(u.n)))
	}
	if len(parts) == 0 {
		return t.T(lang, "datetime.seconds", "count", "0")
	}
	return strings.Join(parts, " ")
}

// resolve maps lang onto a loaded language, trying the base language of a
// regional tag ("en-US" -> "en") before the default. The bool is false when
// the default had to be used.
func (t *Translator) resolve(lang string) (string, bool) {
	lang = strings.ToLower(lang)
	if _, ok := t.translations[lang]; ok {
		return lang, true
	}
	if base, _, found := strings.Cut(lang, "-"); found {
		if _, ok := t.translations[base]; ok {
			return base, true
		}
	}
	return t.defaultLang, false
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}
