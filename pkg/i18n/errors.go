package i18n

import "errors"

var (
	ErrParsingCancelled  = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrNoTranslations    = errors.New("no translations loaded")
	ErrInvalidStructure  = errors.New("invalid translation structure")
)
