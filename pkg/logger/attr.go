package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func URL(u string) slog.Attr {
	return slog.String("url", u)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}
