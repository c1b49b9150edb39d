package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors".
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

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the authenticated user. A nil id yields an empty Attr.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// RequestID records the request identifier. A nil id yields an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

func Method(m string) slog.Attr {
	return slog.String("method", m)
}

func Path(p string) slog.Attr {
	return slog.String("path", p)
}

func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// ClientIP records the client address. An empty ip yields an empty Attr.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Handler records the controller method serving a route.
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
