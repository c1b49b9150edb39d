package requestid

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/google/uuid"
)

// Header carries the request id in both directions.
const Header = "X-Request-ID"

const maxIDLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type contextKey struct{}

// WithContext returns a copy of ctx carrying id.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// Resolve returns candidate when it is a well formed id and a fresh UUID otherwise.
func Resolve(candidate string) string {
	if candidate != "" && len(candidate) <= maxIDLength && validID.MatchString(candidate) {
		return candidate
	}
	return uuid.NewString()
}

// LogExtractor adds the request id of the record context as "request_id".
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := FromContext(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}
