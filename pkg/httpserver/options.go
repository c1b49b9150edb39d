package httpserver

import (
	"log/slog"
	"time"
)

type Option func(*options)

func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(o *options) { o.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithReadTimeout: duration must be > 0")
	}
	return func(o *options) { o.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithWriteTimeout: duration must be > 0")
	}
	return func(o *options) { o.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithIdleTimeout: duration must be > 0")
	}
	return func(o *options) { o.idleTimeout = d }
}

func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(o *options) { o.shutdownTimeout = d }
}

// WithLogger sets the logger reporting start, stop and readiness failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
