package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format is the output encoding of log records.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Environment names understood by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config is the env-driven part of the logger setup.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT"`
}

// Option configures logger creation.
type Option func(*options)

type options struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets the output format and panics on an unknown one.
func WithFormat(f Format) Option {
	return func(o *options) {
		switch f {
		case FormatJSON, FormatText:
			o.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the destination. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(o *options) {
		if opts != nil {
			o.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithContextExtractors registers functions adding attributes taken from the
// context of each record.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// WithContextValue logs the context value stored under key as name.
func WithContextValue(name string, key any) Option {
	return func(o *options) {
		if name == "" || key == nil {
			return
		}
		o.extractors = append(o.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithEnvironment applies the defaults of env: debug level text output in
// development and testing, info level JSON elsewhere. app and env are
// attached to every record.
func WithEnvironment(env, app string) Option {
	return func(o *options) {
		switch env {
		case EnvDevelopment, "dev", "", EnvTesting:
			o.level = slog.LevelDebug
			o.format = FormatText
		default:
			o.level = slog.LevelInfo
			o.format = FormatJSON
		}
		if env == "" {
			env = EnvDevelopment
		}
		if app != "" {
			o.attrs = append(o.attrs, slog.String("app", app))
		}
		o.attrs = append(o.attrs, slog.String("env", env))
	}
}

// WithConfig applies LOG_LEVEL and LOG_FORMAT. Empty or unknown values keep
// the current setting.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if lvl, ok := ParseLevel(cfg.Level); ok {
			o.level = lvl
		}
		switch f := Format(strings.ToLower(cfg.Format)); f {
		case FormatJSON, FormatText:
			o.format = f
		}
	}
}

// ParseLevel maps debug, info, warn and error to their slog levels.
func ParseLevel(s string) (slog.Level, bool) {
	var lvl slog.Level
	if s == "" {
		return lvl, false
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, false
	}
	return lvl, true
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New creates a logger writing JSON at info level to stdout unless options
// say otherwise.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := o.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: o.level}
	}

	var handler slog.Handler
	if o.format == FormatText {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(newContextHandler(handler, o.extractors...))
}

// Discard returns a logger dropping every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
