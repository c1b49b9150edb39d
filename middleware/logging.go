package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/catalyst/pkg/clientip"
	"github.com/dmitrymomot/catalyst/pkg/logger"
	"github.com/dmitrymomot/catalyst/pkg/router"
)

// Logging logs one record per request with its method, path, status, client
// address and duration. Server errors are logged at error level with the error.
type Logging struct {
	log *slog.Logger
}

// NewLogging creates the request logger writing to log.
func NewLogging(log *slog.Logger) *Logging {
	return &Logging{log: log}
}

// Process logs the request once the chain returns and passes its error on.
func (m *Logging) Process(c *router.Context, next router.Action) error {
	start := time.Now()
	err := next()

	status := c.StatusCode()
	switch {
	case err != nil && !c.Written():
		status = router.StatusCode(err)
	case status == 0:
		status = http.StatusOK
	}

	attrs := []slog.Attr{
		logger.Method(c.Method()),
		logger.Path(c.Path()),
		logger.Status(status),
		logger.Duration(time.Since(start)),
		logger.ClientIP(clientip.FromRequest(c.Request())),
	}
	if s := c.Session(); s.IsAuthenticated() {
		attrs = append(attrs, logger.UserID(s.UserID.String()))
	}

	switch {
	case status >= 500:
		m.log.LogAttrs(c, slog.LevelError, "request failed", append(attrs, logger.Error(err))...)
	case status >= 400:
		m.log.LogAttrs(c, slog.LevelWarn, "request rejected", append(attrs, logger.Error(err))...)
	default:
		m.log.LogAttrs(c, slog.LevelInfo, "request served", attrs...)
	}
	return err
}
