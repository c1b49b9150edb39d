package database

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config describes the postgres connection. ConnectionString wins over the
// discrete DB_* fields when both are set.
type Config struct {
	ConnectionString string `env:"DATABASE_URL"`

	Driver   string `env:"DB_DRIVER" envDefault:"pgsql"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"catalyst"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASS"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	MaxOpenConns      int32         `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns      int32         `env:"DB_MAX_IDLE_CONNS" envDefault:"2"`
	HealthCheckPeriod time.Duration `env:"DB_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"DB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"DB_RETRY_INTERVAL" envDefault:"2s"`

	MigrationsTable string `env:"DB_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
}

// DSN returns the connection string used to open the pool.
func (c Config) DSN() (string, error) {
	if c.ConnectionString != "" {
		return c.ConnectionString, nil
	}

	switch c.Driver {
	case "", "pgsql", "postgres", "postgresql", "pgx":
	default:
		return "", ErrUnsupportedDriver
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.User != "" {
		if c.Password != "" {
			u.User = url.UserPassword(c.User, c.Password)
		} else {
			u.User = url.User(c.User)
		}
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
	}
	return u.String(), nil
}
