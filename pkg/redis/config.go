package redis

import "time"

// Config describes the redis connection. It is only read when sessions are
// kept in redis (SESSION_STORE=redis).
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	SessionPrefix  string        `env:"REDIS_SESSION_PREFIX" envDefault:"catalyst:session:"`
}
