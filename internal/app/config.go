package app

import (
	"github.com/dmitrymomot/catalyst"
	"github.com/dmitrymomot/catalyst/pkg/database"
	"github.com/dmitrymomot/catalyst/pkg/httpserver"
	"github.com/dmitrymomot/catalyst/pkg/logger"
	"github.com/dmitrymomot/catalyst/pkg/ratelimiter"
	"github.com/dmitrymomot/catalyst/pkg/redis"
	"github.com/dmitrymomot/catalyst/pkg/session"
)

// User store backends selected by USER_STORE.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config gathers the settings of every component.
type Config struct {
	App       catalyst.Config
	Log       logger.Config
	HTTP      httpserver.Config
	Session   session.Config
	Database  database.Config
	Redis     redis.Config
	RateLimit ratelimiter.Config
	UserStore string `env:"USER_STORE" envDefault:"postgres"`
	Bcrypt    int    `env:"BCRYPT_COST" envDefault:"12"`
}
