package catalyst

// Environments recognised by APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds the application level settings.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"catalyst"`

	// StaticDir is served under StaticPrefix when set.
	StaticDir    string `env:"APP_STATIC_DIR"`
	StaticPrefix string `env:"APP_STATIC_PREFIX" envDefault:"/static/"`
}

// IsProduction reports whether the app runs in production.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}
