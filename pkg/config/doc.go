// Package config loads application configuration from the environment.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing tagged structs:
//
//	type Config struct {
//		Env  string `env:"APP_ENV" envDefault:"development"`
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	func main() {
//		config.MustLoadEnv(".env", ".env.local") // optional
//		cfg := config.MustLoad[Config]()
//	}
//
// Every configuration type is parsed once and cached for the lifetime of the
// process. Tests that change the environment call ResetCache or Reload.
//
// Real environment variables always win over values read from env files.
package config
