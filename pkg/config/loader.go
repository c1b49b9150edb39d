package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed value per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	global = &cache{values: make(map[reflect.Type]any)}

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

// Load parses the environment into a T using its `env` struct tags. The
// default .env file, when present, is read before the first parse. Each
// type is parsed once; later calls return the cached copy. A failed parse is
// not cached, so a corrected environment can be loaded again.
//
//	type DatabaseConfig struct {
//		Host string `env:"DB_HOST" envDefault:"localhost"`
//		Port int    `env:"DB_PORT" envDefault:"5432"`
//	}
//
//	cfg, err := config.Load[DatabaseConfig]()
func Load[T any]() (T, error) {
	loadDefaultEnv()

	key := typeKey[T]()

	global.mu.Lock()
	defer global.mu.Unlock()

	if cached, ok := global.values[key]; ok {
		return cached.(T), nil
	}

	v, err := parse[T]()
	if err != nil {
		return v, err
	}
	global.values[key] = v
	return v, nil
}

// MustLoad works like Load but panics when the configuration is invalid.
func MustLoad[T any]() T {
	v, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return v
}

// Reload parses T again, ignoring and replacing the cached copy.
func Reload[T any]() (T, error) {
	loadDefaultEnv()

	global.mu.Lock()
	defer global.mu.Unlock()

	v, err := parse[T]()
	if err != nil {
		return v, err
	}
	global.values[typeKey[T]()] = v
	return v, nil
}

// LoadEnv reads the given env files into the process environment. Variables
// already set are kept; among the files, the later one wins.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	vars := make(map[string]string)
	for _, p := range paths {
		m, err := godotenv.Read(p)
		if err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", p, err))
		}
		for k, v := range m {
			vars[k] = v
		}
	}

	for k, v := range vars {
		if err := setenvIfUnset(k, v); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	defaultEnvMu.Lock()
	defaultEnvLoaded = true
	defaultEnvMu.Unlock()
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// ResetCache forgets every parsed configuration. Meant for tests.
func ResetCache() {
	global.mu.Lock()
	clear(global.values)
	global.mu.Unlock()
}

func parse[T any]() (T, error) {
	var v T
	if reflect.TypeFor[T]().Kind() != reflect.Struct {
		return v, ErrInvalidConfigType
	}
	if err := env.Parse(&v); err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

func loadDefaultEnv() {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()
	if defaultEnvLoaded {
		return
	}
	defaultEnvLoaded = true
	// The default file is optional.
	_ = godotenv.Load()
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
