package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("config.parse_failed")

	// ErrInvalidConfigType is returned when the config type is not a struct
	ErrInvalidConfigType = errors.New("config.invalid_type")

	// ErrLoadingEnvFile is returned when an env file cannot be read
	ErrLoadingEnvFile = errors.New("config.env_file")
)
