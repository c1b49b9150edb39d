package config

import "os"

func setenvIfUnset(key, value string) error {
	if _, ok := os.LookupEnv(key); ok {
		return nil
	}
	return os.Setenv(key, value)
}
