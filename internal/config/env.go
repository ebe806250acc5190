// Package config loads runtime settings for the game binaries.
package config

import "os"

// ConfigPathEnv names the environment variable holding the settings file path.
const ConfigPathEnv = "BOSSRUSH_CONFIG"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
