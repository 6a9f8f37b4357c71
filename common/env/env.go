// Package env reads typed configuration values from the process environment.
package env

import (
	"os"
	"strconv"
	"strings"
)

// String returns the value of the environment variable named by key, or
// defaultValue when the variable is unset.
func String(key string, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// Bool parses the environment variable named by key as a boolean.
// Unset or unparseable values yield defaultValue.
func Bool(key string, defaultValue bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(strings.ToLower(v)))
	if err != nil {
		return defaultValue
	}
	return parsed
}

// Int parses the environment variable named by key as an integer.
// Unset or unparseable values yield defaultValue.
func Int(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return defaultValue
	}
	return parsed
}

// Float64 parses the environment variable named by key as a float.
// Unset or unparseable values yield defaultValue.
func Float64(key string, defaultValue float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
