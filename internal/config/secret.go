package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissingSecret reports an unset or blank API key environment variable.
var ErrMissingSecret = errors.New("api key environment variable is unset or empty")

// ResolveAPIKey reads the API key from the environment variable named by
// apis.google_maps.auth.api_key_env. Resolution happens once at collector
// construction; a missing value is a fatal configuration error, not
// something deferred to first use. The key itself is never logged or
// persisted.
func ResolveAPIKey(envVar string) (string, error) {
	if strings.TrimSpace(envVar) == "" {
		return "", errors.New("resolve api key: api_key_env is not set under apis.google_maps.auth")
	}

	key := os.Getenv(envVar)
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("resolve api key: %s: %w", envVar, ErrMissingSecret)
	}

	return key, nil
}
