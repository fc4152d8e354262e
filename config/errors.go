package config

import (
	"errors"
	"strings"

	env "github.com/caarlos0/env/v11"
)

// MissingConfigError lists every required configuration key that was absent at startup.
type MissingConfigError struct {
	Keys  []string
	Cause error
}

func (e *MissingConfigError) Error() string {
	return "missing required configuration keys: " + strings.Join(e.Keys, ", ")
}

func (e *MissingConfigError) Unwrap() error { return e.Cause }

// MissingKeys extracts the names of unset required variables from an env parse error,
// preserving declaration order and dropping duplicates.
func MissingKeys(err error) []string {
	if err == nil {
		return nil
	}

	var causes []error
	var agg env.AggregateError
	var aggPtr *env.AggregateError
	switch {
	case errors.As(err, &agg):
		causes = agg.Errors
	case errors.As(err, &aggPtr) && aggPtr != nil:
		causes = aggPtr.Errors
	default:
		causes = []error{err}
	}

	seen := make(map[string]struct{}, len(causes))
	var keys []string
	for _, cause := range causes {
		key, ok := unsetKey(cause)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

func unsetKey(err error) (string, bool) {
	var notSet env.EnvVarIsNotSetError
	if errors.As(err, &notSet) {
		return notSet.Key, true
	}
	var notSetPtr *env.EnvVarIsNotSetError
	if errors.As(err, &notSetPtr) && notSetPtr != nil {
		return notSetPtr.Key, true
	}
	return "", false
}
