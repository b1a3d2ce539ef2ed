package config

import "fmt"

// EnvError reports an environment variable that could not be parsed.
type EnvError struct {
	Key string
	Err error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Key, e.Err)
}

func (e *EnvError) Unwrap() error {
	return e.Err
}
