package port

import (
	"errors"
	"fmt"
)

// EnvReader exposes the process environment.
// LookupEnv values are returned as raw bytes-in-a-string; callers decide
// whether the value is valid UTF-8.
type EnvReader interface {
	LookupEnv(key string) (string, bool)
	Environ() []string
}

// EnvErrorKind describes why an environment variable could not be used.
type EnvErrorKind string

const (
	EnvErrorKindNotUnicode EnvErrorKind = "not_unicode"
	EnvErrorKindParse      EnvErrorKind = "parse"
)

var (
	// ErrEnvNotUnicode indicates the variable is set but is not valid UTF-8.
	ErrEnvNotUnicode = errors.New("variable did not contain valid unicode")
	// ErrEnvParse indicates the variable value could not be parsed.
	ErrEnvParse = errors.New("error parsing variable value")
)

// EnvError wraps a failure to read a typed value from the environment.
type EnvError struct {
	Kind EnvErrorKind
	Key  string
	// Raw holds the undecoded value for EnvErrorKindNotUnicode.
	Raw []byte
	Err error
}

func (e *EnvError) Error() string {
	if e == nil {
		return "env error"
	}
	switch e.Kind {
	case EnvErrorKindNotUnicode:
		return fmt.Sprintf("%s: %s: %q", e.Key, ErrEnvNotUnicode, e.Raw)
	case EnvErrorKindParse:
		return fmt.Sprintf("%s: %s: %v", e.Key, ErrEnvParse, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

// Is matches the kind sentinels so callers can use errors.Is.
func (e *EnvError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrEnvNotUnicode:
		return e.Kind == EnvErrorKindNotUnicode
	case ErrEnvParse:
		return e.Kind == EnvErrorKindParse
	}
	return false
}

func (e *EnvError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
