package usecase

import (
	"unicode/utf8"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/domain/envbool"
)

// EnvBoolean reads key as a boolean override.
//
// An unset variable yields def. A set variable that is not valid UTF-8 or
// does not parse yields a *port.EnvError.
func EnvBoolean(r port.EnvReader, key string, def bool) (bool, error) {
	raw, ok := r.LookupEnv(key)
	if !ok {
		return def, nil
	}
	if !utf8.ValidString(raw) {
		return def, &port.EnvError{
			Kind: port.EnvErrorKindNotUnicode,
			Key:  key,
			Raw:  []byte(raw),
		}
	}

	v, err := envbool.Parse(raw)
	if err != nil {
		return def, &port.EnvError{
			Kind: port.EnvErrorKindParse,
			Key:  key,
			Err:  err,
		}
	}
	return v, nil
}

// EnvBooleanOr is the best-effort form of EnvBoolean: any failure yields def.
func EnvBooleanOr(r port.EnvReader, key string, def bool) bool {
	v, err := EnvBoolean(r, key, def)
	if err != nil {
		return def
	}
	return v
}
