package actions

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateAction = errors.New("action id already registered")
	ErrUnknownAction   = errors.New("unknown action")
	ErrShapeMismatch   = errors.New("mapping is not compatible with the action value")
	ErrNoButtons       = errors.New("no buttons set")
	ErrTooManyButtons  = errors.New("too many buttons")
)

// ConfigError reports a setup problem found by Add, SetMapping or a
// mapping's Validate. It never originates from Update.
type ConfigError struct {
	Op      string // "add" or "set mapping"
	Action  string // action id, empty if unknown
	Mapping int    // index in the mapping list, -1 if not mapping related
	Err     error
}

func (e *ConfigError) Error() string {
	msg := e.Op
	if e.Action != "" {
		msg += fmt.Sprintf(" action %q", e.Action)
	}
	if e.Mapping >= 0 {
		msg += fmt.Sprintf(" mapping %d", e.Mapping)
	}
	return msg + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }
