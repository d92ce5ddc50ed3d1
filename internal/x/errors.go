// Package x holds the small ambient-concerns layer shared by parsec's
// demonstration binaries: error-wrapping helpers and a structured logger.
// The parsec core itself never imports this package -- it stays
// synchronous and does no logging or I/O, per the library's no-I/O
// invariant.
package x

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
)

// Check logs fatal if err != nil, after wrapping it with a stack trace.
// It exists for the CLI's top level, where an error has nowhere further to
// propagate to.
func Check(err error) {
	if err != nil {
		log.Fatalf("%+v", errors.Wrap(err, ""))
	}
}

// CheckExitCode exits with status 1 on error without printing anything,
// for callers that have already printed their own diagnostic.
func CheckExitCode(err error) {
	if err != nil {
		os.Exit(1)
	}
}

// Ignore deliberately discards an error, keeping the linter happy at call
// sites where the error truly cannot occur or truly does not matter.
func Ignore(_ error) {}

// Wrap attaches msg and a stack trace to err, or returns nil if err is nil.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// ConfigError reports a malformed invocation of the CLI (bad flag
// combination, unreadable grammar name) as distinct from a parse failure
// in the input being parsed.
type ConfigError struct {
	msg string
}

func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string { return e.msg }
