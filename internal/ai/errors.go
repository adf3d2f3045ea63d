package ai

import (
	"errors"
	"fmt"
)

// ErrorKind classifies provider failures so callers can pick a user-facing
// message without inspecting free-text error strings.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	// KindAuth covers rejected or missing API keys.
	KindAuth
	// KindRateLimit covers quota and rate-limit rejections.
	KindRateLimit
	// KindNetwork covers transport failures and timeouts.
	KindNetwork
	// KindMalformed covers empty or non-JSON completions.
	KindMalformed
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deepseek: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("deepseek: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the classification of err, or KindOther when err did not
// originate from this package.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindOther
}
