package chat

import (
	"errors"
	"fmt"
)

// Kind is the closed set of classified chat failures.
type Kind string

const (
	KindValidation      Kind = "VALIDATION"
	KindEmptyGeneration Kind = "EMPTY_GENERATION"
	KindGatewayFailure  Kind = "GATEWAY_FAILURE"
)

const (
	DetailEmptyPrompt     = "Prompt cannot be empty"
	DetailEmptyGeneration = "AI did not generate a response"
	detailGatewayPrefix   = "Error generating AI response: "
)

// Error is a classified failure. Detail is the client-facing message.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("chat: %s (%s)", e.Kind, e.Detail)
	}
	return fmt.Sprintf("chat: %s (%s): %v", e.Kind, e.Detail, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newValidationError() *Error {
	return &Error{Kind: KindValidation, Detail: DetailEmptyPrompt}
}

func newEmptyGenerationError() *Error {
	return &Error{Kind: KindEmptyGeneration, Detail: DetailEmptyGeneration}
}

func newGatewayError(err error) *Error {
	return &Error{Kind: KindGatewayFailure, Detail: detailGatewayPrefix + err.Error(), Err: err}
}

// Classify returns err as a *Error. Already classified errors, including
// wrapped ones, are returned unchanged; anything else becomes a gateway failure.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return newGatewayError(err)
}
