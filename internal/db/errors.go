package db

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var _ error = (*ValidationError)(nil)

type ValidationError struct {
	errors validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	errMsgs := make([]string, len(e.errors))
	for i, fe := range e.errors {
		errMsg := fe.Error()
		if _, ok := customValidators[fe.Tag()]; ok {
			errMsg = fmt.Sprintf("%s, bad value: '%v'", errMsg, fe.Value())
		}

		errMsgs[i] = errMsg
	}

	msg := fmt.Sprintf("found invalid values in the endpoint: %s", strings.Join(errMsgs, "; "))

	return msg
}

// Unwrap lets errors.Is match ErrInvalidMethod when the method was rejected.
func (e *ValidationError) Unwrap() error {
	for _, fe := range e.errors {
		if fe.Tag() == "http_method" {
			return ErrInvalidMethod
		}
	}

	return nil
}
