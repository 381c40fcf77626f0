package db

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var pathRegex = regexp.MustCompile(`^/[[:graph:]]*$`)

var customValidators = map[string]validator.Func{
	"endpoint_path": validateEndpointPath,
	"http_method":   validateHTTPMethod,
}

func validateEndpointPath(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	result := pathRegex.MatchString(path)

	return result
}

func validateHTTPMethod(fl validator.FieldLevel) bool {
	method := Method(fl.Field().String())

	return method.IsValid()
}

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	for tag, validatorFunc := range customValidators {
		err := validate.RegisterValidation(tag, validatorFunc)
		if err != nil {
			return nil, errors.Wrap(err, "couldn't build validator")
		}
	}

	return validate, nil
}

// ValidateEndpoint checks that the descriptor can be dispatched.
func ValidateEndpoint(e *Endpoint) error {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	err = validate.Struct(e)
	if err != nil {
		var validatorErr validator.ValidationErrors
		if errors.As(err, &validatorErr) {
			return &ValidationError{validatorErr}
		}

		return errors.Wrap(err, "couldn't validate endpoint")
	}

	return nil
}
