package scanner

import (
	"github.com/pkg/errors"

	"github.com/wallarm/gotestapi/internal/scanner/types"
)

// CheckResult holds the outcome of the status and content checks.
type CheckResult struct {
	StatusCheck  bool
	ContentCheck bool
	MissingKeys  []string
}

// CheckResponse compares the response with the expected status code and the
// expected top-level JSON keys. Keys are only checked when the response
// declares a JSON body; a declared JSON body that can't be parsed is an error.
func CheckResponse(expectedStatus int, expectedKeys []string, resp types.Response) (*CheckResult, error) {
	result := &CheckResult{
		StatusCheck:  resp.GetStatusCode() == expectedStatus,
		ContentCheck: true,
		MissingKeys:  []string{},
	}

	if len(expectedKeys) == 0 || !types.IsJSONContentType(resp.GetHeaders().Get("Content-Type")) {
		return result, nil
	}

	obj, err := types.ParseJSONObject(resp.GetContent())
	if err != nil {
		return nil, errors.Wrap(err, "couldn't parse JSON response")
	}

	for _, key := range expectedKeys {
		if !obj.Has(key) {
			result.MissingKeys = append(result.MissingKeys, key)
		}
	}
	result.ContentCheck = len(result.MissingKeys) == 0

	return result, nil
}
