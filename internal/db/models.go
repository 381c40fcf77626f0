package db

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const DefaultExpectedStatus = http.StatusOK

var ErrInvalidMethod = errors.New("unsupported HTTP method")

// Method is one of the HTTP methods an endpoint can be checked with.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

var methodsSet = map[Method]any{
	MethodGet:    nil,
	MethodPost:   nil,
	MethodPut:    nil,
	MethodDelete: nil,
}

// ParseMethod converts a method name to Method. An empty name means GET.
// Names are case-sensitive, "get" is rejected the same way "PATCH" is.
func ParseMethod(name string) (Method, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return MethodGet, nil
	}

	m := Method(name)
	if !m.IsValid() {
		return "", errors.Wrapf(ErrInvalidMethod, "%q", name)
	}

	return m, nil
}

func (m Method) IsValid() bool {
	_, ok := methodsSet[m]
	return ok
}

func (m Method) String() string {
	return string(m)
}

// HasBody reports whether a payload is sent with the method.
func (m Method) HasBody() bool {
	return m == MethodPost || m == MethodPut
}

// Endpoint describes one HTTP call and the criteria its response is judged by.
type Endpoint struct {
	Path           string   `validate:"required,endpoint_path"`
	ExpectedStatus int      `validate:"min=100,max=599"`
	ExpectedKeys   []string `validate:"dive,required"`
	Method         Method   `validate:"http_method"`
	Payload        any
}

// NewEndpoint builds a descriptor with the default expectations: GET, status
// 200, no expected keys, no payload.
func NewEndpoint(path string) *Endpoint {
	return &Endpoint{
		Path:           path,
		ExpectedStatus: DefaultExpectedStatus,
		Method:         MethodGet,
	}
}

type Verdict int

const (
	VerdictPass Verdict = iota
	VerdictFail
	VerdictError
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "PASS"
	case VerdictFail:
		return "FAIL"
	case VerdictError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// TestResult is the outcome of a single endpoint test.
type TestResult struct {
	Endpoint       string
	Method         string
	Status         *int
	ExpectedStatus int
	StatusCheck    bool
	ContentCheck   bool
	MissingKeys    []string
	Verdict        Verdict
	Error          string
}

// NewCheckedResult builds a result for an endpoint that got a response.
func NewCheckedResult(e *Endpoint, status int, statusCheck bool, contentCheck bool, missingKeys []string) *TestResult {
	verdict := VerdictFail
	if statusCheck && contentCheck {
		verdict = VerdictPass
	}

	if missingKeys == nil {
		missingKeys = []string{}
	}

	return &TestResult{
		Endpoint:       e.Path,
		Method:         e.Method.String(),
		Status:         &status,
		ExpectedStatus: e.ExpectedStatus,
		StatusCheck:    statusCheck,
		ContentCheck:   contentCheck,
		MissingKeys:    missingKeys,
		Verdict:        verdict,
	}
}

// NewErrorResult builds a result for an endpoint whose test could not
// complete.
func NewErrorResult(e *Endpoint, err error) *TestResult {
	return &TestResult{
		Endpoint:       e.Path,
		Method:         e.Method.String(),
		ExpectedStatus: e.ExpectedStatus,
		MissingKeys:    []string{},
		Verdict:        VerdictError,
		Error:          err.Error(),
	}
}
