package types

import (
	"net/http"
)

var _ Response = (*ResponseMeta)(nil)

// Response interface contains general methods for retrieving response info.
type Response interface {
	// GetStatusCode returns response status code.
	GetStatusCode() int

	// GetReason return response status message
	// corresponding to the HTTP status code.
	GetReason() string

	// GetHeaders returns response headers.
	GetHeaders() http.Header

	// GetContent returns response content body.
	GetContent() []byte
}

// ResponseMeta is a fully read response.
type ResponseMeta struct {
	StatusCode   int
	StatusReason string
	Headers      http.Header
	Content      []byte
}

func (r *ResponseMeta) GetStatusCode() int {
	return r.StatusCode
}

func (r *ResponseMeta) GetReason() string {
	return r.StatusReason
}

func (r *ResponseMeta) GetHeaders() http.Header {
	return r.Headers
}

func (r *ResponseMeta) GetContent() []byte {
	return r.Content
}
