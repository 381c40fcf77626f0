package types

import (
	"net/http"
)

var _ Request = (*GoHTTPRequest)(nil)

// Request interface represents a prepared request that can be sent by
// an HTTPClient.
type Request interface {
	// IsRequest is a dummy method to tag a struct
	// as implementing a Request interface.
	IsRequest()
}

// GoHTTPRequest is a type wrapper for the *http.Request.
type GoHTTPRequest struct {
	Req *http.Request

	DebugHeaderValue string
}

func (r *GoHTTPRequest) IsRequest() {}
