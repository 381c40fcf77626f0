package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/wallarm/gotestapi/internal/db"
	"github.com/wallarm/gotestapi/internal/helpers"
	"github.com/wallarm/gotestapi/internal/scanner/types"
)

const jsonContentType = "application/json"

// methods maps endpoint methods to the verbs sent on the wire. A method
// missing from the table is never sent.
var methods = map[db.Method]string{
	db.MethodGet:    http.MethodGet,
	db.MethodPost:   http.MethodPost,
	db.MethodPut:    http.MethodPut,
	db.MethodDelete: http.MethodDelete,
}

// NewRequest prepares the single request described by the endpoint. For POST
// and PUT the payload, if any, is sent as a JSON body.
func NewRequest(ctx context.Context, baseURL string, e *db.Endpoint) (*types.GoHTTPRequest, error) {
	verb, ok := methods[e.Method]
	if !ok {
		return nil, errors.Wrapf(db.ErrInvalidMethod, "%q", e.Method)
	}

	var body io.Reader
	if e.Method.HasBody() && e.Payload != nil {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return nil, errors.Wrap(err, "couldn't encode payload")
		}

		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, verb, helpers.JoinURL(baseURL, e.Path), body)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't create request")
	}

	if body != nil {
		req.Header.Set("Content-Type", jsonContentType)
	}

	return &types.GoHTTPRequest{Req: req}, nil
}
