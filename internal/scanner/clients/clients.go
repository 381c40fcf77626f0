package clients

import (
	"context"

	"github.com/wallarm/gotestapi/internal/scanner/types"
)

// DebugHeader carries a hash of the endpoint under test when the
// --addDebugHeader option is set.
const DebugHeader = "X-GoTestAPI-Endpoint"

// HTTPClient is an interface that defines methods for sending HTTP requests.
type HTTPClient interface {
	// SendRequest sends a prepared request and returns a fully read response.
	SendRequest(ctx context.Context, req types.Request) (types.Response, error)
}
