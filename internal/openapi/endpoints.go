package openapi

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/wallarm/gotestapi/internal/db"
)

const jsonContentType = "application/json"

// NewEndpoints derives endpoint descriptors from the GET operations of the
// document. Path parameters are filled with their documented example or
// default value; templated paths such as /users/{id} without one are
// skipped. The expected status is the
// lowest documented 2xx code, the expected keys are the required properties
// of the JSON response schema.
func NewEndpoints(doc *openapi3.T) (endpoints []*db.Endpoint, skipped []string) {
	if doc.Paths == nil {
		return nil, nil
	}

	pathItems := doc.Paths.Map()

	paths := make([]string, 0, len(pathItems))
	for path := range pathItems {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		info := pathItems[path]
		if info == nil || info.Get == nil {
			continue
		}

		resolved, ok := resolvePath(path, pathParameters(info, info.Get))
		if !ok {
			skipped = append(skipped, path)
			continue
		}

		e := db.NewEndpoint(resolved)
		e.ExpectedStatus, e.ExpectedKeys = expectations(info.Get)

		if err := db.ValidateEndpoint(e); err != nil {
			skipped = append(skipped, path)
			continue
		}

		endpoints = append(endpoints, e)
	}

	return endpoints, skipped
}

func expectations(op *openapi3.Operation) (status int, keys []string) {
	status = http.StatusOK

	if op.Responses == nil {
		return status, nil
	}

	var (
		found    bool
		response *openapi3.ResponseRef
	)

	for code, ref := range op.Responses.Map() {
		n, err := strconv.Atoi(code)
		if err != nil || n < 200 || n > 299 {
			continue
		}

		if !found || n < status {
			status = n
			response = ref
			found = true
		}
	}

	if response == nil || response.Value == nil {
		return status, nil
	}

	mediaType := response.Value.Content.Get(jsonContentType)
	if mediaType == nil || mediaType.Schema == nil || mediaType.Schema.Value == nil {
		return status, nil
	}

	keys = append(keys, mediaType.Schema.Value.Required...)

	return status, keys
}
