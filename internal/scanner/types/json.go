package types

import (
	"encoding/json"
	"mime"
	"strings"
)

const jsonMediaType = "application/json"

// JSONObject is a decoded JSON object with its values left undecoded. Only
// the presence of top-level keys is ever checked.
type JSONObject map[string]json.RawMessage

// Has reports whether key is a top-level key of the object.
func (o JSONObject) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// ParseJSONObject decodes body. A valid JSON document that is not an object
// gives an empty JSONObject, an invalid one gives an error.
func ParseJSONObject(body []byte) (JSONObject, error) {
	var value json.RawMessage
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, err
	}

	var obj JSONObject
	if err := json.Unmarshal(value, &obj); err != nil || obj == nil {
		// arrays, strings, numbers, booleans and null have no keys
		return JSONObject{}, nil
	}

	return obj, nil
}

// IsJSONContentType reports whether the Content-Type header value declares
// a JSON body: application/json or any +json media type.
func IsJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == jsonMediaType || strings.HasSuffix(mediaType, "+json")
}
