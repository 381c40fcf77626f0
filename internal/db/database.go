package db

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// DB keeps the ordered set of endpoints to check.
type DB struct {
	endpoints []*Endpoint

	Hash string
}

func NewDB(endpoints []*Endpoint) (*DB, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("no endpoints were selected")
	}

	db := &DB{
		endpoints: endpoints,
	}

	hash := sha256.New()
	for _, e := range endpoints {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't encode payload of %s %s", e.Method, e.Path)
		}

		fmt.Fprintf(hash, "%s %s %d %q %s\n", e.Method, e.Path, e.ExpectedStatus, e.ExpectedKeys, payload)
	}
	db.Hash = hex.EncodeToString(hash.Sum(nil))

	return db, nil
}

// GetEndpoints returns endpoints in the order they were loaded.
func (db *DB) GetEndpoints() []*Endpoint {
	return db.endpoints
}

// SelectEndpoints returns the endpoints with the given path, or all of them
// when path is empty.
func SelectEndpoints(endpoints []*Endpoint, path string) []*Endpoint {
	if path == "" {
		return endpoints
	}

	var selected []*Endpoint
	for _, e := range endpoints {
		if e.Path == path {
			selected = append(selected, e)
		}
	}

	return selected
}
