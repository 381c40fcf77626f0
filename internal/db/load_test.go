package db

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/wallarm/gotestapi/internal/config"
)

const testEndpointsYAML = `
endpoints:
  - endpoint: /users
    expected_status: 200
    expected_keys: [id, name, username, email]
    method: GET
  - endpoint: /posts
    method: POST
    expected_status: 201
    payload:
      title: foo
      tags: [a, b]
      meta:
        draft: true
  - endpoint: /comments
`

func TestParseEndpoints(t *testing.T) {
	endpoints, err := ParseEndpoints([]byte(testEndpointsYAML))
	if err != nil {
		t.Fatalf("got an error while parsing endpoints: %v", err)
	}

	if len(endpoints) != 3 {
		t.Fatalf("got %d endpoints, want 3", len(endpoints))
	}

	users := endpoints[0]
	if users.Path != "/users" || users.Method != MethodGet || users.ExpectedStatus != 200 {
		t.Fatalf("bad /users endpoint: %+v", users)
	}
	if !reflect.DeepEqual(users.ExpectedKeys, []string{"id", "name", "username", "email"}) {
		t.Fatalf("got expected keys %v", users.ExpectedKeys)
	}

	posts := endpoints[1]
	if posts.Method != MethodPost || posts.ExpectedStatus != 201 {
		t.Fatalf("bad /posts endpoint: %+v", posts)
	}
	wantPayload := map[string]interface{}{
		"title": "foo",
		"tags":  []interface{}{"a", "b"},
		"meta":  map[string]interface{}{"draft": true},
	}
	if !reflect.DeepEqual(posts.Payload, wantPayload) {
		t.Fatalf("got payload %#v, want %#v", posts.Payload, wantPayload)
	}

	comments := endpoints[2]
	if comments.Method != MethodGet || comments.ExpectedStatus != DefaultExpectedStatus ||
		len(comments.ExpectedKeys) != 0 || comments.Payload != nil {
		t.Fatalf("defaults are not applied: %+v", comments)
	}
}

func TestParseEndpointsInvalid(t *testing.T) {
	tests := []struct {
		name          string
		yaml          string
		invalidMethod bool
	}{
		{"unsupported method", "endpoints:\n  - endpoint: /a\n    method: PATCH\n", true},
		{"lower case method", "endpoints:\n  - endpoint: /a\n    method: get\n", true},
		{"empty path", "endpoints:\n  - method: GET\n", false},
		{"relative path", "endpoints:\n  - endpoint: users\n", false},
		{"bad status", "endpoints:\n  - endpoint: /a\n    expected_status: 42\n", false},
		{"empty key", "endpoints:\n  - endpoint: /a\n    expected_keys: ['']\n", false},
		{"broken yaml", "endpoints: [", false},
	}

	for _, test := range tests {
		_, err := ParseEndpoints([]byte(test.yaml))
		if err == nil {
			t.Fatalf("%s: expected an error", test.name)
		}

		if isInvalidMethod := errors.Is(err, ErrInvalidMethod); isInvalidMethod != test.invalidMethod {
			t.Fatalf("%s: errors.Is(err, ErrInvalidMethod) = %v, error: %v", test.name, isInvalidMethod, err)
		}
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		isBad  bool
	}{
		{"", MethodGet, false},
		{"GET", MethodGet, false},
		{"POST", MethodPost, false},
		{"PUT", MethodPut, false},
		{"DELETE", MethodDelete, false},
		{"PATCH", "", true},
		{"HEAD", "", true},
		{"post", "", true},
	}

	for _, test := range tests {
		m, err := ParseMethod(test.name)
		if test.isBad {
			if !errors.Is(err, ErrInvalidMethod) {
				t.Fatalf("ParseMethod(%q): got %v, want ErrInvalidMethod", test.name, err)
			}
			continue
		}

		if err != nil {
			t.Fatalf("ParseMethod(%q): unexpected error: %v", test.name, err)
		}
		if m != test.method {
			t.Fatalf("ParseMethod(%q) = %s, want %s", test.name, m, test.method)
		}
	}
}

func TestLoadEndpoints(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"b.yml":      "endpoints:\n  - endpoint: /second\n",
		"a.yaml":     "endpoints:\n  - endpoint: /first\n  - endpoint: /first-2\n",
		"readme.txt": "not an endpoints file",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("couldn't write test file: %v", err)
		}
	}

	endpoints, err := LoadEndpoints(&config.Config{EndpointsPath: dir})
	if err != nil {
		t.Fatalf("got an error while loading endpoints: %v", err)
	}

	var paths []string
	for _, e := range endpoints {
		paths = append(paths, e.Path)
	}

	want := []string{"/first", "/first-2", "/second"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
}

func TestLoadEndpointsReportsAllErrors(t *testing.T) {
	dir := t.TempDir()

	content := "endpoints:\n  - endpoint: /a\n    method: PATCH\n  - endpoint: b\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.yml"), []byte(content), 0o600); err != nil {
		t.Fatalf("couldn't write test file: %v", err)
	}

	_, err := LoadEndpoints(&config.Config{EndpointsPath: dir})
	if err == nil {
		t.Fatal("expected an error")
	}

	var multiErr interface{ WrappedErrors() []error }
	if !errors.As(err, &multiErr) {
		t.Fatalf("got %T, want multierror", err)
	}
}

func TestLoadEndpointsEmptyPath(t *testing.T) {
	if _, err := LoadEndpoints(&config.Config{}); err == nil {
		t.Fatal("expected an error for an empty endpoints path")
	}
}

func TestNewDB(t *testing.T) {
	if _, err := NewDB(nil); err == nil {
		t.Fatal("expected an error for an empty endpoints list")
	}

	first, err := NewDB([]*Endpoint{NewEndpoint("/users"), NewEndpoint("/posts")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewDB([]*Endpoint{NewEndpoint("/users"), NewEndpoint("/posts")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reordered, err := NewDB([]*Endpoint{NewEndpoint("/posts"), NewEndpoint("/users")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Hash != second.Hash {
		t.Fatalf("same endpoints got different fingerprints: %s, %s", first.Hash, second.Hash)
	}
	if first.Hash == reordered.Hash {
		t.Fatal("reordered endpoints got the same fingerprint")
	}
}

func TestSelectEndpoints(t *testing.T) {
	endpoints := []*Endpoint{NewEndpoint("/users"), NewEndpoint("/posts"), NewEndpoint("/users")}

	if got := SelectEndpoints(endpoints, ""); len(got) != 3 {
		t.Fatalf("got %d endpoints, want 3", len(got))
	}
	if got := SelectEndpoints(endpoints, "/users"); len(got) != 2 {
		t.Fatalf("got %d endpoints, want 2", len(got))
	}
	if got := SelectEndpoints(endpoints, "/missing"); len(got) != 0 {
		t.Fatalf("got %d endpoints, want 0", len(got))
	}
}
