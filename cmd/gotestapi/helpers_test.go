package main

import (
	"errors"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		rawURL  string
		wantErr error
	}{
		{"https://jsonplaceholder.typicode.com", nil},
		{"http://127.0.0.1:8080/api", nil},
		{"ftp://example.com", ErrInvalidScheme},
		{"example.com", ErrInvalidScheme},
		{"http://", ErrEmptyHost},
	}

	for _, tt := range tests {
		t.Run(tt.rawURL, func(t *testing.T) {
			_, err := validateURL(tt.rawURL)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogFormat(t *testing.T) {
	for _, format := range logFormats {
		if err := validateLogFormat(format); err != nil {
			t.Errorf("format %q: unexpected error: %v", format, err)
		}
	}

	if err := validateLogFormat("xml"); err == nil {
		t.Error("expected an error for an unknown log format")
	}
}
