package main

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
)

var (
	ErrInvalidScheme = errors.New("invalid URL scheme")
	ErrEmptyHost     = errors.New("empty host")
)

var schemeRegexp = regexp.MustCompile("^https?$")

// validateURL validates the given URL and URL scheme.
func validateURL(rawURL string) (*url.URL, error) {
	validURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	if !schemeRegexp.MatchString(validURL.Scheme) {
		return nil, ErrInvalidScheme
	}

	if validURL.Host == "" {
		return nil, ErrEmptyHost
	}

	return validURL, nil
}

func validateLogFormat(logFormat string) error {
	if _, ok := logFormatsSet[logFormat]; !ok {
		return fmt.Errorf("invalid log format: %s", logFormat)
	}

	return nil
}
