package openapi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// pathParameters returns the path parameters of the operation merged with the
// ones declared on the path item. Operation parameters take precedence.
func pathParameters(item *openapi3.PathItem, op *openapi3.Operation) map[string]*openapi3.Parameter {
	params := make(map[string]*openapi3.Parameter)

	for _, list := range []openapi3.Parameters{item.Parameters, op.Parameters} {
		for _, ref := range list {
			if ref == nil || ref.Value == nil || ref.Value.In != openapi3.ParameterInPath {
				continue
			}
			params[ref.Value.Name] = ref.Value
		}
	}

	return params
}

// parameterValue returns a documented value for the parameter: its example,
// the schema example or the schema default, in that order.
func parameterValue(p *openapi3.Parameter) (string, bool) {
	if p.Example != nil {
		return fmt.Sprint(p.Example), true
	}

	for _, example := range p.Examples {
		if example != nil && example.Value != nil && example.Value.Value != nil {
			return fmt.Sprint(example.Value.Value), true
		}
	}

	if p.Schema == nil || p.Schema.Value == nil {
		return "", false
	}

	if p.Schema.Value.Example != nil {
		return fmt.Sprint(p.Schema.Value.Example), true
	}

	if p.Schema.Value.Default != nil {
		return fmt.Sprint(p.Schema.Value.Default), true
	}

	return "", false
}

// resolvePath substitutes every {name} segment of the path template with the
// documented parameter value. It fails if any parameter has no value.
func resolvePath(path string, params map[string]*openapi3.Parameter) (string, bool) {
	if !strings.Contains(path, "{") {
		return path, true
	}

	var b strings.Builder

	rest := path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			b.WriteString(rest)
			break
		}

		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return "", false
		}
		end += start

		p, ok := params[rest[start+1:end]]
		if !ok {
			return "", false
		}

		value, ok := parameterValue(p)
		if !ok {
			return "", false
		}

		b.WriteString(rest[:start])
		b.WriteString(url.PathEscape(value))
		rest = rest[end+1:]
	}

	return b.String(), true
}
