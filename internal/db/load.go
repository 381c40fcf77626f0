package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/wallarm/gotestapi/internal/config"
)

// endpointsFile is the layout of a YAML file with endpoint descriptors.
type endpointsFile struct {
	Endpoints []rawEndpoint `yaml:"endpoints"`
}

type rawEndpoint struct {
	Endpoint       string      `yaml:"endpoint"`
	ExpectedStatus *int        `yaml:"expected_status"`
	ExpectedKeys   []string    `yaml:"expected_keys"`
	Method         string      `yaml:"method"`
	Payload        interface{} `yaml:"payload"`
}

// LoadEndpoints reads endpoint descriptors from cfg.EndpointsPath, which is
// either a single YAML file or a directory walked in lexical order. All
// invalid descriptors are reported together.
func LoadEndpoints(cfg *config.Config) (endpoints []*Endpoint, err error) {
	var files []string

	if cfg.EndpointsPath == "" {
		return nil, errors.New("empty endpoints path")
	}

	if err = filepath.Walk(cfg.EndpointsPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "couldn't read endpoints path")
	}

	var loadErr error

	for _, endpointsFilePath := range files {
		fileExt := filepath.Ext(endpointsFilePath)
		if fileExt != ".yml" && fileExt != ".yaml" {
			continue
		}

		yamlFile, err := os.ReadFile(endpointsFilePath)
		if err != nil {
			return nil, err
		}

		fileEndpoints, err := ParseEndpoints(yamlFile)
		if err != nil {
			loadErr = multierror.Append(loadErr, errors.Wrap(err, endpointsFilePath))
			continue
		}

		endpoints = append(endpoints, fileEndpoints...)
	}

	if loadErr != nil {
		return nil, loadErr
	}

	return endpoints, nil
}

// ParseEndpoints decodes and validates a YAML document with an "endpoints"
// list.
func ParseEndpoints(data []byte) ([]*Endpoint, error) {
	var f endpointsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "couldn't parse endpoints")
	}

	var (
		endpoints []*Endpoint
		result    error
	)

	for i, raw := range f.Endpoints {
		e, err := raw.toEndpoint()
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "endpoint #%d (%s)", i+1, raw.Endpoint))
			continue
		}

		endpoints = append(endpoints, e)
	}

	if result != nil {
		return nil, result
	}

	return endpoints, nil
}

func (r rawEndpoint) toEndpoint() (*Endpoint, error) {
	method, err := ParseMethod(r.Method)
	if err != nil {
		return nil, err
	}

	e := NewEndpoint(r.Endpoint)
	e.Method = method
	e.ExpectedKeys = r.ExpectedKeys

	if r.ExpectedStatus != nil {
		e.ExpectedStatus = *r.ExpectedStatus
	}

	if r.Payload != nil {
		e.Payload = normalizeYAML(r.Payload)
	}

	if err = ValidateEndpoint(e); err != nil {
		return nil, err
	}

	return e, nil
}

// normalizeYAML converts the map[interface{}]interface{} values produced by
// yaml.v2 into map[string]interface{} so the payload can be encoded as JSON.
func normalizeYAML(v interface{}) interface{} {
	switch value := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(value))
		for k, item := range value {
			m[fmt.Sprintf("%v", k)] = normalizeYAML(item)
		}
		return m

	case []interface{}:
		s := make([]interface{}, len(value))
		for i, item := range value {
			s[i] = normalizeYAML(item)
		}
		return s

	default:
		return value
	}
}
