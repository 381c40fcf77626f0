package gohttp

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/wallarm/gotestapi/internal/config"
	"github.com/wallarm/gotestapi/internal/helpers"
	"github.com/wallarm/gotestapi/internal/scanner/clients"
	"github.com/wallarm/gotestapi/internal/scanner/types"
)

var _ clients.HTTPClient = (*Client)(nil)

type Client struct {
	client     *http.Client
	headers    map[string]string
	hostHeader string
}

func NewClient(cfg *config.Config) (*Client, error) {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig:     &tls.Config{InsecureSkipVerify: !cfg.TLSVerify},
		IdleConnTimeout:     time.Duration(cfg.IdleConnTimeout) * time.Second,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConns, // net.http hardcodes DefaultMaxIdleConnsPerHost to 2!
	}

	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, errors.Wrap(err, "couldn't parse proxy URL")
		}

		tr.Proxy = http.ProxyURL(proxyURL)
	}

	maxRedirects := cfg.MaxRedirects
	redirectFunc := func(req *http.Request, via []*http.Request) error {
		// if maxRedirects is equal to 0 then tell the HTTP client to use
		// the first HTTP response (disable following redirects)
		if maxRedirects == 0 {
			return http.ErrUseLastResponse
		}

		if len(via) > maxRedirects {
			return errors.New("max redirect number exceeded")
		}

		return nil
	}

	client := &http.Client{
		Transport:     tr,
		CheckRedirect: redirectFunc,
		Timeout:       time.Duration(cfg.Timeout) * time.Second,
	}

	// viper lowercases map keys read from config.yaml
	configuredHeaders := helpers.CanonicalHeaders(cfg.HTTPHeaders)

	customHeader := strings.SplitN(cfg.AddHeader, ":", 2)
	if len(customHeader) > 1 {
		header := http.CanonicalHeaderKey(strings.TrimSpace(customHeader[0]))
		value := strings.TrimSpace(customHeader[1])
		configuredHeaders[header] = value
	}

	return &Client{
		client:     client,
		headers:    configuredHeaders,
		hostHeader: configuredHeaders["Host"],
	}, nil
}

func (c *Client) SendRequest(ctx context.Context, req types.Request) (types.Response, error) {
	r, ok := req.(*types.GoHTTPRequest)
	if !ok {
		return nil, errors.Errorf("bad request type: %T, expected %T", req, &types.GoHTTPRequest{})
	}

	httpReq := r.Req.WithContext(ctx)

	for header, value := range c.headers {
		// headers set by the request itself (e.g. Content-Type of a JSON
		// payload) take precedence over configured ones
		if httpReq.Header.Get(header) == "" {
			httpReq.Header.Set(header, value)
		}
	}
	if c.hostHeader != "" {
		httpReq.Host = c.hostHeader
	}

	if r.DebugHeaderValue != "" {
		httpReq.Header.Set(clients.DebugHeader, r.DebugHeaderValue)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "sending http request")
	}

	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	statusCode := resp.StatusCode

	reasonIndex := strings.Index(resp.Status, " ")
	reason := resp.Status[reasonIndex+1:]

	response := &types.ResponseMeta{
		StatusCode:   statusCode,
		StatusReason: reason,
		Headers:      resp.Header,
		Content:      bodyBytes,
	}

	return response, nil
}
