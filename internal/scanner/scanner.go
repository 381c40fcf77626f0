package scanner

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/wallarm/gotestapi/internal/config"
	"github.com/wallarm/gotestapi/internal/db"
	"github.com/wallarm/gotestapi/internal/helpers"
	"github.com/wallarm/gotestapi/internal/scanner/clients"
)

type Scanner struct {
	logger *logrus.Logger
	cfg    *config.Config
	db     *db.DB

	httpClient  clients.HTTPClient
	progressBar *progressbar.ProgressBar
}

// New creates a new Scanner. progressBar may be nil.
func New(
	logger *logrus.Logger,
	cfg *config.Config,
	db *db.DB,
	httpClient clients.HTTPClient,
	progressBar *progressbar.ProgressBar,
) *Scanner {
	return &Scanner{
		logger:      logger,
		cfg:         cfg,
		db:          db,
		httpClient:  httpClient,
		progressBar: progressBar,
	}
}

// Run tests every endpoint one after another and returns one result per
// endpoint, in the order the endpoints were loaded. A failed endpoint never
// stops the run.
func (s *Scanner) Run(ctx context.Context) []*db.TestResult {
	endpoints := s.db.GetEndpoints()

	s.logger.WithField("endpoints", len(endpoints)).Info("Testing started")
	defer s.logger.Info("Testing finished")

	start := time.Now()
	defer func() {
		s.logger.WithField("duration", time.Since(start)).Debug("Testing time")
	}()

	results := make([]*db.TestResult, 0, len(endpoints))
	for _, e := range endpoints {
		results = append(results, s.testEndpoint(ctx, e))

		if s.progressBar != nil {
			s.progressBar.Add(1)
		}
	}

	if s.progressBar != nil {
		s.progressBar.Finish()
	}

	return results
}

func (s *Scanner) testEndpoint(ctx context.Context, e *db.Endpoint) *db.TestResult {
	logger := s.logger.WithFields(logrus.Fields{
		"endpoint": e.Path,
		"method":   e.Method.String(),
	})

	check, status, err := s.sendAndCheck(ctx, e)
	if err != nil {
		logger.WithError(err).Debug("endpoint test failed")
		return db.NewErrorResult(e, err)
	}

	result := db.NewCheckedResult(e, status, check.StatusCheck, check.ContentCheck, check.MissingKeys)

	logger.WithFields(logrus.Fields{
		"status":  status,
		"verdict": result.Verdict.String(),
	}).Debug("endpoint tested")

	return result
}

func (s *Scanner) sendAndCheck(ctx context.Context, e *db.Endpoint) (*CheckResult, int, error) {
	req, err := NewRequest(ctx, s.cfg.URL, e)
	if err != nil {
		return nil, 0, err
	}

	if s.cfg.AddDebugHeader {
		req.DebugHeaderValue = helpers.HexOfHashOfEndpointIdentifier(e.Method.String(), e.Path)
	}

	resp, err := s.httpClient.SendRequest(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	check, err := CheckResponse(e.ExpectedStatus, e.ExpectedKeys, resp)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "status %d", resp.GetStatusCode())
	}

	return check, resp.GetStatusCode(), nil
}
