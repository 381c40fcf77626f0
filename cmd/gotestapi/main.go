package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/wallarm/gotestapi/internal/config"
	"github.com/wallarm/gotestapi/internal/db"
	"github.com/wallarm/gotestapi/internal/helpers"
	"github.com/wallarm/gotestapi/internal/openapi"
	"github.com/wallarm/gotestapi/internal/platform"
	"github.com/wallarm/gotestapi/internal/report"
	"github.com/wallarm/gotestapi/internal/scanner"
	"github.com/wallarm/gotestapi/internal/scanner/clients/gohttp"
	"github.com/wallarm/gotestapi/internal/version"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-shutdown
		logger.WithField("signal", sig).Info("testing canceled")
		cancel()
	}()

	args, err := parseFlags()
	if err != nil {
		logger.WithError(err).Error("couldn't parse flags")
		os.Exit(1)
	}

	logger.SetLevel(logLevel)
	if logFormat == jsonLogFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if quiet {
		logger.SetOutput(io.Discard)
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.WithError(err).Error("couldn't load config")
		os.Exit(1)
	}

	allPassed, err := run(ctx, cfg, args, logger)
	if err != nil {
		logger.WithError(err).Error("caught error in main function")
		os.Exit(1)
	}

	if !allPassed {
		os.Exit(1)
	}
}

// run loads the endpoints, tests them and prints the report. It reports
// whether every endpoint passed.
func run(ctx context.Context, cfg *config.Config, args []string, logger *logrus.Logger) (bool, error) {
	logger.WithFields(logrus.Fields{
		"version": version.Version,
		"args":    args,
	}).Info("GoTestAPI started")

	endpoints, err := loadEndpoints(ctx, cfg, logger)
	if err != nil {
		return false, err
	}

	targetURL, err := validateURL(cfg.URL)
	if err != nil {
		return false, errors.Wrapf(err, "URL %q is not valid", cfg.URL)
	}

	logger.WithFields(logrus.Fields{
		"target":   helpers.GetTargetURLStr(targetURL),
		"base_url": cfg.URL,
	}).Info("Target API")

	endpoints = db.SelectEndpoints(endpoints, cfg.Endpoint)

	endpointsDB, err := db.NewDB(endpoints)
	if err != nil {
		return false, errors.Wrap(err, "couldn't create endpoints DB")
	}

	logger.WithField("fp", endpointsDB.Hash).Info("Endpoints fingerprint")

	httpClient, err := gohttp.NewClient(cfg)
	if err != nil {
		return false, errors.Wrap(err, "couldn't create HTTP client")
	}

	var bar *progressbar.ProgressBar
	if !cfg.NoProgressBar && !quiet && terminal.IsTerminal(int(os.Stderr.Fd())) {
		bar = platform.NewProgressBar(len(endpointsDB.GetEndpoints()), os.Stderr)
	}

	s := scanner.New(logger, cfg, endpointsDB, httpClient, bar)
	results := s.Run(ctx)

	stat := endpointsDB.GetStatistics(results)

	err = report.RenderConsoleReport(os.Stdout, results, stat)
	if err != nil {
		return false, errors.Wrap(err, "couldn't render report")
	}

	return stat.AllPassed(), nil
}

// loadEndpoints collects endpoints from the descriptor files first and then
// from the OpenAPI file. The base URL falls back to the first OpenAPI server.
func loadEndpoints(ctx context.Context, cfg *config.Config, logger *logrus.Logger) ([]*db.Endpoint, error) {
	var endpoints []*db.Endpoint

	if cfg.EndpointsPath == "" && cfg.OpenAPIFile == "" {
		return nil, errors.New("neither endpoints path nor OpenAPI file is set")
	}

	if cfg.EndpointsPath != "" {
		logger.WithField("path", cfg.EndpointsPath).Info("Endpoints loading started")

		loaded, err := db.LoadEndpoints(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "loading endpoints")
		}
		endpoints = append(endpoints, loaded...)

		logger.WithField("endpoints", len(loaded)).Info("Endpoints loading finished")
	}

	if cfg.OpenAPIFile != "" {
		doc, err := openapi.LoadOpenAPISpec(ctx, cfg.OpenAPIFile)
		if err != nil {
			return nil, errors.Wrap(err, "couldn't load OpenAPI spec")
		}

		if cfg.URL == "" {
			cfg.URL = openapi.ServerURL(doc)
		}

		imported, skipped := openapi.NewEndpoints(doc)
		for _, path := range skipped {
			logger.WithField("path", path).Debug("OpenAPI path skipped")
		}
		endpoints = append(endpoints, imported...)

		logger.WithFields(logrus.Fields{
			"endpoints": len(imported),
			"skipped":   len(skipped),
		}).Info("OpenAPI endpoints imported")
	}

	return endpoints, nil
}
