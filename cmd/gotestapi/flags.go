package main

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wallarm/gotestapi/internal/config"
	"github.com/wallarm/gotestapi/internal/version"
)

const (
	textLogFormat = "text"
	jsonLogFormat = "json"
)

var (
	logFormatsSet = map[string]any{
		textLogFormat: nil,
		jsonLogFormat: nil,
	}
	logFormats = slices.Collect(maps.Keys(logFormatsSet))
)

const defaultConfigPath = "config.yaml"

const cliDescription = `GoTestAPI sends one HTTP request per described API endpoint and checks
the response status code and the keys of the JSON body.
Homepage: https://github.com/wallarm/gotestapi

Usage: %s [OPTIONS] [--url <URL>]

Options:
`

var (
	configPath string
	quiet      bool
	logLevel   logrus.Level
	logFormat  string

	isConfigPathFlagUsed bool
)

var usage = func() {
	flag.CommandLine.SetOutput(os.Stdout)
	usage := cliDescription
	fmt.Fprintf(os.Stdout, usage, os.Args[0])
	flag.PrintDefaults()
}

// parseFlags parses all GoTestAPI CLI flags
func parseFlags() (args []string, err error) {
	flag.Usage = usage

	// General parameters
	flag.StringVar(&configPath, "configPath", defaultConfigPath, "Path to the config file")
	flag.BoolVar(&quiet, "quiet", false, "If present, disable verbose logging")
	logLvl := flag.String("logLevel", "info", "Logging level: panic, fatal, error, warn, info, debug, trace")
	flag.StringVar(&logFormat, "logFormat", textLogFormat, "Set logging format: "+strings.Join(logFormats, ", "))
	showVersion := flag.Bool("version", false, "Show GoTestAPI version and exit")

	// Target settings
	urlParam := flag.String("url", "", "Base URL of the API to check")
	flag.String("endpointsPath", "", "Path to a file or a folder with endpoint descriptors")
	flag.String("endpoint", "", "If set then only the endpoint with this path will be tested")
	flag.String("openapiFile", "", "Path to an OpenAPI file to import endpoint descriptors from")

	// HTTP client settings
	flag.Bool("tlsVerify", true, "Verify the received TLS certificate")
	flag.String("proxy", "", "Proxy URL to use")
	flag.String("addHeader", "", "An HTTP header to add to requests")
	flag.Bool("addDebugHeader", false, "Add header with a hash of the endpoint method and path in each request")
	flag.Int("maxIdleConns", 2, "The maximum number of keep-alive connections")
	flag.Int("maxRedirects", 50, "The maximum number of handling redirects")
	flag.Int("idleConnTimeout", 2, "The maximum amount of time a keep-alive connection will live")
	flag.Int("timeout", 0, "Request timeout in seconds, 0 means no timeout")

	// Output settings
	flag.Bool("noProgressBar", false, "If present, the progress bar will not be displayed")

	flag.Parse()

	// show version and exit
	if *showVersion == true {
		fmt.Fprintf(os.Stderr, "GoTestAPI %s\n", version.Version)
		os.Exit(0)
	}

	logrusLogLvl, err := logrus.ParseLevel(*logLvl)
	if err != nil {
		return nil, err
	}
	logLevel = logrusLogLvl

	if err = validateLogFormat(logFormat); err != nil {
		return nil, err
	}

	// the URL may also come from the config file or the OpenAPI file,
	// so it is validated once more after the config is loaded
	if *urlParam != "" {
		if _, err = validateURL(*urlParam); err != nil {
			return nil, errors.Wrap(err, "URL is not valid")
		}
	}

	checkUsedFlags()

	args, err = normalizeArgs()
	if err != nil {
		return nil, errors.Wrap(err, "couldn't normalize args")
	}

	return args, nil
}

func checkUsedFlags() {
	fn := func(f *flag.Flag) {
		if f.Name == "configPath" {
			isConfigPathFlagUsed = f.Changed
		}
	}

	flag.Visit(fn)
}

// normalizeArgs returns string with used CLI args in a unified from.
func normalizeArgs() ([]string, error) {
	// disable lexicographical order
	flag.CommandLine.SortFlags = false

	var (
		args []string
		err  error
	)

	fn := func(f *flag.Flag) {
		// skip if flag wasn't changed
		if !f.Changed {
			return
		}

		var (
			value string
			arg   string
		)

		// all types listed in parseFlags function
		argType := f.Value.Type()
		switch argType {
		case "string":
			value = strings.TrimSpace(f.Value.String())

			if strings.Contains(value, " ") {
				value = `"` + value + `"`
			}

			arg = fmt.Sprintf("--%s=%s", f.Name, value)

		case "bool":
			arg = fmt.Sprintf("--%s=%s", f.Name, f.Value.String())

		case "int":
			value = f.Value.String()
			arg = fmt.Sprintf("--%s=%s", f.Name, value)

		default:
			err = multierror.Append(err, fmt.Errorf("unknown CLI argument type: %s", argType))
		}

		args = append(args, arg)
	}

	// get all changed flags
	flag.Visit(fn)

	if err != nil {
		return nil, err
	}

	return args, nil
}

// loadConfig loads the specified config file and merges it with the parameters
// passed via CLI. A missing default config file is not an error.
func loadConfig() (cfg *config.Config, err error) {
	err = viper.BindPFlags(flag.CommandLine)
	if err != nil {
		return nil, err
	}
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	_, statErr := os.Stat(configPath)
	if statErr == nil || isConfigPathFlagUsed {
		err = viper.ReadInConfig()
		if err != nil {
			return nil, errors.Wrap(err, "couldn't read config file")
		}
	}

	err = viper.Unmarshal(&cfg)
	return
}
