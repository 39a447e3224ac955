// Package cli is the shared engine of the command line front-ends. Each
// binary declares its command tree with cobra and leans on this package for
// everything the trees have in common: global flags, environment and config
// file bootstrap, client construction, request body assembly from key=value
// pairs, standard-parameter validation, output rendering and logging.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MOZGIII/google-apis-go/auth"
	"github.com/MOZGIII/google-apis-go/client"
	"github.com/MOZGIII/google-apis-go/core"
)

// Environment variables the engine reads when the matching flag is unset.
const (
	EnvAccessToken = "GOOGLE_ACCESS_TOKEN"
	EnvAPIKey      = "GOOGLE_API_KEY"
)

// UsageError marks an error caused by how the tool was invoked (unknown
// flag, malformed key=value pair, unknown parameter name) as opposed to a
// failed API call. Usage errors exit with status 2.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// Engine carries the state shared by every command of a binary: the parsed
// global flags, the constructed client runtime, and the logger. It is built
// once in the root command's PersistentPreRunE, so RunE bodies can assume
// Client and Logger are ready.
type Engine struct {
	root *cobra.Command

	// global flag values
	scopes      []string
	accessToken string
	apiKey      string
	configPath  string
	debug       bool
	logFile     string
	userAgent   string
	baseURL     string
	outPath     string
	params      []string
	retries     int

	client *client.Client
	logger *slog.Logger
}

// New creates the engine and the root command with the global flag set.
func New(name, version, about string) *Engine {
	e := &Engine{}
	e.root = &cobra.Command{
		Use:           name,
		Version:       version,
		Short:         about,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.bootstrap()
		},
	}
	e.root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	pf := e.root.PersistentFlags()
	pf.StringArrayVar(&e.scopes, "scope", nil,
		"additional OAuth scope to request, may be repeated")
	pf.StringVar(&e.accessToken, "access-token", "",
		"OAuth access token to authenticate with (default $"+EnvAccessToken+")")
	pf.StringVar(&e.apiKey, "key", "",
		"API key for operations that accept one (default $"+EnvAPIKey+")")
	pf.StringVar(&e.configPath, "config", "",
		"YAML config file (default ~/.google-service-cli/config.yaml)")
	pf.BoolVar(&e.debug, "debug", false,
		"log at debug level and print full error detail")
	pf.StringVar(&e.logFile, "log-file", "",
		"also write JSON logs to this rotating file")
	pf.StringVar(&e.userAgent, "user-agent", "",
		"override the User-Agent header")
	pf.StringVar(&e.baseURL, "base-url", "",
		"override the API endpoint, e.g. to talk to a local mock")
	pf.StringVarP(&e.outPath, "out", "o", "",
		"write the response to this file instead of standard output")
	pf.StringArrayVarP(&e.params, "param", "p", nil,
		"standard API parameter as name=value, may be repeated")
	pf.IntVar(&e.retries, "retries", 0,
		"retry transient failures up to this many times with backoff")

	return e
}

// Root returns the root command for registering subcommands.
func (e *Engine) Root() *cobra.Command { return e.root }

// AddCommand registers subcommands on the root.
func (e *Engine) AddCommand(cmds ...*cobra.Command) {
	e.root.AddCommand(cmds...)
}

// Client returns the runtime built during bootstrap.
func (e *Engine) Client() *client.Client { return e.client }

// Scopes returns the --scope values, to be appended to each call's declared
// scope set.
func (e *Engine) Scopes() []string { return e.scopes }

// BaseURL returns the --base-url override, or "" to keep the API default.
func (e *Engine) BaseURL() string { return e.baseURL }

// bootstrap resolves configuration (flags beat environment beats config
// file), then builds the logger and the client runtime.
func (e *Engine) bootstrap() error {
	// A .env next to the binary or in the working directory feeds the
	// environment lookups below; absence is not an error.
	_ = godotenv.Load()

	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	if e.accessToken == "" {
		e.accessToken = os.Getenv(EnvAccessToken)
	}
	if e.accessToken == "" {
		e.accessToken = cfg.AccessToken
	}
	if e.apiKey == "" {
		e.apiKey = os.Getenv(EnvAPIKey)
	}
	if e.apiKey == "" {
		e.apiKey = cfg.Key
	}
	if e.userAgent == "" {
		e.userAgent = cfg.UserAgent
	}
	if e.baseURL == "" {
		e.baseURL = cfg.BaseURL
	}
	if e.logFile == "" {
		e.logFile = cfg.LogFile
	}
	if !e.debug {
		e.debug = cfg.Debug
	}
	if e.retries == 0 {
		e.retries = cfg.Retries
	}
	e.scopes = append(e.scopes, cfg.Scopes...)

	e.logger = newLogger(e.debug, e.logFile)

	opts := []client.Option{client.WithLogger(e.logger)}
	if e.accessToken != "" {
		opts = append(opts, client.WithTokenProvider(auth.Static(e.accessToken)))
	} else {
		opts = append(opts, client.WithTokenProvider(auth.FromEnv()))
	}
	if e.apiKey != "" {
		opts = append(opts, client.WithAPIKey(e.apiKey))
	}
	if e.userAgent != "" {
		opts = append(opts, client.WithUserAgent(e.userAgent))
	}
	if e.retries > 0 {
		opts = append(opts, client.WithDelegate(client.Delegate{
			RetryPolicy: &client.Backoff{MaxRetries: e.retries},
		}))
	}

	e.client, err = client.New(opts...)
	return err
}

// loadConfig reads the YAML config file. An explicitly named file must
// exist; the default location is optional.
func (e *Engine) loadConfig() (Config, error) {
	path := e.configPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, nil
		}
		path = filepath.Join(home, ".google-service-cli", "config.yaml")
		if _, err := os.Stat(path); err != nil {
			return Config{}, nil
		}
	}
	return LoadConfig(path)
}

// Execute runs the root command and exits the process: 0 on success, 2 for
// usage errors, 1 for everything else (I/O, transport, API failures).
func (e *Engine) Execute() {
	err := e.root.Execute()
	if err == nil {
		os.Exit(0)
	}
	e.renderError(err)

	var usage *UsageError
	var clash *core.FieldClashError
	if errors.As(err, &usage) || errors.As(err, &clash) {
		os.Exit(2)
	}
	os.Exit(1)
}

// renderError writes the failure to standard error. With --debug,
// structured API errors are expanded to their full capture.
func (e *Engine) renderError(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	if !e.debug {
		return
	}
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintf(os.Stderr, "status: %d %s\n", apiErr.StatusCode, apiErr.Status)
		for _, item := range apiErr.Errors {
			fmt.Fprintf(os.Stderr, "  %s: %s (%s)\n", item.Reason, item.Message, item.Domain)
		}
		if apiErr.Body != "" {
			fmt.Fprintln(os.Stderr, "body:", apiErr.Body)
		}
	}
	var httpErr *core.HTTPError
	if errors.As(err, &httpErr) {
		fmt.Fprintf(os.Stderr, "status: %s\nbody: %s\n", httpErr.Status, httpErr.Body)
	}
}
