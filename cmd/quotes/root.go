package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// Exit codes.
const (
	exitOK        = 0
	exitUserError = 1
	exitSysError  = 2
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

const profileEnv = "APP_PROFILE"

// quoteAPI is the slice of the quotes client the commands call.
type quoteAPI interface {
	List(ctx context.Context, filter domain.Filter) ([]*domain.Quote, error)
	Get(ctx context.Context, id string) (*domain.Quote, error)
	Create(ctx context.Context, in domain.NewQuote) (*domain.Quote, error)
	Update(ctx context.Context, id string, in domain.QuoteReplacement) (*domain.Quote, error)
	Like(ctx context.Context, id string) (*domain.Quote, error)
	Delete(ctx context.Context, id string) error
}

// setupError marks failures that happen before any request is sent, such as
// unreadable configuration.
type setupError struct{ err error }

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

// app carries the flag values and the connected client for one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	profile   string
	configDir string
	baseURL   string
	output    string
	verbose   bool

	api quoteAPI
}

// execute runs the command line in args and returns the process exit code.
// Failures are reported on errOut as a single line.
func execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	a := &app{out: out, errOut: errOut}

	root := newRootCmd(a)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		notify(errOut, err)
		return exitCode(err)
	}

	return exitOK
}

func exitCode(err error) int {
	var setup *setupError
	switch {
	case err == nil:
		return exitOK
	case domain.IsUnavailable(err), errors.As(err, &setup):
		return exitSysError
	default:
		return exitUserError
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "quotes",
		Short: "Manage quotes through the quotes API",
		Long: `quotes reads and edits quotes stored behind the quotes API.

The API location comes from services.quotes.base_url in the selected
configuration profile, or from --base-url.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.connect()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	profile := os.Getenv(profileEnv)
	if profile == "" {
		profile = "local"
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.profile, "profile", profile, "configuration profile (env "+profileEnv+")")
	flags.StringVar(&a.configDir, "config-dir", config.DefaultDir, "directory holding the YAML configuration")
	flags.StringVar(&a.baseURL, "base-url", "", "quotes API root, overrides services.quotes.base_url")
	flags.StringVarP(&a.output, "output", "o", outputTable, "output format: table or json")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log client activity to stderr")

	root.AddCommand(
		newListCmd(a),
		newGetCmd(a),
		newCreateCmd(a),
		newEditCmd(a),
		newLikeCmd(a),
		newDeleteCmd(a),
	)

	return root
}

// connect validates the global flags and builds the API client from
// configuration. A client already set is kept.
func (a *app) connect() error {
	if a.output != outputTable && a.output != outputJSON {
		return fmt.Errorf("unknown output format %q, want %s or %s", a.output, outputTable, outputJSON)
	}

	if a.api != nil {
		return nil
	}

	cfg, err := config.LoadFrom(a.configDir, a.profile)
	if err != nil {
		return &setupError{fmt.Errorf("loading config: %w", err)}
	}
	if a.baseURL != "" {
		cfg.Services.Quotes.BaseURL = a.baseURL
	}

	// Client logs stay off stderr unless asked for, so a failure prints
	// exactly one line.
	logOut := io.Discard
	if a.verbose {
		logOut = a.errOut
	}
	logger := logging.NewWithWriter(&logging.Config{
		Level:   "debug",
		Format:  "text",
		Service: "quotes-cli",
		Version: Version,
	}, logOut)

	client, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Quotes.BaseURL,
		ServiceName: cfg.Services.Quotes.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return &setupError{fmt.Errorf("building client: %w", err)}
	}

	a.api = acl.NewQuoteClient(acl.QuoteClientConfig{
		Client:      client,
		ServiceName: cfg.Services.Quotes.Name,
		Logger:      logger,
	})

	return nil
}
