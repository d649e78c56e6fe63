package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cratedocs"
	"github.com/fwojciec/cratedocs/goquery"
	cratehttp "github.com/fwojciec/cratedocs/http"
	"github.com/fwojciec/cratedocs/lookup"
	"github.com/fwojciec/cratedocs/readability"
	crateslog "github.com/fwojciec/cratedocs/slog"
	"github.com/fwojciec/cratedocs/trafilatura"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded into the environment before configuration is read.
	// Variables already set are left untouched. Empty disables loading.
	EnvFile string

	// Ready, if set, is called once the server is bound.
	Ready func(url string)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
	}
}

// Run starts the relay and blocks until ctx is done.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
		}
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cratedocs"),
		kong.Description("Serve docs.rs crate documentation as plain text over HTTP"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"docs_url": cratedocs.DefaultDocsBaseURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cli.LogLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := crateslog.NewLoggingFetcher(
		cratehttp.NewFetcher(cratehttp.WithTimeout(cli.FetchTimeout)),
		logger,
	)
	defer fetcher.Close()

	server := cratehttp.NewServer()
	server.Port = cli.Port
	server.Logger = logger
	server.CommandService = crateslog.NewLoggingCommandService(&lookup.Service{
		Fetcher:   fetcher,
		Extractor: newTextExtractor(cli.Extractor, logger),
		BaseURL:   cli.DocsURL,
	}, logger)

	if err := server.Listen(); err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cli.Port, err)
	}
	logger.Info("starting crate docs relay", "url", server.URL()+"/mcp", "extractor", cli.Extractor)
	if m.Ready != nil {
		m.Ready(server.URL())
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		return server.Close()
	})
	return g.Wait()
}

// CLI defines the process configuration for Kong. Every field can be set
// from the environment.
type CLI struct {
	Port         string        `env:"PORT" default:"6666" help:"Port to listen on. The server binds to 127.0.0.1 only."`
	LogLevel     string        `env:"LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Minimum log level (debug, info, warn, error)"`
	Extractor    string        `env:"CRATEDOCS_EXTRACTOR" default:"text" enum:"text,trafilatura,readability" help:"Narrow pages to main content before flattening (text, trafilatura, readability)"`
	FetchTimeout time.Duration `env:"CRATEDOCS_FETCH_TIMEOUT" default:"0s" help:"Timeout per docs fetch; 0 leaves fetches unbounded"`
	DocsURL      string        `env:"CRATEDOCS_DOCS_URL" default:"${docs_url}" hidden:"" help:"Base URL of the docs host"`
}

// newTextExtractor builds the text extractor for the configured mode.
func newTextExtractor(mode string, logger *slog.Logger) cratedocs.TextExtractor {
	switch mode {
	case "trafilatura":
		return goquery.NewTextExtractor(
			goquery.WithContentExtractor(trafilatura.NewExtractor()),
			goquery.WithLogger(logger),
		)
	case "readability":
		return goquery.NewTextExtractor(
			goquery.WithContentExtractor(readability.NewExtractor()),
			goquery.WithLogger(logger),
		)
	default:
		return goquery.NewTextExtractor()
	}
}
