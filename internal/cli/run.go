package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"syscall"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/weather-cli/internal/config"
	"github.com/i474232898/weather-cli/internal/render"
	"github.com/i474232898/weather-cli/internal/weather"
	"github.com/i474232898/weather-cli/internal/weather/providers"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var (
	validate  = validator.New()
	flagLike  = regexp.MustCompile(`^--?[A-Za-z]`)
	errNoFlag = errors.New("options are not supported; pass the city name only")
)

// locationArg holds the joined positional words.
type locationArg struct {
	Value string `validate:"omitempty,max=100"`
}

// Options wires a single run.
type Options struct {
	Program  string
	Config   *config.AppConfig
	Client   *http.Client
	Renderer render.Renderer
	Stdout   io.Writer
	Stderr   io.Writer
}

// NewFetcher builds the keyed/keyless provider pair from configuration.
func NewFetcher(cfg *config.AppConfig, client *http.Client) *weather.Fetcher {
	return weather.NewFetcher(
		providers.NewOpenWeatherFactory(client, cfg.OpenWeatherBaseURL, cfg.DefaultCity),
		providers.NewWttrProvider(client, cfg.WttrBaseURL),
	)
}

// Run executes one fetch-render cycle and returns the process exit code.
func Run(ctx context.Context, args []string, opts Options) int {
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
		usage(opts.Stdout, opts.Program)
		return ExitOK
	}

	loc, err := parseLocation(args)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "error: %v\n", err)
		usage(opts.Stderr, opts.Program)
		return ExitUsage
	}

	snap, err := NewFetcher(opts.Config, opts.Client).Fetch(ctx, loc, opts.Config.OpenWeatherAPIKey)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "error: %v\n", err)
		return ExitFailure
	}

	if err := opts.Renderer.Render(opts.Stdout, snap, opts.Config.Units); err != nil {
		fmt.Fprintf(opts.Stderr, "error: write output: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}

func parseLocation(args []string) (weather.Location, error) {
	for _, a := range args {
		if flagLike.MatchString(a) {
			return "", fmt.Errorf("%w (got %q)", errNoFlag, a)
		}
	}

	loc := weather.NewLocation(args...)
	if len(args) > 0 && loc.Implicit() {
		return "", errors.New("city name must not be blank")
	}
	if err := validate.Struct(locationArg{Value: string(loc)}); err != nil {
		return "", errors.New("city name must not exceed 100 characters")
	}
	return loc, nil
}

func usage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s [City]\n", program)
	fmt.Fprintln(w, "\nWith no city the provider picks a default location.")
	fmt.Fprintln(w, "\nEnvironment:")
	fmt.Fprintln(w, "  OPENWEATHER_KEY       OpenWeatherMap key (wttr.in is used without it)")
	fmt.Fprintln(w, "  WEATHER_UNITS         metric (default) or imperial")
	fmt.Fprintln(w, "  WEATHER_DEFAULT_CITY  city used with OPENWEATHER_KEY when none is given")
	fmt.Fprintln(w, "  WEATHER_HTTP_TIMEOUT  request timeout, e.g. 8s")
	fmt.Fprintln(w, "  WEATHER_DEBUG         true to log requests to stderr")
}

// Main is the shared body of the weather-* commands. newRenderer receives
// whether stdout can show colour.
func Main(args []string, program string, newRenderer func(color bool) render.Renderer) int {
	log.SetOutput(io.Discard)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		return ExitFailure
	}
	if cfg.Debug {
		log.SetOutput(os.Stderr)
	}

	// Shared HTTP client for outbound provider calls.
	client := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stdout, color := render.Stdout()
	return Run(ctx, args, Options{
		Program:  program,
		Config:   cfg,
		Client:   client,
		Renderer: newRenderer(color),
		Stdout:   stdout,
		Stderr:   os.Stderr,
	})
}
