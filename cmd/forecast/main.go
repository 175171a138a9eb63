package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/ngmaloney/forecast-terminal/internal/config"
	"github.com/ngmaloney/forecast-terminal/internal/iplocate"
	"github.com/ngmaloney/forecast-terminal/internal/models"
	"github.com/ngmaloney/forecast-terminal/internal/openweather"
	"github.com/ngmaloney/forecast-terminal/internal/resolve"
	"github.com/ngmaloney/forecast-terminal/internal/timezone"
	"github.com/ngmaloney/forecast-terminal/internal/ui"
)

const (
	locationPrompt = "Enter location (or press Enter for current location): "

	setupMessage = `OpenWeatherMap API key required.

Setup:
1. Get a free API key from openweathermap.org
2. Add it to ~/.env file:
   echo "OPENWEATHERMAP_API_KEY=your_api_key_here" >> ~/.env
3. Run the script again`
)

var (
	errorPrefix = color.New(color.FgRed, color.Bold).SprintFunc()
	warnText    = color.New(color.FgYellow).SprintFunc()
)

// positionSource is the caller's current position and city
type positionSource interface {
	resolve.PositionSource
	Query(ctx context.Context) string
}

// app wires configuration, clients and the terminal together
type app struct {
	stdin, stdout, stderr *os.File
	loadOptions           []config.LoadOption
	position              func(logger *slog.Logger) positionSource
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		position: func(logger *slog.Logger) positionSource {
			return iplocate.NewClient(nil, logger)
		},
	}
	os.Exit(a.run(ctx, os.Args[1:]))
}

// run executes one invocation and returns the process exit code
func (a *app) run(ctx context.Context, args []string) int {
	cfg, err := config.Load(args, a.loadOptions...)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(a.stdout, config.Usage())
			return 0
		}
		a.fail(err, "")
		return 1
	}
	if err := cfg.Validate(); err != nil {
		a.fail(err, "")
		return 1
	}

	logger := cfg.NewLogger(a.stderr)

	mode := ui.ModeAuto
	if !cfg.Interactive {
		mode = ui.ModeNone
	}
	console := ui.NewConsole(mode, a.stdin, a.stdout)
	position := a.position(logger)

	query := cfg.Location
	if query == "" {
		query = a.promptForLocation(ctx, console.Prompter(), position)
	}

	zones, err := timezone.NewService()
	if err != nil {
		logger.Warn("time zone lookup unavailable, using UTC offsets", "error", err)
		zones = timezone.NewServiceWithFinder(nil)
	}

	owm := openweather.NewClient(openweather.Options{
		BaseURL:    cfg.API.BaseURL,
		APIKey:     cfg.API.Key,
		Timeout:    cfg.API.Timeout,
		RetryCount: cfg.API.Retries,
		Logger:     logger,
	})

	resolver := resolve.New(owm, owm, position,
		resolve.WithSelector(console.Selector()),
		resolve.WithZones(zones),
		resolve.WithLogger(logger),
	)

	report, err := resolver.Run(ctx, resolve.Request{Query: query, Days: cfg.Days, Lang: cfg.Lang})
	if err != nil {
		logger.Debug("resolution failed", "query", query, "error", err)
		a.fail(err, query)
		return 1
	}

	fmt.Fprintln(a.stdout, report.Text)
	return 0
}

// promptForLocation asks for a location, defaulting to the caller's city
func (a *app) promptForLocation(ctx context.Context, prompter ui.Prompter, position positionSource) string {
	current := position.Query(ctx)
	if input := prompter.Prompt(locationPrompt); input != "" {
		return input
	}
	fmt.Fprintf(a.stdout, "Using current location: %s\n", current)
	return current
}

// fail prints the user-facing message for err
func (a *app) fail(err error, query string) {
	fmt.Fprintln(a.stderr, userMessage(err, query))
}

// userMessage maps an error onto the one-line text shown to the user
func userMessage(err error, query string) string {
	var ve *config.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, models.ErrUnauthorized):
		return warnText(setupMessage)
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrNoPriorityMatch):
		return fmt.Sprintf("Location '%s' not found. Please try a more specific location (e.g., 'Los Angeles, CA' or 'London, UK').", query)
	default:
		return fmt.Sprintf("%s %v", errorPrefix("Error:"), err)
	}
}

