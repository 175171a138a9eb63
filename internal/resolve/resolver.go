package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ngmaloney/forecast-terminal/internal/forecast"
	"github.com/ngmaloney/forecast-terminal/internal/geocoding"
	"github.com/ngmaloney/forecast-terminal/internal/models"
)

// Geocoder resolves place names to candidates and coordinates to regions
type Geocoder interface {
	Geocode(ctx context.Context, query string) ([]models.LocationCandidate, error)
	ReverseRegion(ctx context.Context, coord models.Coordinate) (string, error)
}

// ForecastSource fetches raw forecast samples
type ForecastSource interface {
	ForecastByCoordinate(ctx context.Context, coord models.Coordinate, lang string) (*models.Forecast, error)
	ForecastByName(ctx context.Context, query, lang string) (*models.Forecast, error)
}

// PositionSource reports the caller's approximate position
type PositionSource interface {
	Coordinate(ctx context.Context) models.Coordinate
}

// Selector lets the user pick one of several numbered options.
// ok is false when nothing usable was entered.
type Selector interface {
	Choose(title, prompt string, options []string) (choice int, ok bool)
}

// ZoneLocator maps a forecast city to the zone its calendar dates use
type ZoneLocator interface {
	Location(coord models.Coordinate, offsetSeconds int) *time.Location
}

const (
	fallbackTitle   = "Multiple locations found for '%s':"
	fallbackPrompt  = "Select location (1-3) or press Enter for #1: "
	alternateTitle  = "Multiple %ss found:"
	alternatePrompt = "Press Enter to choose the best match (1) or select other location (2-3): "
	koreanPrompt    = "Press Enter to choose option (1) or select other location (2-3): "
	bestMatchSuffix = " (best match)"
)

// Request is one forecast lookup
type Request struct {
	Query string
	Days  int
	Lang  string
}

// Resolution is where a query ended up
type Resolution struct {
	Forecast *models.Forecast
	Display  string  // "City, Region, Country"
	Priority bool    // Query was written in Hangul
	Chosen   bool    // User picked a location interactively
	Path     []State // States visited, start to finish
}

// Report is a resolved, aggregated and rendered forecast
type Report struct {
	Resolution *Resolution
	Days       forecast.Result
	Text       string
}

// Resolver drives the resolution state machine against real collaborators
type Resolver struct {
	geocoder   Geocoder
	forecasts  ForecastSource
	position   PositionSource
	selector   Selector
	zones      ZoneLocator
	logger     *slog.Logger
	maxOptions int
}

// Option configures a Resolver
type Option func(*Resolver)

// WithSelector sets how the user picks between ambiguous locations
func WithSelector(s Selector) Option {
	return func(r *Resolver) { r.selector = s }
}

// WithZones sets how local calendar dates are computed
func WithZones(z ZoneLocator) Option {
	return func(r *Resolver) { r.zones = z }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// WithMaxOptions caps how many candidates are offered
func WithMaxOptions(n int) Option {
	return func(r *Resolver) { r.maxOptions = n }
}

// New creates a Resolver. Without a selector every prompt takes option 1.
func New(geocoder Geocoder, forecasts ForecastSource, position PositionSource, opts ...Option) *Resolver {
	r := &Resolver{
		geocoder:   geocoder,
		forecasts:  forecasts,
		position:   position,
		selector:   noSelection{},
		logger:     slog.Default(),
		maxOptions: geocoding.DefaultMaxOptions,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type noSelection struct{}

func (noSelection) Choose(string, string, []string) (int, bool) { return 0, false }

// Run resolves the query, aggregates the forecast by local date and renders it
func (r *Resolver) Run(ctx context.Context, req Request) (*Report, error) {
	res, err := r.Resolve(ctx, req.Query, req.Lang)
	if err != nil {
		return nil, err
	}

	var loc *time.Location
	if r.zones != nil {
		loc = r.zones.Location(res.Forecast.City.Coordinate, res.Forecast.UTCOffset)
	}
	if loc == nil {
		loc = time.UTC
	}

	days := forecast.Aggregate(res.Forecast.Samples, req.Days, loc)
	return &Report{
		Resolution: res,
		Days:       days,
		Text:       forecast.Render(res.Display, req.Days, days, req.Lang),
	}, nil
}

// Resolve runs the state machine to completion, then offers alternatives
func (r *Resolver) Resolve(ctx context.Context, query, lang string) (*Resolution, error) {
	a := &attempt{
		Resolver:   r,
		query:      query,
		normalized: NormalizeQuery(query),
		lang:       lang,
	}

	state := Start()
	var lastErr error
	for !state.Terminal() {
		a.path = append(a.path, state)

		var outcome Outcome
		outcome, lastErr = a.step(ctx, state)
		next := Next(state, outcome)
		r.logger.Debug("resolution step",
			"query", query,
			"state", state.String(),
			"outcome", outcome.String(),
			"next", next.String(),
			"error", lastErr)
		state = next
	}
	a.path = append(a.path, state)

	if state.Phase == Failed {
		if lastErr != nil {
			return nil, fmt.Errorf("resolving %q: %w: %v", query, state.Err, lastErr)
		}
		return nil, fmt.Errorf("resolving %q: %w", query, state.Err)
	}

	res := &Resolution{
		Forecast: a.result,
		Display:  r.describe(ctx, a.result.City),
		Priority: geocoding.HasHangul(query),
		Chosen:   a.chosen,
	}
	if !a.chosen {
		r.offerAlternatives(ctx, a, res)
	}
	res.Path = a.path
	return res, nil
}

// attempt holds the per-query state the step effects share
type attempt struct {
	*Resolver
	query      string
	normalized string
	lang       string

	user   *models.Coordinate
	result *models.Forecast
	chosen bool
	path   []State
}

func (r *attempt) step(ctx context.Context, s State) (Outcome, error) {
	switch {
	case s.Phase == ResolvingDirect:
		return r.direct(ctx)
	case s.Phase == ResolvingViaGeocode && s.Fallback:
		return r.viaGeocode(ctx, r.normalized, true)
	default:
		return r.viaGeocode(ctx, r.query, false)
	}
}

func (r *attempt) userPosition(ctx context.Context) models.Coordinate {
	if r.user == nil {
		c := models.DefaultCoordinate
		if r.position != nil {
			c = r.position.Coordinate(ctx)
		}
		r.user = &c
	}
	return *r.user
}

func (r *attempt) direct(ctx context.Context) (Outcome, error) {
	f, err := r.forecasts.ForecastByName(ctx, r.normalized, r.lang)
	if err != nil {
		return OutcomeOf(err), err
	}
	r.result = f
	return OutcomeOK, nil
}

func (r *attempt) viaGeocode(ctx context.Context, query string, interactive bool) (Outcome, error) {
	candidates, err := r.geocoder.Geocode(ctx, query)
	if err != nil {
		if o := OutcomeOf(err); o == OutcomeUnauthorized {
			return o, err
		}
		return OutcomeNoCandidates, err
	}

	ranking, err := geocoding.Rank(candidates, query, r.userPosition(ctx))
	if err != nil {
		return OutcomeNoCandidates, err
	}
	best, ok := ranking.Best()
	if !ok {
		return OutcomeNoCandidates, nil
	}

	if interactive && len(ranking.Candidates) > 1 {
		list := geocoding.Present(ranking.Candidates, r.maxOptions)
		choice, _ := r.selector.Choose(fmt.Sprintf(fallbackTitle, query), fallbackPrompt, list.Labels())
		best, _ = list.Resolve(choice)
		r.chosen = true
	}

	f, err := r.forecasts.ForecastByCoordinate(ctx, best.Coordinate, r.lang)
	if err != nil {
		return OutcomeOf(err), err
	}
	r.result = f
	return OutcomeOK, nil
}

// offerAlternatives lets the user switch to another place with the same name.
// Failures leave the resolution untouched.
func (r *Resolver) offerAlternatives(ctx context.Context, a *attempt, res *Resolution) {
	candidates, err := r.geocoder.Geocode(ctx, a.query)
	if err != nil {
		r.logger.Debug("alternatives lookup failed", "query", a.query, "error", err)
		return
	}
	ranking, err := geocoding.Rank(candidates, a.query, a.userPosition(ctx))
	if err != nil || len(ranking.Candidates) < 2 {
		return
	}

	label, prompt := res.Display+bestMatchSuffix, alternatePrompt
	if ranking.Priority {
		label, prompt = res.Display, koreanPrompt
	}
	reference := geocoding.Option{Label: label, Candidate: res.Forecast.City}
	list := geocoding.Alternatives(reference, ranking.Candidates, r.maxOptions)
	if list.Len() < 2 {
		return
	}

	choice, ok := r.selector.Choose(fmt.Sprintf(alternateTitle, res.Forecast.City.Name), prompt, list.Labels())
	if !ok || choice < 2 || choice > list.Len() {
		return
	}

	picked, _ := list.Resolve(choice)
	f, err := r.forecasts.ForecastByCoordinate(ctx, picked.Coordinate, a.lang)
	if err != nil {
		r.logger.Debug("alternative forecast failed", "choice", choice, "error", err)
		return
	}
	res.Forecast = f
	res.Display = r.describe(ctx, f.City)
	res.Chosen = true
}

// describe formats "City, Region, Country", omitting the region when reverse
// geocoding has none
func (r *Resolver) describe(ctx context.Context, city models.LocationCandidate) string {
	var b strings.Builder
	b.WriteString(city.Name)

	region, err := r.geocoder.ReverseRegion(ctx, city.Coordinate)
	if err != nil {
		r.logger.Debug("reverse geocoding failed", "city", city.Name, "error", err)
	}
	if region != "" {
		b.WriteString(", ")
		b.WriteString(region)
	}

	b.WriteString(", ")
	b.WriteString(geocoding.CountryName(city.CountryCode))
	return b.String()
}

// NormalizeQuery rewrites "City, State" as "City,State,US" for the forecast
// API's name lookup. Other queries are returned unchanged.
func NormalizeQuery(query string) string {
	if !strings.Contains(query, ",") {
		return query
	}
	parts := strings.Split(query, ",")
	if len(parts) != 2 {
		return query
	}
	return strings.TrimSpace(parts[0]) + "," + strings.TrimSpace(parts[1]) + ",US"
}
