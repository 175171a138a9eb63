// Package resolve turns a location query into a forecast, falling back through
// geocoding and direct name lookups
package resolve

import (
	"errors"

	"github.com/ngmaloney/forecast-terminal/internal/models"
)

// Phase is a resolution state
type Phase int

const (
	ResolvingViaGeocode Phase = iota // Geocode, rank, fetch by coordinate
	ResolvingDirect                  // Let the forecast API match the name itself
	Resolved                         // Forecast obtained
	Failed                           // Gave up
)

func (p Phase) String() string {
	switch p {
	case ResolvingViaGeocode:
		return "resolving-via-geocode"
	case ResolvingDirect:
		return "resolving-direct"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Outcome summarizes how one resolution step went
type Outcome int

const (
	OutcomeOK           Outcome = iota
	OutcomeNoCandidates         // Geocoding returned nothing usable
	OutcomeNotFound             // Forecast source has no such place
	OutcomeUnauthorized         // API key rejected
	OutcomeUpstream             // Transport or server failure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNoCandidates:
		return "no-candidates"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeUpstream:
		return "upstream"
	}
	return "unknown"
}

// State is the resolution state machine's current position
type State struct {
	Phase    Phase
	Fallback bool  // ResolvingViaGeocode after a failed forecast fetch
	Err      error // Error kind when Phase is Failed
}

// Start is the initial state
func Start() State {
	return State{Phase: ResolvingViaGeocode}
}

// Terminal reports whether no further steps are possible
func (s State) Terminal() bool {
	return s.Phase == Resolved || s.Phase == Failed
}

func (s State) String() string {
	if s.Phase == ResolvingViaGeocode && s.Fallback {
		return "resolving-via-geocode(fallback)"
	}
	return s.Phase.String()
}

func failed(kind error) State {
	return State{Phase: Failed, Err: kind}
}

var fallback = State{Phase: ResolvingViaGeocode, Fallback: true}

// Next returns the state that follows s after a step ended with o.
// Forecast failures get exactly one geocoding re-resolution; terminal
// states never change.
func Next(s State, o Outcome) State {
	if s.Terminal() {
		return s
	}
	if o == OutcomeOK {
		return State{Phase: Resolved}
	}
	if o == OutcomeUnauthorized {
		return failed(models.ErrUnauthorized)
	}

	switch {
	case s.Phase == ResolvingViaGeocode && !s.Fallback:
		if o == OutcomeNoCandidates {
			return State{Phase: ResolvingDirect}
		}
		return fallback
	case s.Phase == ResolvingDirect:
		return fallback
	default:
		return failed(models.ErrNotFound)
	}
}

// OutcomeOf classifies a step error
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, models.ErrUnauthorized):
		return OutcomeUnauthorized
	case errors.Is(err, models.ErrNoPriorityMatch):
		return OutcomeNoCandidates
	case errors.Is(err, models.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeUpstream
	}
}
