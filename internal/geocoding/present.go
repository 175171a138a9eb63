package geocoding

import (
	"fmt"
	"math"

	"github.com/ngmaloney/forecast-terminal/internal/models"
)

const (
	// DefaultMaxOptions is how many candidates are offered to the user
	DefaultMaxOptions = 3

	// noCountrySuffix is the country whose regions are shown without a country name
	noCountrySuffix = "US"

	// sameLocationDegrees is the lat/lon tolerance under which two places are the same
	sameLocationDegrees = 0.1
)

// Option is one numbered entry shown to the user
type Option struct {
	Label     string
	Candidate models.LocationCandidate
}

// PresentationList is a bounded list of options; option 1 is always the default
type PresentationList struct {
	Options []Option
}

// Labels returns the display strings in order
func (l PresentationList) Labels() []string {
	labels := make([]string, len(l.Options))
	for i, o := range l.Options {
		labels[i] = o.Label
	}
	return labels
}

// Len returns the number of options
func (l PresentationList) Len() int {
	return len(l.Options)
}

// Resolve returns the candidate for a 1-based choice. Zero or out-of-range
// choices fall back to option 1. ok is false only for an empty list.
func (l PresentationList) Resolve(choice int) (c models.LocationCandidate, ok bool) {
	if len(l.Options) == 0 {
		return models.LocationCandidate{}, false
	}
	if choice < 1 || choice > len(l.Options) {
		choice = 1
	}
	return l.Options[choice-1].Candidate, true
}

// DisplayName formats a candidate as "City, Region", "City, Region, Country" or "City, Country"
func DisplayName(c models.LocationCandidate) string {
	switch {
	case c.HasRegion() && c.CountryCode == noCountrySuffix:
		return fmt.Sprintf("%s, %s", c.Name, c.Region)
	case c.HasRegion():
		return fmt.Sprintf("%s, %s, %s", c.Name, c.Region, CountryName(c.CountryCode))
	default:
		return fmt.Sprintf("%s, %s", c.Name, CountryName(c.CountryCode))
	}
}

// Present builds options from the first maxOptions ranked candidates
func Present(ranked []models.LocationCandidate, maxOptions int) PresentationList {
	if maxOptions <= 0 {
		maxOptions = DefaultMaxOptions
	}
	if len(ranked) < maxOptions {
		maxOptions = len(ranked)
	}

	list := PresentationList{Options: make([]Option, 0, maxOptions)}
	for _, c := range ranked[:maxOptions] {
		list.Options = append(list.Options, Option{Label: DisplayName(c), Candidate: c})
	}
	return list
}

// Alternatives offers other candidates next to an already resolved location.
// Option 1 is the reference; candidates within sameLocationDegrees of it are skipped.
func Alternatives(reference Option, ranked []models.LocationCandidate, maxOptions int) PresentationList {
	if maxOptions <= 0 {
		maxOptions = DefaultMaxOptions
	}
	if len(ranked) < maxOptions {
		maxOptions = len(ranked)
	}

	list := PresentationList{Options: []Option{reference}}
	for _, c := range ranked[:maxOptions] {
		if !Distinct(reference.Candidate.Coordinate, c.Coordinate) {
			continue
		}
		list.Options = append(list.Options, Option{Label: DisplayName(c), Candidate: c})
	}
	return list
}

// Distinct reports whether two coordinates differ by more than the same-location tolerance
func Distinct(a, b models.Coordinate) bool {
	return math.Abs(a.Latitude-b.Latitude) > sameLocationDegrees ||
		math.Abs(a.Longitude-b.Longitude) > sameLocationDegrees
}
