// Package timezone resolves the local time zone of a coordinate
package timezone

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // zone names from tzf must load on hosts without zoneinfo

	"github.com/ringsaturn/tzf"

	"github.com/ngmaloney/forecast-terminal/internal/models"
)

// Finder looks up IANA zone names; satisfied by tzf.F
type Finder interface {
	GetTimezoneName(lng float64, lat float64) string
}

// Service maps coordinates to *time.Location values
type Service struct {
	finder Finder
}

var (
	defaultFinder Finder
	finderOnce    sync.Once
	finderErr     error
)

// NewService creates a service backed by the embedded tzf boundary data.
// The finder is loaded once per process.
func NewService() (*Service, error) {
	finderOnce.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			finderErr = fmt.Errorf("initializing timezone finder: %w", err)
			return
		}
		defaultFinder = f
	})
	if finderErr != nil {
		return nil, finderErr
	}
	return &Service{finder: defaultFinder}, nil
}

// NewServiceWithFinder creates a service with a custom finder
func NewServiceWithFinder(finder Finder) *Service {
	return &Service{finder: finder}
}

// Location returns the zone for coord. When the zone cannot be determined a
// fixed zone with offsetSeconds east of UTC is returned.
func (s *Service) Location(coord models.Coordinate, offsetSeconds int) *time.Location {
	if s != nil && s.finder != nil {
		if name := s.finder.GetTimezoneName(coord.Longitude, coord.Latitude); name != "" {
			if loc, err := time.LoadLocation(name); err == nil {
				return loc
			}
		}
	}
	return FixedOffset(offsetSeconds)
}

// FixedOffset returns a zone named like "UTC+09:00"
func FixedOffset(offsetSeconds int) *time.Location {
	if offsetSeconds == 0 {
		return time.UTC
	}
	sign := "+"
	abs := offsetSeconds
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, abs/3600, (abs%3600)/60)
	return time.FixedZone(name, offsetSeconds)
}
