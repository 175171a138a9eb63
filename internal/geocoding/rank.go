package geocoding

import (
	"fmt"
	"sort"

	"github.com/ngmaloney/forecast-terminal/internal/models"
)

// PriorityCountry is the only country kept for Hangul queries
const PriorityCountry = "KR"

// Ranking is the ordered result of Rank
type Ranking struct {
	Candidates []models.LocationCandidate // Best match first
	Priority   bool                       // Query was written in Hangul
}

// Best returns the top-ranked candidate
func (r Ranking) Best() (models.LocationCandidate, bool) {
	if len(r.Candidates) == 0 {
		return models.LocationCandidate{}, false
	}
	return r.Candidates[0], true
}

// Rank orders candidates by distance from the user. Hangul queries only keep
// Korean candidates and fail with ErrNoPriorityMatch when none remain.
// Equal distances keep the order the geocoding source returned.
func Rank(candidates []models.LocationCandidate, query string, user models.Coordinate) (Ranking, error) {
	ranked := make([]models.LocationCandidate, 0, len(candidates))
	priority := HasHangul(query)

	for _, c := range candidates {
		if priority && c.CountryCode != PriorityCountry {
			continue
		}
		c.DistanceKm = DistanceKm(user, c.Coordinate)
		ranked = append(ranked, c)
	}

	if priority && len(ranked) == 0 && len(candidates) > 0 {
		return Ranking{Priority: true}, fmt.Errorf("ranking %q: %w", query, models.ErrNoPriorityMatch)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return Ranking{Candidates: ranked, Priority: priority}, nil
}
