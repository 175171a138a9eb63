package geocoding

import (
	"testing"

	"github.com/ngmaloney/forecast-terminal/internal/models"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name      string
		candidate models.LocationCandidate
		want      string
	}{
		{
			name:      "us with state",
			candidate: models.LocationCandidate{Name: "Seoul", Region: "Georgia", CountryCode: "US"},
			want:      "Seoul, Georgia",
		},
		{
			name:      "region with country",
			candidate: models.LocationCandidate{Name: "London", Region: "Ontario", CountryCode: "CA"},
			want:      "London, Ontario, Canada",
		},
		{
			name:      "no region",
			candidate: models.LocationCandidate{Name: "Seoul", CountryCode: "KR"},
			want:      "Seoul, South Korea",
		},
		{
			name:      "unknown country",
			candidate: models.LocationCandidate{Name: "City", CountryCode: "ZZ"},
			want:      "City, ZZ",
		},
		{
			name:      "us without state",
			candidate: models.LocationCandidate{Name: "Springfield", CountryCode: "US"},
			want:      "Springfield, United States",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.candidate); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPresent_Bounded(t *testing.T) {
	ranked := []models.LocationCandidate{seoulKR, busanKR, seoulGA, {Name: "Extra", CountryCode: "JP"}}

	list := Present(ranked, DefaultMaxOptions)
	if list.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", list.Len())
	}

	want := []string{"Seoul, South Korea", "Busan, South Korea", "Seoul, Georgia"}
	for i, label := range list.Labels() {
		if label != want[i] {
			t.Errorf("Labels()[%d] = %q, want %q", i, label, want[i])
		}
	}

	if short := Present(ranked[:1], 3); short.Len() != 1 {
		t.Errorf("Present() of one candidate has %d options", short.Len())
	}
}

func TestPresentationList_Resolve(t *testing.T) {
	list := Present([]models.LocationCandidate{seoulKR, busanKR, seoulGA}, 3)

	tests := []struct {
		name   string
		choice int
		want   string
	}{
		{"no selection", 0, "Seoul, South Korea"},
		{"first", 1, "Seoul, South Korea"},
		{"second", 2, "Busan, South Korea"},
		{"third", 3, "Seoul, Georgia"},
		{"out of range", 99, "Seoul, South Korea"},
		{"negative", -1, "Seoul, South Korea"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := list.Resolve(tt.choice)
			if !ok {
				t.Fatal("Resolve() ok = false")
			}
			if DisplayName(got) != tt.want {
				t.Errorf("Resolve(%d) = %q, want %q", tt.choice, DisplayName(got), tt.want)
			}
		})
	}

	if _, ok := (PresentationList{}).Resolve(1); ok {
		t.Error("Resolve() on empty list ok = true")
	}
}

func TestAlternatives_SkipsSameLocation(t *testing.T) {
	reference := Option{
		Label:     "Seoul, South Korea (best match)",
		Candidate: models.LocationCandidate{Name: "Seoul", CountryCode: "KR", Coordinate: models.Coordinate{Latitude: 37.57, Longitude: 126.98}},
	}
	ranked := []models.LocationCandidate{seoulKR, seoulGA, busanKR}

	list := Alternatives(reference, ranked, DefaultMaxOptions)

	want := []string{"Seoul, South Korea (best match)", "Seoul, Georgia", "Busan, South Korea"}
	if list.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d (%v)", list.Len(), len(want), list.Labels())
	}
	for i, label := range list.Labels() {
		if label != want[i] {
			t.Errorf("Labels()[%d] = %q, want %q", i, label, want[i])
		}
	}

	got, _ := list.Resolve(2)
	if got.CountryCode != "US" {
		t.Errorf("Resolve(2) = %+v, want Seoul, Georgia", got)
	}
	got, _ = list.Resolve(0)
	if got.Coordinate != reference.Candidate.Coordinate {
		t.Errorf("Resolve(0) = %+v, want reference", got)
	}
}

func TestDistinct(t *testing.T) {
	base := models.Coordinate{Latitude: 37.5, Longitude: 127.0}

	tests := []struct {
		name  string
		other models.Coordinate
		want  bool
	}{
		{"identical", base, false},
		{"within tolerance", models.Coordinate{Latitude: 37.55, Longitude: 127.05}, false},
		{"latitude apart", models.Coordinate{Latitude: 37.7, Longitude: 127.0}, true},
		{"longitude apart", models.Coordinate{Latitude: 37.5, Longitude: 126.8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distinct(base, tt.other); got != tt.want {
				t.Errorf("Distinct() = %v, want %v", got, tt.want)
			}
		})
	}
}
