package models

import "testing"

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{"seoul", Coordinate{37.5665, 126.9780}, true},
		{"default", DefaultCoordinate, true},
		{"north pole", Coordinate{90, 0}, true},
		{"antimeridian", Coordinate{0, -180}, true},
		{"latitude too high", Coordinate{90.1, 0}, false},
		{"longitude too low", Coordinate{0, -180.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coord.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocationCandidate_HasRegion(t *testing.T) {
	if (LocationCandidate{Name: "Seoul", CountryCode: "KR"}).HasRegion() {
		t.Error("HasRegion() = true for candidate without region")
	}
	if !(LocationCandidate{Name: "Atlanta", Region: "Georgia", CountryCode: "US"}).HasRegion() {
		t.Error("HasRegion() = false for candidate with region")
	}
}
