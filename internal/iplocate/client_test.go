package iplocate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ngmaloney/forecast-terminal/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(server.Client(), nil)
	client.url = server.URL
	return client
}

func TestNewClient(t *testing.T) {
	client := NewClient(nil, nil)

	if client.url != DefaultURL {
		t.Errorf("url = %s, want %s", client.url, DefaultURL)
	}
	if client.attempts == 0 {
		t.Error("attempts should be positive")
	}
}

func TestClient_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","city":"Seoul","regionName":"Seoul","countryCode":"KR","lat":37.5665,"lon":126.978}`))
	})

	ctx := context.Background()
	coord := client.Coordinate(ctx)
	if coord.Latitude != 37.5665 || coord.Longitude != 126.978 {
		t.Errorf("Coordinate() = %+v, want 37.5665,126.978", coord)
	}

	if got := client.Query(ctx); got != "Seoul,Seoul,KR" {
		t.Errorf("Query() = %q, want Seoul,Seoul,KR", got)
	}
}

func TestClient_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"failed status", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"fail","message":"private range"}`))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			ctx := context.Background()

			if got := client.Coordinate(ctx); got != models.DefaultCoordinate {
				t.Errorf("Coordinate() = %+v, want default", got)
			}
			if got := client.Query(ctx); got != DefaultQuery {
				t.Errorf("Query() = %q, want %q", got, DefaultQuery)
			}
		})
	}
}

func TestClient_RetriesTransientFailure(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"status":"success","city":"Busan","regionName":"Busan","countryCode":"KR","lat":35.1,"lon":129.0}`))
	})

	if got := client.Query(context.Background()); got != "Busan,Busan,KR" {
		t.Errorf("Query() = %q, want Busan,Busan,KR", got)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestClient_LooksUpOnce(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"status":"success","city":"Paris","regionName":"Ile-de-France","countryCode":"FR","lat":48.85,"lon":2.35}`))
	})

	ctx := context.Background()
	client.Query(ctx)
	client.Coordinate(ctx)
	client.Coordinate(ctx)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
