package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestClient_Geocode_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("address") != "1600 Amphitheatre Parkway" {
			t.Errorf("unexpected address: %s", query.Get("address"))
		}
		if query.Get("key") != "test-key" {
			t.Errorf("unexpected key: %s", query.Get("key"))
		}

		envelope := responseEnvelope{
			Status: "OK",
			Results: []Result{
				{
					FormattedAddress: "1600 Amphitheatre Pkwy, Mountain View, CA 94043, USA",
					PlaceID:          "ChIJ2eUgeAK6j4ARbn5u_wAGqWA",
					Types:            []string{"street_address"},
					Geometry: Geometry{
						Location:     LatLng{Lat: 37.4224764, Lng: -122.0842499},
						LocationType: "ROOFTOP",
					},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(envelope)
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, "test-key", WithRateLimit(100))

	ctx := context.Background()
	results, err := client.Geocode(ctx, "1600 Amphitheatre Parkway")

	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	result := results[0]
	if result.FormattedAddress != "1600 Amphitheatre Pkwy, Mountain View, CA 94043, USA" {
		t.Errorf("unexpected FormattedAddress: %s", result.FormattedAddress)
	}
	if result.Geometry.Location.Lat != 37.4224764 {
		t.Errorf("unexpected Lat: %f", result.Geometry.Location.Lat)
	}
}

func TestClient_Geocode_EmptyAddress(t *testing.T) {
	client := NewClient(DefaultBaseURL, "test-key")

	ctx := context.Background()
	_, err := client.Geocode(ctx, "")

	if err == nil {
		t.Fatal("expected error for empty address, got nil")
	}

	if !strings.Contains(err.Error(), "cannot be empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestClient_Geocode_ZeroResults(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(responseEnvelope{Status: "ZERO_RESULTS"})
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, "test-key", WithRateLimit(100))

	results, err := client.Geocode(context.Background(), "nowhere at all")

	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}

	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestClient_Geocode_RetriesServerErrors(t *testing.T) {
	var calls int32

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(responseEnvelope{
			Status:  "OK",
			Results: []Result{{FormattedAddress: "somewhere"}},
		})
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, "test-key", WithRateLimit(100))

	results, err := client.Geocode(context.Background(), "somewhere")

	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}

	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestClient_Geocode_DeniedStatus(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(responseEnvelope{
			Status:       "REQUEST_DENIED",
			ErrorMessage: "The provided API key is invalid.",
		})
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, "bad-key", WithRateLimit(100))

	_, err := client.Geocode(context.Background(), "somewhere")

	if err == nil {
		t.Fatal("expected error for REQUEST_DENIED, got nil")
	}

	if !strings.Contains(err.Error(), "REQUEST_DENIED") {
		t.Errorf("unexpected error: %v", err)
	}
}
