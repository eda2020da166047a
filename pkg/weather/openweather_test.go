package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestProvider(base string) *openWeather {
	return &openWeather{base: base, key: "test-key", hc: &http.Client{Timeout: 2 * time.Second}}
}

func TestFetchFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	got := newTestProvider(srv.URL).Fetch(context.Background(), "Hyderabad")
	want := Default("Hyderabad")
	if got != want {
		t.Fatalf("got %+v, want default %+v", got, want)
	}
}

func TestFetchFallsBackOnUnknownLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/geo/1.0/direct" {
			w.Write([]byte(`[]`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	got := newTestProvider(srv.URL).Fetch(context.Background(), "Nowhereville")
	if got.Source != "default" {
		t.Fatalf("expected default summary, got %+v", got)
	}
}

func TestFetchLiveSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/geo/1.0/direct":
			w.Write([]byte(`[{"lat":17.38,"lon":78.48}]`))
		case "/data/2.5/weather":
			w.Write([]byte(`{"main":{"temp":31.4},"weather":[{"main":"Clouds"}]}`))
		case "/data/2.5/forecast":
			w.Write([]byte(`{"list":[{"rain":{"3h":1.2}},{"rain":{"3h":0.8}},{},{"rain":{"3h":2.0}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	got := newTestProvider(srv.URL).Fetch(context.Background(), "Hyderabad")
	if got.Source != "live" {
		t.Fatalf("source = %s, want live", got.Source)
	}
	if got.TemperatureC != 31.4 {
		t.Fatalf("temp = %v", got.TemperatureC)
	}
	if got.Condition != "Clouds" {
		t.Fatalf("condition = %s", got.Condition)
	}
	if got.RainfallMM != 4.0 {
		t.Fatalf("rainfall = %v, want 4.0", got.RainfallMM)
	}
}

func TestFetchForecastFailureKeepsCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/geo/1.0/direct":
			w.Write([]byte(`[{"lat":17.38,"lon":78.48}]`))
		case "/data/2.5/weather":
			w.Write([]byte(`{"main":{"temp":26.0},"weather":[{"main":"Clear"}]}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	got := newTestProvider(srv.URL).Fetch(context.Background(), "Hyderabad")
	if got.Source != "live" || got.TemperatureC != 26.0 {
		t.Fatalf("forecast failure should not discard current conditions: %+v", got)
	}
	if got.RainfallMM != 0 {
		t.Fatalf("rainfall should stay zero when forecast fails, got %v", got.RainfallMM)
	}
}
