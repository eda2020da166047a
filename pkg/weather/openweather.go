// pkg/weather/openweather.go

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const openWeatherBase = "https://api.openweathermap.org"

type openWeather struct {
	base string
	key  string
	hc   *http.Client
}

// NewOpenWeather returns a live provider backed by the OpenWeather API.
// Every failure path (geocoding, current conditions, decoding) falls back to
// the fixed default summary; the forecast call is best-effort only.
func NewOpenWeather(apiKey string) Provider {
	return &openWeather{
		base: openWeatherBase,
		key:  apiKey,
		hc:   &http.Client{Timeout: 8 * time.Second},
	}
}

func (p *openWeather) Fetch(ctx context.Context, location string) Summary {
	lat, lon, err := p.geocode(ctx, location)
	if err != nil {
		return Default(location)
	}

	var current struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	}
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("units", "metric")
	q.Set("appid", p.key)
	if err := p.getJSON(ctx, "/data/2.5/weather", q, &current); err != nil {
		return Default(location)
	}

	sum := Summary{
		Location:     location,
		TemperatureC: current.Main.Temp,
		Condition:    "Clear",
		Source:       "live",
	}
	if len(current.Weather) > 0 && current.Weather[0].Main != "" {
		sum.Condition = current.Weather[0].Main
	}

	// Rainfall: sum the first 8 three-hour forecast buckets (next 24h).
	var forecast struct {
		List []struct {
			Rain struct {
				ThreeH float64 `json:"3h"`
			} `json:"rain"`
		} `json:"list"`
	}
	if err := p.getJSON(ctx, "/data/2.5/forecast", q, &forecast); err == nil {
		items := forecast.List
		if len(items) > 8 {
			items = items[:8]
		}
		var rain float64
		for _, it := range items {
			rain += it.Rain.ThreeH
		}
		sum.RainfallMM = roundTo(rain, 2)
	}
	return sum
}

func (p *openWeather) geocode(ctx context.Context, location string) (float64, float64, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("limit", "1")
	q.Set("appid", p.key)
	var geo []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := p.getJSON(ctx, "/geo/1.0/direct", q, &geo); err != nil {
		return 0, 0, err
	}
	if len(geo) == 0 {
		return 0, 0, fmt.Errorf("location not found: %s", location)
	}
	return geo[0].Lat, geo[0].Lon, nil
}

func (p *openWeather) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.base+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := p.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func roundTo(v float64, places int) float64 {
	scale := 1.0
	for i := 0; i < places; i++ {
		scale *= 10
	}
	return float64(int64(v*scale+0.5)) / scale
}
