// pkg/weather/provider.go

package weather

import "context"

// Summary is the fixed-shape weather context used by the recommendation engine.
type Summary struct {
	Location     string  `json:"location"`
	TemperatureC float64 `json:"temperature_c"`
	RainfallMM   float64 `json:"rainfall_mm"`
	Condition    string  `json:"condition"`
	Source       string  `json:"source"` // default|live
}

// Provider resolves a location to a Summary. Implementations never fail:
// any lookup problem degrades to Default.
type Provider interface {
	Fetch(ctx context.Context, location string) Summary
}

// Default is the summary used whenever a live lookup is unavailable.
func Default(location string) Summary {
	return Summary{
		Location:     location,
		TemperatureC: 28.0,
		RainfallMM:   2.0,
		Condition:    "Partly Cloudy",
		Source:       "default",
	}
}

type defaultProvider struct{}

// NewDefault returns a provider that always answers with the fixed default.
func NewDefault() Provider { return &defaultProvider{} }

func (p *defaultProvider) Fetch(_ context.Context, location string) Summary {
	return Default(location)
}
