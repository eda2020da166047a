package entities

import "time"

type CropRecommendation struct {
	RecommendationID  uint    `gorm:"primaryKey" json:"recommendation_id"`
	FarmerID          uint    `gorm:"index" json:"farmer_id"`
	FieldID           *uint   `json:"field_id,omitempty"`
	SoilType          string  `json:"soil_type"`
	AreaAcres         float64 `json:"area_acres"`
	Location          string  `json:"location"`
	Season            string  `json:"season"`
	WaterAvailability string  `json:"water_availability"`
	InvestmentLevel   string  `json:"investment_level"`
	TopRecommendations string `json:"-"` // scored crops, JSON blob
	WeatherSnapshot    string `json:"-"` // weather summary, JSON blob

	CreatedAt time.Time `json:"created_at"`
}

type WeatherLog struct {
	LogID        uint    `gorm:"primaryKey" json:"log_id"`
	FarmerID     uint    `gorm:"index" json:"farmer_id"`
	Location     string  `json:"location"`
	TemperatureC float64 `json:"temperature_c"`
	RainfallMM   float64 `json:"rainfall_mm"`
	Condition    string  `json:"condition"`
	Source       string  `json:"source"` // default|live

	CreatedAt time.Time `json:"created_at"`
}
