package entities

import "time"

type Field struct {
	FieldID           uint    `gorm:"primaryKey" json:"field_id"`
	FarmerID          uint    `gorm:"index" json:"farmer_id"`
	Name              string  `json:"name"`
	LandAreaAcres     float64 `json:"land_area_acres"`
	SoilType          string  `json:"soil_type"`
	CropName          string  `json:"crop_name"`
	Location          string  `json:"location"`
	Season            string  `json:"season"`             // kharif|rabi|zaid
	WaterAvailability string  `json:"water_availability"` // low|medium|high
	InvestmentLevel   string  `json:"investment_level"`   // low|medium|high
	PlanJSON          string  `json:"-"`                  // generated plan stored as an opaque JSON blob

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
