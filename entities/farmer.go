package entities

import "time"

type FarmerProfile struct {
	FarmerID    uint   `gorm:"primaryKey" json:"farmer_id"`
	AuthUID     string `gorm:"uniqueIndex" json:"auth_uid"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
