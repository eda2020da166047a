package entities

import "time"

type ChatMessage struct {
	MessageID uint   `gorm:"primaryKey" json:"message_id"`
	FieldID   uint   `gorm:"index" json:"field_id"`
	Role      string `json:"role"` // user|assistant
	Content   string `json:"content"`

	CreatedAt time.Time `json:"created_at"`
}
