package repository

import "agriai/entities"

type ChatRepository interface {
	Create(m *entities.ChatMessage) error
	History(fieldID uint) ([]entities.ChatMessage, error)
	Recent(fieldID uint, n int) ([]entities.ChatMessage, error)
}
