package repositoryImp

import (
	"agriai/entities"
	"agriai/pkg/chat/repository"
	"gorm.io/gorm"
)

type chatRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &chatRepo{db} }

func (r *chatRepo) Create(m *entities.ChatMessage) error { return r.db.Create(m).Error }

func (r *chatRepo) History(fieldID uint) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	if err := r.db.Where("field_id = ?", fieldID).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *chatRepo) Recent(fieldID uint, n int) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	if err := r.db.Where("field_id = ?", fieldID).Order("created_at DESC").Limit(n).Find(&out).Error; err != nil {
		return nil, err
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
