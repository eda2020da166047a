package repositoryImp

import (
	"encoding/json"

	"gorm.io/gorm"

	"agriai/entities"
	"agriai/pkg/advisor"
	"agriai/pkg/recommend/repository"
)

type recommendRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecommendRepository { return &recommendRepo{db} }

func (r *recommendRepo) CreateRecommendation(rec *entities.CropRecommendation) error {
	return r.db.Create(rec).Error
}

func (r *recommendRepo) CreateWeatherLog(l *entities.WeatherLog) error {
	return r.db.Create(l).Error
}

func (r *recommendRepo) History(farmerID uint, limit int) ([]entities.CropRecommendation, error) {
	var out []entities.CropRecommendation
	err := r.db.Where("farmer_id = ?", farmerID).
		Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

// LatestForFarmer decodes the most recent stored recommendation blob. An
// empty result is not an error: chat context treats it as optional.
func (r *recommendRepo) LatestForFarmer(farmerID uint) ([]advisor.ScoredCrop, error) {
	var rec entities.CropRecommendation
	if err := r.db.Where("farmer_id = ?", farmerID).
		Order("created_at DESC").First(&rec).Error; err != nil {
		return nil, err
	}
	var crops []advisor.ScoredCrop
	if err := json.Unmarshal([]byte(rec.TopRecommendations), &crops); err != nil {
		return nil, err
	}
	return crops, nil
}
