package repository

import (
	"agriai/entities"
	"agriai/pkg/advisor"
)

type RecommendRepository interface {
	CreateRecommendation(rec *entities.CropRecommendation) error
	CreateWeatherLog(l *entities.WeatherLog) error
	History(farmerID uint, limit int) ([]entities.CropRecommendation, error)
	LatestForFarmer(farmerID uint) ([]advisor.ScoredCrop, error)
}
