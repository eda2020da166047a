package repository

import "agriai/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	FindByID(id uint, farmerID uint) (*entities.Field, error)
	ListByFarmer(farmerID uint) ([]entities.Field, error)
	Save(f *entities.Field) error
	Delete(id uint, farmerID uint) error
}
