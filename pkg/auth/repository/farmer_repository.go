package repository

import "agriai/entities"

type FarmerRepository interface {
	FindOrCreate(authUID string) (*entities.FarmerProfile, error)
	FindByUID(authUID string) (*entities.FarmerProfile, error)
	Save(f *entities.FarmerProfile) error
}
