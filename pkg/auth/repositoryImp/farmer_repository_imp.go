package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"agriai/entities"
	"agriai/pkg/auth/repository"
)

type farmerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &farmerRepo{db} }

func (r *farmerRepo) FindOrCreate(authUID string) (*entities.FarmerProfile, error) {
	var f entities.FarmerProfile
	err := r.db.Where("auth_uid = ?", authUID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		f = entities.FarmerProfile{AuthUID: authUID}
		if err := r.db.Create(&f).Error; err != nil {
			return nil, err
		}
		return &f, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmerRepo) FindByUID(authUID string) (*entities.FarmerProfile, error) {
	var f entities.FarmerProfile
	if err := r.db.Where("auth_uid = ?", authUID).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmerRepo) Save(f *entities.FarmerProfile) error { return r.db.Save(f).Error }
