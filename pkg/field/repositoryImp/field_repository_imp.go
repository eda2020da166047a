package repositoryImp

import (
	"agriai/entities"
	"agriai/pkg/field/repository"
	"gorm.io/gorm"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }

func (r *fieldRepo) FindByID(id uint, farmerID uint) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.Where("field_id = ? AND farmer_id = ?", id, farmerID).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) ListByFarmer(farmerID uint) ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.Where("farmer_id = ?", farmerID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fieldRepo) Save(f *entities.Field) error { return r.db.Save(f).Error }

func (r *fieldRepo) Delete(id uint, farmerID uint) error {
	return r.db.Where("field_id = ? AND farmer_id = ?", id, farmerID).Delete(&entities.Field{}).Error
}
