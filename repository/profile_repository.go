package repository

import (
	"masalacafe/entity"

	"gorm.io/gorm"
)

type ProfileRepository struct{ DB *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByID(id string) (*entity.UserProfile, error) {
	var p entity.UserProfile
	if err := r.DB.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Create(p *entity.UserProfile) error {
	return r.DB.Create(p).Error
}

func (r *ProfileRepository) Update(id string, patch map[string]any) error {
	return r.DB.Model(&entity.UserProfile{}).Where("id = ?", id).Updates(patch).Error
}

// SavedAddress คืน address ที่เคยบันทึก ("" ถ้าไม่มี) ใช้ prefill หน้า checkout
func (r *ProfileRepository) SavedAddress(id string) (string, error) {
	p, err := r.FindByID(id)
	if err != nil {
		return "", err
	}
	if p.Address == nil {
		return "", nil
	}
	return *p.Address, nil
}
