package repository

import (
	"masalacafe/entity"

	"gorm.io/gorm"
)

// IdentityRepository เข้าถึงตาราง identities ของ auth provider
// gorm.ErrRecordNotFound = "ไม่มีแถว" ไม่ใช่ความผิดพลาด
type IdentityRepository struct{ DB *gorm.DB }

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{DB: db}
}

func (r *IdentityRepository) FindByID(id string) (*entity.Identity, error) {
	var ident entity.Identity
	if err := r.DB.Where("id = ?", id).First(&ident).Error; err != nil {
		return nil, err
	}
	return &ident, nil
}

func (r *IdentityRepository) FindByEmail(email string) (*entity.Identity, error) {
	var ident entity.Identity
	if err := r.DB.Where("email = ?", email).First(&ident).Error; err != nil {
		return nil, err
	}
	return &ident, nil
}

func (r *IdentityRepository) FindByConfirmationToken(token string) (*entity.Identity, error) {
	var ident entity.Identity
	if err := r.DB.Where("confirmation_token = ?", token).First(&ident).Error; err != nil {
		return nil, err
	}
	return &ident, nil
}

func (r *IdentityRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Identity{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *IdentityRepository) Create(ident *entity.Identity) error {
	return r.DB.Create(ident).Error
}

func (r *IdentityRepository) Save(ident *entity.Identity) error {
	return r.DB.Save(ident).Error
}
