package repository

import (
	"time"

	"masalacafe/entity"

	"gorm.io/gorm"
)

type AdminRepository struct{ DB *gorm.DB }

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

// FindByAccountID หา admin ที่ link กับ identity แล้ว
func (r *AdminRepository) FindByAccountID(accountID string) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.Where("account_id = ?", accountID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindUnlinkedByEmail หา placeholder ที่ยังไม่ถูก link (account_id IS NULL)
func (r *AdminRepository) FindUnlinkedByEmail(email string) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.Where("email = ? AND account_id IS NULL", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) FindByEmail(email string) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// LinkAccount เซ็ต account_id โดย key ด้วย email — idempotent
// รันซ้ำแล้วเงื่อนไข account_id IS NULL จะไม่ match อีก
func (r *AdminRepository) LinkAccount(email, accountID string) error {
	return r.DB.Model(&entity.Admin{}).
		Where("email = ? AND account_id IS NULL", email).
		Update("account_id", accountID).Error
}

func (r *AdminRepository) Create(a *entity.Admin) error {
	return r.DB.Create(a).Error
}

// ListPending เรียงคำขอที่รออนุมัติ ใหม่สุดก่อน
func (r *AdminRepository) ListPending() ([]entity.Admin, error) {
	var admins []entity.Admin
	err := r.DB.Where("is_approved = ?", false).
		Order("created_at DESC").
		Find(&admins).Error
	return admins, err
}

func (r *AdminRepository) FindByID(id uint) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) Approve(id uint, approverID string, at time.Time) error {
	return r.DB.Model(&entity.Admin{}).Where("id = ?", id).Updates(map[string]any{
		"is_approved": true,
		"approved_by": approverID,
		"approved_at": at,
		"updated_at":  at,
	}).Error
}
