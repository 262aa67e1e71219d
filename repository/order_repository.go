package repository

import (
	"masalacafe/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateHeader เขียน order header หนึ่งแถว — commit ทันที ไม่มี transaction ครอบ
// เพื่อให้ order โผล่ก่อน items เสมอ (พฤติกรรมเดิมของระบบ)
func (r *OrderRepository) CreateHeader(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) CreateItems(items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.Create(&items).Error
}

func (r *OrderRepository) ListForUser(userID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetForUser(userID string, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// ListAll สำหรับหน้า admin — ใหม่สุดก่อน
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) CountItems(orderID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *OrderRepository) CountHeaders() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}
