package repository

import (
	"strconv"

	"masalacafe/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Categories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

// List คืนเมนูที่ขายอยู่ filter หมวดได้ทั้ง slug และ id ตัวเลข
func (r *MenuRepository) List(category string) ([]entity.MenuItem, error) {
	q := r.DB.Where("is_available = ?", true)
	if category != "" {
		if id, err := strconv.Atoi(category); err == nil {
			q = q.Where("category_id = ?", id)
		} else {
			q = q.Where("category_slug = ?", category)
		}
	}
	var items []entity.MenuItem
	err := q.Order("name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Popular() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("is_popular = ? AND is_available = ?", true, true).
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindItem(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
