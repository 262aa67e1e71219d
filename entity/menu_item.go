package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`

	// เก็บทั้ง id และ slug — ข้อมูลเก่ามีทั้งสองแบบ query ต้องรองรับทั้งคู่
	CategoryID   uint     `json:"categoryId"`
	Category     Category `json:"-"`
	CategorySlug string   `gorm:"index" json:"category"`

	ImageURL    string `json:"imageUrl"`
	Vegetarian  bool   `json:"vegetarian"`
	IsPopular   bool   `json:"isPopular"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`
}
