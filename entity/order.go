package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID string `gorm:"index;size:36" json:"userId"`

	DeliveryAddress string  `json:"deliveryAddress"`
	Status          string  `gorm:"default:pending" json:"status"`
	TotalAmount     float64 `json:"totalAmount"`
	DeliveryFee     float64 `json:"deliveryFee"`
	PaymentMethod   string  `json:"paymentMethod"`

	// preload แค่ตอน detail
	Items []OrderItem `json:"-"`
}
