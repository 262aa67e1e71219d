package entity

import (
	"gorm.io/gorm"
)

// OrderItem เขียนเป็น batch หลัง order header แล้วไม่แก้ไขอีก
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload เฉพาะตอนต้องการชื่อเมนู

	Quantity int `json:"quantity"`

	// ราคา snapshot จากตะกร้า ไม่ fetch ใหม่จาก MenuItem
	Price float64 `json:"price"`
}
