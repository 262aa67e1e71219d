package entity

import (
	"time"
)

// UserProfile หนึ่งแถวต่อ identity สร้างตอน login ครั้งแรกถ้ายังไม่มี
type UserProfile struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Address   *string `json:"address"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
