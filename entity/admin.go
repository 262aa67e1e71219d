package entity

import (
	"time"

	"gorm.io/gorm"
)

// Admin record ที่ต้องรออนุมัติก่อนถึงจะใช้สิทธิ์ได้
type Admin struct {
	gorm.Model

	// AccountID ว่างได้ (email-only placeholder) จนกว่าจะ link กับ Identity
	AccountID *string `gorm:"uniqueIndex" json:"accountId"`
	Email     string  `gorm:"uniqueIndex;not null" json:"email"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`

	IsApproved bool       `json:"isApproved"`
	ApprovedBy *string    `json:"approvedBy"`
	ApprovedAt *time.Time `json:"approvedAt"`
}
