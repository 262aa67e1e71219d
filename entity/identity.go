package entity

import (
	"time"
)

// Identity คือบัญชีจาก auth provider — โมดูลอื่นอ่านอย่างเดียว
type Identity struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`

	// "" = password login, ไม่งั้นเป็นชื่อ OAuth provider
	Provider string `json:"provider"`
	FullName string `json:"fullName"`

	EmailConfirmedAt  *time.Time `json:"emailConfirmedAt"`
	ConfirmationToken string     `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Identity) Confirmed() bool {
	return i.EmailConfirmedAt != nil
}

// OAuth providers ที่รองรับ
func (i *Identity) IsOAuth() bool {
	return i.Provider == "google" || i.Provider == "facebook"
}
