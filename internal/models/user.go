package models

import "time"

// Dono da confeitaria. Cada usuário é um tenant: todo dado do sistema
// pertence a exatamente um UserID.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome         string `gorm:"size:100;not null" json:"nome"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
