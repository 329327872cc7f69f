package models

import "time"

// User is a registered account. PasswordHash is never serialized.
type User struct {
	ID           uint      `json:"id" db:"id" gorm:"primaryKey"`
	Email        string    `json:"email" db:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}
