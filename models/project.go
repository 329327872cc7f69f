package models

import "time"

// Project is owned by exactly one user. Private projects are visible only
// to their owner.
type Project struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	IsPublic    bool      `json:"isPublic" db:"is_public" gorm:"not null;default:false"`
	UserID      uint      `json:"userId" db:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	User     *User     `json:"User,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Images   []Image   `json:"Images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
