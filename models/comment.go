package models

import "time"

// Comment belongs to its author but is visible in the project's context.
type Comment struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	ProjectID uint      `json:"projectId" db:"project_id" gorm:"not null;index"`
	UserID    uint      `json:"userId" db:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	User *User `json:"User,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
