package models

import "time"

// Image is the relational record of a blob living in the object store.
// Key is the object-store identifier; URL is the public address of the blob.
type Image struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	URL       string    `json:"url" db:"url" gorm:"size:2048;not null"`
	Key       string    `json:"key" db:"key" gorm:"size:1024;not null;uniqueIndex"`
	ProjectID uint      `json:"projectId" db:"project_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
