package models

import "time"

// Post is a content item eligible to be scheduled for publication.
// Image is nullable; a post without one serializes with no "image" key.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"not null;type:varchar(255)"`
	Text      string    `json:"text" gorm:"not null;type:text"`
	Image     *string   `json:"image,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
