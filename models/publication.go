package models

import "time"

// Publication schedules one Post on one Media at a given date. A publication
// whose date has passed counts as published and can no longer be updated.
// MediaID and PostID are plain columns on purpose: existence checks belong to
// the service layer, so AutoMigrate must not create foreign key constraints.
type Publication struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	MediaID   uint      `json:"mediaId" gorm:"not null;index"`
	PostID    uint      `json:"postId" gorm:"not null;index"`
	Date      time.Time `json:"date" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Published reports whether the publication date is at or before now.
func (p *Publication) Published(now time.Time) bool {
	return !p.Date.After(now)
}
