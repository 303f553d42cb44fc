package models

import "time"

// Media is an outlet/account that publications are attributed to.
// The (title, username) pair is kept unique by the service layer,
// not by a database constraint.
type Media struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"not null;type:varchar(255)"`
	Username  string    `json:"username" gorm:"not null;type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
