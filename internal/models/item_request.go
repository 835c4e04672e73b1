package models

import "time"

type ItemRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null;size:1024" json:"description"`
	Created     time.Time `gorm:"not null" json:"created"`
	RequesterID uint      `gorm:"not null;index" json:"requester_id"`
}
