package models

import "time"

type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"not null;size:5000" json:"text"`
	Created  time.Time `gorm:"not null" json:"created"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	ItemID   uint      `gorm:"not null;index" json:"item_id"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
