package models

import "time"

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	Status   BookingStatus `gorm:"type:varchar(10);not null;default:'WAITING'" json:"status"`
	Start    time.Time     `gorm:"column:start_date;not null" json:"start"`
	End      time.Time     `gorm:"column:end_date;not null" json:"end"`
	BookerID uint          `gorm:"not null;index" json:"booker_id"`
	ItemID   uint          `gorm:"not null;index" json:"item_id"`

	Booker *User `gorm:"foreignKey:BookerID" json:"booker,omitempty"`
	Item   *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}
