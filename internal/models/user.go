package models

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null;size:255" json:"name"`
	Email string `gorm:"not null;size:512;uniqueIndex" json:"email"`
}
