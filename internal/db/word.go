package db

import "time"

// Word is one entry in a game's release schedule. Words are immutable
// once created; ordering is (day_number, created_at, id).
type Word struct {
	ID          uint       `gorm:"primaryKey"`
	GameID      uint       `gorm:"index;not null"`
	Word        string     `gorm:"size:64;not null"`
	DayNumber   int        `gorm:"not null;default:1"`
	AvailableAt *time.Time
	CreatedAt   time.Time  `gorm:"not null"`
}
