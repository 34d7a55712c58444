package db

import "time"

// Elimination is the permanent record of a kill. AssignmentID is nil
// only for out-of-band recordings made by the host.
type Elimination struct {
	ID           uint      `gorm:"primaryKey"`
	GameID       uint      `gorm:"index;not null"`
	AssignmentID *uint     `gorm:"index"`
	KillerUserID string    `gorm:"size:64;not null"`
	VictimUserID string    `gorm:"size:64;not null"`
	Notes        string    `gorm:"size:500"`
	OccurredAt   time.Time `gorm:"not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
}
