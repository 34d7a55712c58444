package db

import "time"

const (
	AssignmentPending  = "pending"
	AssignmentResolved = "resolved"
	AssignmentVoided   = "voided"
)

// Assignment is one assassin→target edge in a round's cycle. The
// pending→resolved transition is a conditional update so only one
// concurrent elimination can claim it.
type Assignment struct {
	ID             uint       `gorm:"primaryKey"`
	GameID         uint       `gorm:"not null;index:idx_assignments_game_round"`
	Round          int        `gorm:"not null;default:1;index:idx_assignments_game_round"`
	AssassinUserID string     `gorm:"size:64;not null;index"`
	TargetUserID   string     `gorm:"size:64;not null;index"`
	WordID         *uint      `gorm:"index"`
	Status         string     `gorm:"size:16;not null;default:pending"`
	CreatedAt      time.Time  `gorm:"not null"`
	ResolvedAt     *time.Time
}
