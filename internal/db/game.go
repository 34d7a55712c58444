package db

import (
	"time"

	"gorm.io/datatypes"
)

const (
	GameStatusLobby  = "lobby"
	GameStatusActive = "active"
	GameStatusEnded  = "ended"
)

// Game is one time-boxed Codeword game. The join code is assigned at
// creation and never changes.
type Game struct {
	ID            uint              `gorm:"primaryKey"`
	Name          string            `gorm:"size:120;not null"`
	Description   string            `gorm:"size:500"`
	Code          string            `gorm:"size:8;uniqueIndex;not null"`
	HostUserID    string            `gorm:"size:64;index;not null"`
	Status        string            `gorm:"size:16;not null;default:lobby"`
	DurationHours int               `gorm:"not null;default:72"`
	StartedAt     *time.Time        `gorm:"index"`
	EndedAt       *time.Time
	Settings      datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt     time.Time         `gorm:"not null"`
	UpdatedAt     time.Time         `gorm:"not null"`
	Memberships   []Membership
	Words         []Word
	Assignments   []Assignment
	Eliminations  []Elimination
}

// EndsAt derives the scheduled end of a started game from its
// duration. Nil until the game starts.
func (g *Game) EndsAt() *time.Time {
	if g.StartedAt == nil {
		return nil
	}
	deadline := g.StartedAt.Add(time.Duration(g.DurationHours) * time.Hour)
	return &deadline
}
