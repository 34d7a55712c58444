package db

import "time"

const (
	RoleHost   = "host"
	RolePlayer = "player"
)

const (
	MemberActive     = "active"
	MemberEliminated = "eliminated"
	MemberLeft       = "left"
)

// Membership links a user to a game. At most one row exists per
// (game, user); a player who leaves and rejoins reuses the same row.
type Membership struct {
	ID           uint       `gorm:"primaryKey"`
	GameID       uint       `gorm:"not null;uniqueIndex:idx_memberships_game_user"`
	UserID       string     `gorm:"size:64;not null;uniqueIndex:idx_memberships_game_user"`
	Role         string     `gorm:"size:16;not null;default:player"`
	Status       string     `gorm:"size:16;not null;default:active"`
	IsReady      bool       `gorm:"not null;default:false"`
	Score        int        `gorm:"not null;default:0"`
	JoinedAt     time.Time  `gorm:"not null;index"`
	EliminatedAt *time.Time
	LeftAt       *time.Time
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}
