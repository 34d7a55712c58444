package session

import (
	"context"
	"log"
	"strings"
	"time"

	"codeword/internal/db"
	"codeword/internal/game"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateGameAsHost allocates a unique join code and writes the game
// plus the host's membership as one transaction. The code pre-check is
// an optimization only; the unique index on games.code is the source
// of truth, and a lost race retries with a fresh code.
func (s *Service) CreateGameAsHost(ctx context.Context, hostUserID, name, description string, durationHours int, settings map[string]any) (*db.Game, error) {
	if durationHours <= 0 {
		durationHours = s.cfg.DefaultDurationHours
	}
	attempts := s.cfg.CodeMaxAttempts
	if attempts <= 0 {
		attempts = 5
	}
	for attempt := 0; attempt < attempts; attempt++ {
		code := s.generateCode(s.cfg.CodeLength)
		record := &db.Game{
			Name:          name,
			Description:   description,
			Code:          code,
			HostUserID:    hostUserID,
			Status:        db.GameStatusLobby,
			DurationHours: durationHours,
			Settings:      datatypes.JSONMap(settings),
		}
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&db.Game{}).Where("code = ?", code).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return gorm.ErrDuplicatedKey
			}
			if err := tx.Create(record).Error; err != nil {
				return err
			}
			member := &db.Membership{
				GameID:   record.ID,
				UserID:   hostUserID,
				Role:     db.RoleHost,
				Status:   db.MemberActive,
				JoinedAt: s.now(),
			}
			return tx.Create(member).Error
		})
		if err == nil {
			log.Printf("game created game_id=%d join_code=%s host=%s", record.ID, record.Code, hostUserID)
			return record, nil
		}
		if isUniqueViolation(err) {
			continue
		}
		return nil, err
	}
	return nil, ErrCodeSpaceExhausted
}

// GameByID loads one game.
func (s *Service) GameByID(ctx context.Context, gameID uint) (*db.Game, error) {
	var record db.Game
	if err := s.db.WithContext(ctx).First(&record, gameID).Error; err != nil {
		if notFound(err) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &record, nil
}

// GameByCode loads a game by its join code, case-insensitively.
func (s *Service) GameByCode(ctx context.Context, code string) (*db.Game, error) {
	var record db.Game
	if err := s.db.WithContext(ctx).Where("code = ?", normalizeCode(code)).First(&record).Error; err != nil {
		if notFound(err) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ListUserGames returns the games the user belongs to, most recently
// joined first.
func (s *Service) ListUserGames(ctx context.Context, userID string) ([]db.Game, error) {
	var games []db.Game
	err := s.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.game_id = games.id").
		Where("memberships.user_id = ?", userID).
		Order("memberships.joined_at DESC").
		Find(&games).Error
	return games, err
}

// StartGame moves a lobby game to active and computes the first round
// over the active members. Host only; at least MinPlayers members must
// be ready.
func (s *Service) StartGame(ctx context.Context, hostUserID string, gameID uint) (*db.Game, error) {
	var record db.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := loadGame(tx, gameID, &record); err != nil {
			return err
		}
		if record.HostUserID != hostUserID {
			return ErrNotHost
		}
		if record.Status == db.GameStatusEnded {
			return ErrGameEnded
		}
		members, err := activeMembers(tx, record.ID)
		if err != nil {
			return err
		}
		ready := 0
		for _, m := range members {
			if m.IsReady {
				ready++
			}
		}
		if len(members) < s.cfg.MinPlayers || ready < s.cfg.MinPlayers {
			return game.ErrInsufficientPlayers
		}
		now := s.now()
		if err := advanceStatus(tx, &record, db.GameStatusActive, now); err != nil {
			return err
		}
		return s.computeRound(tx, &record, 1, now)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("game started game_id=%d", record.ID)
	return &record, nil
}

// EndGame moves an active game to ended and voids any assignments
// still pending. Host only.
func (s *Service) EndGame(ctx context.Context, hostUserID string, gameID uint) (*db.Game, error) {
	var record db.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := loadGame(tx, gameID, &record); err != nil {
			return err
		}
		if record.HostUserID != hostUserID {
			return ErrNotHost
		}
		if err := advanceStatus(tx, &record, db.GameStatusEnded, s.now()); err != nil {
			return err
		}
		return voidPendingAssignments(tx, record.ID)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("game ended game_id=%d", record.ID)
	return &record, nil
}

// AdvanceRound voids the current round's pending assignments and
// computes the next round over the members still active. Host only.
func (s *Service) AdvanceRound(ctx context.Context, hostUserID string, gameID uint) (*db.Game, error) {
	var record db.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := loadGame(tx, gameID, &record); err != nil {
			return err
		}
		if record.HostUserID != hostUserID {
			return ErrNotHost
		}
		switch record.Status {
		case db.GameStatusLobby:
			return ErrGameNotStarted
		case db.GameStatusEnded:
			return ErrGameEnded
		}
		round, err := currentRound(tx, record.ID)
		if err != nil {
			return err
		}
		if err := voidPendingAssignments(tx, record.ID); err != nil {
			return err
		}
		return s.computeRound(tx, &record, round+1, s.now())
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func loadGame(tx *gorm.DB, gameID uint, dest *db.Game) error {
	if err := tx.First(dest, gameID).Error; err != nil {
		if notFound(err) {
			return ErrGameNotFound
		}
		return err
	}
	return nil
}

func allowedTransition(current, next string) bool {
	switch {
	case current == db.GameStatusLobby && next == db.GameStatusActive:
		return true
	case current == db.GameStatusActive && next == db.GameStatusEnded:
		return true
	}
	return false
}

// advanceStatus applies a forward-only status change as a conditional
// update; a concurrent transition makes the update match zero rows.
func advanceStatus(tx *gorm.DB, record *db.Game, next string, now time.Time) error {
	if !allowedTransition(record.Status, next) {
		return ErrInvalidTransition
	}
	updates := map[string]any{"status": next, "updated_at": now}
	switch next {
	case db.GameStatusActive:
		updates["started_at"] = now
	case db.GameStatusEnded:
		updates["ended_at"] = now
	}
	result := tx.Model(&db.Game{}).
		Where("id = ? AND status = ?", record.ID, record.Status).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	record.Status = next
	stamp := now
	switch next {
	case db.GameStatusActive:
		record.StartedAt = &stamp
	case db.GameStatusEnded:
		record.EndedAt = &stamp
	}
	return nil
}
