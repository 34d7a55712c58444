package session

import (
	"context"
	"log"

	"codeword/internal/db"

	"gorm.io/gorm"
)

// JoinByCode admits a user into a lobby game. A user who previously
// left rejoins on the same row (left→active); any other existing row
// fails with ErrDuplicateMembership. The composite unique index on
// (game_id, user_id) backstops concurrent joins.
func (s *Service) JoinByCode(ctx context.Context, userID, code string) (*db.Membership, error) {
	var member db.Membership
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record db.Game
		normalized := normalizeCode(code)
		if err := tx.Where("code = ?", normalized).First(&record).Error; err != nil {
			if notFound(err) {
				return ErrGameNotFound
			}
			return err
		}
		switch record.Status {
		case db.GameStatusActive:
			return ErrGameAlreadyStarted
		case db.GameStatusEnded:
			return ErrGameEnded
		}
		var existing db.Membership
		err := tx.Where("game_id = ? AND user_id = ?", record.ID, userID).First(&existing).Error
		switch {
		case err == nil:
			if existing.Status != db.MemberLeft {
				return ErrDuplicateMembership
			}
			updates := map[string]any{
				"status":    db.MemberActive,
				"is_ready":  false,
				"joined_at": s.now(),
				"left_at":   nil,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			return tx.First(&member, existing.ID).Error
		case notFound(err):
			member = db.Membership{
				GameID:   record.ID,
				UserID:   userID,
				Role:     db.RolePlayer,
				Status:   db.MemberActive,
				JoinedAt: s.now(),
			}
			if err := tx.Create(&member).Error; err != nil {
				if isUniqueViolation(err) {
					return ErrDuplicateMembership
				}
				return err
			}
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	log.Printf("player joined game_id=%d user=%s", member.GameID, userID)
	return &member, nil
}

// SetReady flips the readiness flag on the caller's active membership.
func (s *Service) SetReady(ctx context.Context, userID string, gameID uint, ready bool) (*db.Membership, error) {
	var member db.Membership
	err := s.db.WithContext(ctx).
		Where("game_id = ? AND user_id = ? AND status = ?", gameID, userID, db.MemberActive).
		First(&member).Error
	if err != nil {
		if notFound(err) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	if member.IsReady == ready {
		return &member, nil
	}
	if err := s.db.WithContext(ctx).Model(&member).Update("is_ready", ready).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// LeaveGame marks the caller's active membership as left. The host
// cannot leave their own game; they end it instead.
func (s *Service) LeaveGame(ctx context.Context, userID string, gameID uint) (*db.Membership, error) {
	var member db.Membership
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("game_id = ? AND user_id = ? AND status = ?", gameID, userID, db.MemberActive).
			First(&member).Error
		if err != nil {
			if notFound(err) {
				return ErrMembershipNotFound
			}
			return err
		}
		if member.Role == db.RoleHost {
			return ErrHostCannotLeave
		}
		now := s.now()
		updates := map[string]any{
			"status":   db.MemberLeft,
			"is_ready": false,
			"left_at":  now,
		}
		if err := tx.Model(&member).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&member, member.ID).Error
	})
	if err != nil {
		return nil, err
	}
	log.Printf("player left game_id=%d user=%s", gameID, userID)
	return &member, nil
}

// ListMembers returns every membership row for the game, ordered by
// join time (id breaks ties for same-instant joins).
func (s *Service) ListMembers(ctx context.Context, gameID uint) ([]db.Membership, error) {
	var members []db.Membership
	err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("joined_at ASC, id ASC").
		Find(&members).Error
	return members, err
}

// ListActiveMembers returns the active members in the deterministic
// order the assignment engine consumes.
func (s *Service) ListActiveMembers(ctx context.Context, gameID uint) ([]db.Membership, error) {
	return activeMembers(s.db.WithContext(ctx), gameID)
}

func activeMembers(tx *gorm.DB, gameID uint) ([]db.Membership, error) {
	var members []db.Membership
	err := tx.Where("game_id = ? AND status = ?", gameID, db.MemberActive).
		Order("joined_at ASC, id ASC").
		Find(&members).Error
	return members, err
}

// eliminateMember transitions a membership to eliminated. Idempotent:
// an already-eliminated member is returned unchanged.
func (s *Service) eliminateMember(tx *gorm.DB, gameID uint, userID string) (*db.Membership, bool, error) {
	var member db.Membership
	err := tx.Where("game_id = ? AND user_id = ?", gameID, userID).First(&member).Error
	if err != nil {
		if notFound(err) {
			return nil, false, ErrMembershipNotFound
		}
		return nil, false, err
	}
	if member.Status == db.MemberEliminated {
		return &member, false, nil
	}
	now := s.now()
	updates := map[string]any{
		"status":        db.MemberEliminated,
		"is_ready":      false,
		"eliminated_at": now,
	}
	if err := tx.Model(&member).Updates(updates).Error; err != nil {
		return nil, false, err
	}
	member.Status = db.MemberEliminated
	member.EliminatedAt = &now
	return &member, true, nil
}
