package session

import (
	"context"
	"log"

	"codeword/internal/db"

	"gorm.io/gorm"
)

// RecordElimination records a kill and applies its side effects as one
// transaction: the assignment (if referenced) is resolved with a
// conditional update so a concurrent double-report loses, the victim's
// membership is eliminated, the cycle is re-linked around the gap, and
// the game ends when the killer is the last member standing.
//
// Recording without an assignment id is an out-of-band correction and
// is restricted to the host.
func (s *Service) RecordElimination(ctx context.Context, killerUserID, victimUserID string, gameID uint, assignmentID *uint, notes string) (*db.Elimination, error) {
	if killerUserID == victimUserID {
		return nil, ErrAssignmentMismatch
	}
	var elimination db.Elimination
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record db.Game
		if err := loadGame(tx, gameID, &record); err != nil {
			return err
		}
		switch record.Status {
		case db.GameStatusLobby:
			return ErrGameNotStarted
		case db.GameStatusEnded:
			return ErrGameEnded
		}
		now := s.now()
		round, err := currentRound(tx, record.ID)
		if err != nil {
			return err
		}

		if assignmentID != nil {
			var assignment db.Assignment
			if err := tx.First(&assignment, *assignmentID).Error; err != nil {
				if notFound(err) {
					return ErrAssignmentNotFound
				}
				return err
			}
			if assignment.GameID != record.ID {
				return ErrAssignmentNotFound
			}
			if assignment.AssassinUserID != killerUserID || assignment.TargetUserID != victimUserID {
				return ErrAssignmentMismatch
			}
			result := tx.Model(&db.Assignment{}).
				Where("id = ? AND status = ?", assignment.ID, db.AssignmentPending).
				Updates(map[string]any{"status": db.AssignmentResolved, "resolved_at": now})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrAlreadyResolved
			}
			round = assignment.Round
		} else if record.HostUserID != killerUserID {
			return ErrNotHost
		}

		_, changed, err := s.eliminateMember(tx, record.ID, victimUserID)
		if err != nil {
			return err
		}
		if !changed {
			return ErrAlreadyResolved
		}

		// The victim's own pending assignment names the member their
		// assassin inherits.
		inheritedTarget := ""
		var victimAssignment db.Assignment
		err = tx.Where("game_id = ? AND assassin_user_id = ? AND status = ?", record.ID, victimUserID, db.AssignmentPending).
			First(&victimAssignment).Error
		switch {
		case err == nil:
			inheritedTarget = victimAssignment.TargetUserID
			if err := tx.Model(&victimAssignment).Update("status", db.AssignmentVoided).Error; err != nil {
				return err
			}
		case !notFound(err):
			return err
		}

		// Out-of-band recordings leave the victim's assassin with a
		// dead pending assignment; void it and re-link that assassin.
		// After a referenced resolution no such row remains and the
		// killer takes the gap.
		relinkAssassin := killerUserID
		var stale db.Assignment
		err = tx.Where("game_id = ? AND target_user_id = ? AND status = ?", record.ID, victimUserID, db.AssignmentPending).
			First(&stale).Error
		switch {
		case err == nil:
			relinkAssassin = stale.AssassinUserID
			if err := tx.Model(&stale).Update("status", db.AssignmentVoided).Error; err != nil {
				return err
			}
		case !notFound(err):
			return err
		}

		remaining, err := activeMembers(tx, record.ID)
		if err != nil {
			return err
		}
		if len(remaining) <= 1 {
			if err := advanceStatus(tx, &record, db.GameStatusEnded, now); err != nil {
				return err
			}
			if err := voidPendingAssignments(tx, record.ID); err != nil {
				return err
			}
			log.Printf("game ended by elimination game_id=%d survivor=%s", record.ID, killerUserID)
		} else if inheritedTarget != "" && inheritedTarget != relinkAssassin {
			if err := s.relink(tx, &record, round, relinkAssassin, inheritedTarget, now); err != nil {
				return err
			}
		}

		if err := tx.Model(&db.Membership{}).
			Where("game_id = ? AND user_id = ?", record.ID, killerUserID).
			UpdateColumn("score", gorm.Expr("score + 1")).Error; err != nil {
			return err
		}

		elimination = db.Elimination{
			GameID:       record.ID,
			AssignmentID: assignmentID,
			KillerUserID: killerUserID,
			VictimUserID: victimUserID,
			Notes:        notes,
			OccurredAt:   now,
		}
		return tx.Create(&elimination).Error
	})
	if err != nil {
		return nil, err
	}
	log.Printf("elimination recorded game_id=%d killer=%s victim=%s", gameID, killerUserID, victimUserID)
	return &elimination, nil
}

// Eliminations returns a game's kill log in occurrence order.
func (s *Service) Eliminations(ctx context.Context, gameID uint) ([]db.Elimination, error) {
	var eliminations []db.Elimination
	err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("occurred_at ASC, id ASC").
		Find(&eliminations).Error
	return eliminations, err
}
