package session

import (
	"context"
	"log"
	"time"

	"codeword/internal/db"
	"codeword/internal/game"

	"gorm.io/gorm"
)

// computeRound builds the round's cycle over the game's active members
// and persists one pending assignment per edge. Released words are
// bound in pool order while they last; assignments without a word are
// still created.
func (s *Service) computeRound(tx *gorm.DB, record *db.Game, round int, now time.Time) error {
	members, err := activeMembers(tx, record.ID)
	if err != nil {
		return err
	}
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.UserID
	}
	pairs, err := game.BuildCycle(ids, game.CycleSeed(record.ID, round))
	if err != nil {
		return err
	}
	words, err := unusedReleasedWords(tx, record, now)
	if err != nil {
		return err
	}
	for i, pair := range pairs {
		assignment := db.Assignment{
			GameID:         record.ID,
			Round:          round,
			AssassinUserID: pair.Assassin,
			TargetUserID:   pair.Target,
			Status:         db.AssignmentPending,
		}
		if i < len(words) {
			wordID := words[i].ID
			assignment.WordID = &wordID
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
	}
	log.Printf("round computed game_id=%d round=%d assignments=%d", record.ID, round, len(pairs))
	return nil
}

// relink closes the gap left by an eliminated member: their assassin
// is pointed directly at their former target in a fresh pending
// assignment for the same round.
func (s *Service) relink(tx *gorm.DB, record *db.Game, round int, assassinID, targetID string, now time.Time) error {
	assignment := db.Assignment{
		GameID:         record.ID,
		Round:          round,
		AssassinUserID: assassinID,
		TargetUserID:   targetID,
		Status:         db.AssignmentPending,
	}
	words, err := unusedReleasedWords(tx, record, now)
	if err != nil {
		return err
	}
	if len(words) > 0 {
		wordID := words[0].ID
		assignment.WordID = &wordID
	}
	if err := tx.Create(&assignment).Error; err != nil {
		return err
	}
	log.Printf("cycle relinked game_id=%d round=%d assassin=%s target=%s", record.ID, round, assassinID, targetID)
	return nil
}

// CurrentAssignment returns the caller's pending assignment for the
// latest round.
func (s *Service) CurrentAssignment(ctx context.Context, userID string, gameID uint) (*db.Assignment, error) {
	var assignment db.Assignment
	err := s.db.WithContext(ctx).
		Where("game_id = ? AND assassin_user_id = ? AND status = ?", gameID, userID, db.AssignmentPending).
		Order("round DESC, id DESC").
		First(&assignment).Error
	if err != nil {
		if notFound(err) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// RoundAssignments returns every assignment of one round, in creation
// order.
func (s *Service) RoundAssignments(ctx context.Context, gameID uint, round int) ([]db.Assignment, error) {
	var assignments []db.Assignment
	err := s.db.WithContext(ctx).
		Where("game_id = ? AND round = ?", gameID, round).
		Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

func currentRound(tx *gorm.DB, gameID uint) (int, error) {
	var round int
	err := tx.Model(&db.Assignment{}).
		Where("game_id = ?", gameID).
		Select("COALESCE(MAX(round), 0)").
		Scan(&round).Error
	return round, err
}

func voidPendingAssignments(tx *gorm.DB, gameID uint) error {
	return tx.Model(&db.Assignment{}).
		Where("game_id = ? AND status = ?", gameID, db.AssignmentPending).
		Update("status", db.AssignmentVoided).Error
}

// unusedReleasedWords lists released words not yet bound to any
// assignment of the game, in pool order.
func unusedReleasedWords(tx *gorm.DB, record *db.Game, now time.Time) ([]db.Word, error) {
	used := tx.Model(&db.Assignment{}).
		Select("word_id").
		Where("game_id = ? AND word_id IS NOT NULL", record.ID)
	var words []db.Word
	err := tx.Where("game_id = ?", record.ID).
		Where("(available_at IS NULL AND day_number <= ?) OR (available_at IS NOT NULL AND available_at <= ?)", currentDayAt(record, now), now).
		Where("id NOT IN (?)", used).
		Order("day_number ASC, created_at ASC, id ASC").
		Find(&words).Error
	return words, err
}

func currentDayAt(record *db.Game, now time.Time) int {
	if record.StartedAt == nil {
		return 0
	}
	elapsed := now.Sub(*record.StartedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed.Hours()/24) + 1
}
