package session

import (
	"context"
	"strings"
	"time"

	"codeword/internal/db"

	"gorm.io/gorm"
)

// AddWord appends a word to the game's release schedule. Host only;
// words are immutable once created.
func (s *Service) AddWord(ctx context.Context, hostUserID string, gameID uint, word string, dayNumber int, availableAt *time.Time) (*db.Word, error) {
	var record db.Game
	if err := loadGame(s.db.WithContext(ctx), gameID, &record); err != nil {
		return nil, err
	}
	if record.HostUserID != hostUserID {
		return nil, ErrNotHost
	}
	if record.Status == db.GameStatusEnded {
		return nil, ErrGameEnded
	}
	if dayNumber < 1 {
		dayNumber = 1
	}
	entry := db.Word{
		GameID:      gameID,
		Word:        strings.TrimSpace(word),
		DayNumber:   dayNumber,
		AvailableAt: availableAt,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// WordsAvailableAsOf returns the words released up to and including
// asOfDay, ordered by (day_number, created_at). Re-querying has no
// side effects.
func (s *Service) WordsAvailableAsOf(ctx context.Context, gameID uint, asOfDay int) ([]db.Word, error) {
	var record db.Game
	if err := loadGame(s.db.WithContext(ctx), gameID, &record); err != nil {
		return nil, err
	}
	return releasedWords(s.db.WithContext(ctx), gameID, asOfDay, s.now())
}

// CurrentDay reports the 1-based release day for an active game, and 0
// before the game starts.
func (s *Service) CurrentDay(record *db.Game) int {
	if record == nil {
		return 0
	}
	return currentDayAt(record, s.now())
}

// WordByID loads a single word belonging to the game.
func (s *Service) WordByID(ctx context.Context, gameID, wordID uint) (*db.Word, error) {
	var word db.Word
	err := s.db.WithContext(ctx).
		Where("id = ? AND game_id = ?", wordID, gameID).
		First(&word).Error
	if err != nil {
		if notFound(err) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &word, nil
}

// releasedWords filters by day number, or by available_at when that
// override is set.
func releasedWords(tx *gorm.DB, gameID uint, asOfDay int, now time.Time) ([]db.Word, error) {
	var words []db.Word
	err := tx.Where("game_id = ?", gameID).
		Where("(available_at IS NULL AND day_number <= ?) OR (available_at IS NOT NULL AND available_at <= ?)", asOfDay, now).
		Order("day_number ASC, created_at ASC, id ASC").
		Find(&words).Error
	return words, err
}
