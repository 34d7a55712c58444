// Package session implements the game-session lifecycle: join-code
// allocation, membership admission, the per-round assignment cycle,
// and elimination recording. All multi-entity writes run inside a
// single database transaction.
package session

import (
	"errors"
	"time"

	"codeword/internal/config"
	"codeword/internal/game"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	cfg config.Config

	// injectable for deterministic tests
	now          func() time.Time
	generateCode func(length int) string
}

func New(conn *gorm.DB, cfg config.Config) *Service {
	return &Service{
		db:           conn,
		cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
		generateCode: game.GenerateCode,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
