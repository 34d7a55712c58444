package session

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"codeword/internal/config"
	"codeword/internal/db"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestService opens an isolated in-memory store per test. The
// injected clock ticks one second per call so join order is
// deterministic, and TranslateError makes unique constraints surface
// the same way the Postgres driver reports them.
func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Skipf("skipping test; sqlite unavailable: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := New(conn, config.Default())
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return svc
}

func createLobby(t *testing.T, svc *Service, host string) *db.Game {
	t.Helper()
	record, err := svc.CreateGameAsHost(context.Background(), host, "Office Codeword", "", 0, nil)
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	return record
}

func joinAndReady(t *testing.T, svc *Service, record *db.Game, users ...string) {
	t.Helper()
	ctx := context.Background()
	for _, user := range users {
		if user != record.HostUserID {
			if _, err := svc.JoinByCode(ctx, user, record.Code); err != nil {
				t.Fatalf("join %s: %v", user, err)
			}
		}
		if _, err := svc.SetReady(ctx, user, record.ID, true); err != nil {
			t.Fatalf("ready %s: %v", user, err)
		}
	}
}

func startedGame(t *testing.T, svc *Service, host string, players ...string) *db.Game {
	t.Helper()
	record := createLobby(t, svc, host)
	joinAndReady(t, svc, record, append([]string{host}, players...)...)
	record, err := svc.StartGame(context.Background(), host, record.ID)
	if err != nil {
		t.Fatalf("start game: %v", err)
	}
	return record
}

func pendingByAssassin(t *testing.T, svc *Service, gameID uint) map[string]db.Assignment {
	t.Helper()
	var list []db.Assignment
	if err := svc.db.Where("game_id = ? AND status = ?", gameID, db.AssignmentPending).Find(&list).Error; err != nil {
		t.Fatalf("load assignments: %v", err)
	}
	byAssassin := make(map[string]db.Assignment, len(list))
	for _, assignment := range list {
		if _, dup := byAssassin[assignment.AssassinUserID]; dup {
			t.Fatalf("assassin %s holds two pending assignments", assignment.AssassinUserID)
		}
		byAssassin[assignment.AssassinUserID] = assignment
	}
	return byAssassin
}
