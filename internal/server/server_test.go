package server

import (
	"net/http"
	"testing"
)

func TestRequiresUserHeader(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doRequest(t, ts, http.MethodGet, "/api/my/games", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, resp.StatusCode)
	}
	if body["error"] != "authentication required" {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}

func TestGameLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	gameID, code := createGame(t, ts, "host")
	joinAndReady(t, ts, gameID, "", "host")
	joinAndReady(t, ts, gameID, code, "ben")

	resp, body := doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/start", "host", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("start: status %d (%v)", resp.StatusCode, body)
	}
	if body["status"] != "active" {
		t.Fatalf("expected active game, got %v", body["status"])
	}

	resp, body = doRequest(t, ts, http.MethodGet, "/api/games/"+gameID+"/assignment", "host", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("assignment: status %d (%v)", resp.StatusCode, body)
	}
	if body["target_user_id"] != "ben" {
		t.Fatalf("expected target ben, got %v", body["target_user_id"])
	}
	assignmentID, ok := body["id"].(float64)
	if !ok {
		t.Fatalf("missing assignment id in %v", body)
	}

	resp, body = doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/eliminations", "host", map[string]any{
		"victim_user_id": "ben",
		"assignment_id":  int(assignmentID),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("elimination: status %d (%v)", resp.StatusCode, body)
	}

	resp, body = doRequest(t, ts, http.MethodGet, "/api/games/"+gameID, "host", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get game: status %d (%v)", resp.StatusCode, body)
	}
	if body["status"] != "ended" {
		t.Fatalf("expected ended game after last elimination, got %v", body["status"])
	}
}

func TestJoinErrorResponses(t *testing.T) {
	ts := newTestServer(t)

	_, code := createGame(t, ts, "host")

	resp, body := doRequest(t, ts, http.MethodPost, "/api/games/join", "ben", map[string]any{"code": "!!"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid code: status %d (%v)", resp.StatusCode, body)
	}

	resp, body = doRequest(t, ts, http.MethodPost, "/api/games/join", "ben", map[string]any{"code": "ZZZZ99"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown code: status %d (%v)", resp.StatusCode, body)
	}
	if body["error"] != "game not found" {
		t.Fatalf("unexpected error message %v", body["error"])
	}

	resp, body = doRequest(t, ts, http.MethodPost, "/api/games/join", "ben", map[string]any{"code": code})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("join: status %d (%v)", resp.StatusCode, body)
	}
	resp, body = doRequest(t, ts, http.MethodPost, "/api/games/join", "ben", map[string]any{"code": code})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate join: status %d (%v)", resp.StatusCode, body)
	}
	if body["error"] != "already in this game" {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}

func TestStartRequiresHost(t *testing.T) {
	ts := newTestServer(t)

	gameID, code := createGame(t, ts, "host")
	joinAndReady(t, ts, gameID, "", "host")
	joinAndReady(t, ts, gameID, code, "ben")

	resp, body := doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/start", "ben", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d (%v)", http.StatusForbidden, resp.StatusCode, body)
	}
}

func TestWordEndpoints(t *testing.T) {
	ts := newTestServer(t)

	gameID, code := createGame(t, ts, "host")

	resp, body := doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/words", "host", map[string]any{
		"word":       "puzzle",
		"day_number": 1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add word: status %d (%v)", resp.StatusCode, body)
	}
	if body["word"] != "puzzle" {
		t.Fatalf("unexpected word %v", body["word"])
	}

	joinAndReady(t, ts, gameID, code, "ben")
	resp, body = doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/words", "ben", map[string]any{
		"word": "secret",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-host add word: status %d (%v)", resp.StatusCode, body)
	}

	resp, _ = doRequest(t, ts, http.MethodGet, "/api/games/"+gameID+"/words?day=1", "ben", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list words: status %d", resp.StatusCode)
	}
}
