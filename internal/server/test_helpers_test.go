package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeword/internal/config"
	"codeword/internal/db"
	"codeword/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Skipf("skipping test; sqlite unavailable: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := config.Default()
	srv := New(session.New(conn, cfg), cfg)

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: srv.Handler()},
	}
	ts.Start()
	t.Cleanup(ts.Close)
	return ts
}

func doRequest(t *testing.T, ts *httptest.Server, method, path, user string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(userIDHeader, user)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	decoded := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func createGame(t *testing.T, ts *httptest.Server, host string) (gameID string, joinCode string) {
	t.Helper()
	resp, body := doRequest(t, ts, http.MethodPost, "/api/games", host, map[string]any{
		"name": "Office Codeword",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (%v)", http.StatusCreated, resp.StatusCode, body)
	}
	id, ok := body["id"].(float64)
	if !ok {
		t.Fatalf("missing game id in %v", body)
	}
	code, ok := body["code"].(string)
	if !ok {
		t.Fatalf("missing join code in %v", body)
	}
	return fmt.Sprintf("%d", int(id)), code
}

func joinAndReady(t *testing.T, ts *httptest.Server, gameID, joinCode string, users ...string) {
	t.Helper()
	for _, user := range users {
		if joinCode != "" {
			resp, body := doRequest(t, ts, http.MethodPost, "/api/games/join", user, map[string]any{"code": joinCode})
			if resp.StatusCode != http.StatusCreated {
				t.Fatalf("join %s: status %d (%v)", user, resp.StatusCode, body)
			}
		}
		resp, body := doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/ready", user, map[string]any{"ready": true})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("ready %s: status %d (%v)", user, resp.StatusCode, body)
		}
	}
}
