package server

import (
	"net/http"

	"codeword/internal/config"
	"codeword/internal/session"

	"github.com/gin-gonic/gin"
)

type Server struct {
	svc *session.Service
	cfg config.Config
}

func New(svc *session.Service, cfg config.Config) *Server {
	return &Server{svc: svc, cfg: cfg}
}

func (s *Server) Handler() http.Handler {
	registerValidators()
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api", s.requireUser)
	api.POST("/games", s.handleCreateGame)
	api.POST("/games/join", s.handleJoin)
	api.GET("/my/games", s.handleMyGames)

	games := api.Group("/games/:id")
	games.GET("", s.handleGetGame)
	games.POST("/ready", s.handleReady)
	games.POST("/start", s.handleStart)
	games.POST("/end", s.handleEnd)
	games.POST("/advance", s.handleAdvance)
	games.POST("/leave", s.handleLeave)
	games.GET("/members", s.handleMembers)
	games.POST("/words", s.handleAddWord)
	games.GET("/words", s.handleWords)
	games.GET("/assignment", s.handleAssignment)
	games.POST("/eliminations", s.handleRecordElimination)
	games.GET("/eliminations", s.handleEliminations)

	return router
}
