package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type gameURI struct {
	ID uint `uri:"id" binding:"required"`
}

type createGameRequest struct {
	Name          string         `json:"name" binding:"required,gamename"`
	Description   string         `json:"description" binding:"omitempty,max=500"`
	DurationHours int            `json:"duration_hours" binding:"omitempty,min=1,max=720"`
	Settings      map[string]any `json:"settings"`
}

var createGameMessages = bindMessages{
	"Name": {
		"required": "game name is required",
		"gamename": "game name is invalid",
	},
	"DurationHours": {
		"min": "duration must be at least one hour",
		"max": "duration must be 720 hours or fewer",
	},
}

func (s *Server) handleCreateGame(c *gin.Context) {
	var req createGameRequest
	if !bindJSON(c, &req, createGameMessages, "invalid game") {
		return
	}
	name, err := validateGameName(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := s.svc.CreateGameAsHost(c.Request.Context(), currentUser(c), name, normalizeText(req.Description), req.DurationHours, req.Settings)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s.newGameResponse(record))
}

func (s *Server) handleGetGame(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	record, err := s.svc.GameByID(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.newGameResponse(record))
}

func (s *Server) handleMyGames(c *gin.Context) {
	games, err := s.svc.ListUserGames(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]gameResponse, 0, len(games))
	for i := range games {
		resp = append(resp, s.newGameResponse(&games[i]))
	}
	c.JSON(http.StatusOK, gin.H{"games": resp})
}

func (s *Server) handleStart(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	record, err := s.svc.StartGame(c.Request.Context(), currentUser(c), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.newGameResponse(record))
}

func (s *Server) handleEnd(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	record, err := s.svc.EndGame(c.Request.Context(), currentUser(c), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.newGameResponse(record))
}

func (s *Server) handleAdvance(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	record, err := s.svc.AdvanceRound(c.Request.Context(), currentUser(c), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.newGameResponse(record))
}
