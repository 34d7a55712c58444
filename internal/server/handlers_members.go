package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type joinRequest struct {
	Code string `json:"code" binding:"required,joincode"`
}

var joinMessages = bindMessages{
	"Code": {
		"required": "game code is required",
		"joincode": "game code is invalid",
	},
}

type readyRequest struct {
	Ready *bool `json:"ready" binding:"required"`
}

var readyMessages = bindMessages{
	"Ready": {
		"required": "ready flag is required",
	},
}

func (s *Server) handleJoin(c *gin.Context) {
	var req joinRequest
	if !bindJSON(c, &req, joinMessages, "invalid join request") {
		return
	}
	member, err := s.svc.JoinByCode(c.Request.Context(), currentUser(c), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"game_id":    member.GameID,
		"membership": newMemberResponse(*member),
	})
}

func (s *Server) handleReady(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	var req readyRequest
	if !bindJSON(c, &req, readyMessages, "invalid ready request") {
		return
	}
	member, err := s.svc.SetReady(c.Request.Context(), currentUser(c), uri.ID, *req.Ready)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMemberResponse(*member))
}

func (s *Server) handleLeave(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	member, err := s.svc.LeaveGame(c.Request.Context(), currentUser(c), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMemberResponse(*member))
}

func (s *Server) handleMembers(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	if _, err := s.svc.GameByID(c.Request.Context(), uri.ID); err != nil {
		respondError(c, err)
		return
	}
	members, err := s.svc.ListMembers(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]memberResponse, 0, len(members))
	for _, member := range members {
		resp = append(resp, newMemberResponse(member))
	}
	c.JSON(http.StatusOK, gin.H{"members": resp})
}
