package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type eliminationRequest struct {
	VictimUserID string `json:"victim_user_id" binding:"required"`
	AssignmentID *uint  `json:"assignment_id"`
	Notes        string `json:"notes" binding:"omitempty,max=500"`
}

var eliminationMessages = bindMessages{
	"VictimUserID": {
		"required": "victim is required",
	},
	"Notes": {
		"max": "notes must be 500 characters or fewer",
	},
}

func (s *Server) handleAssignment(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	assignment, err := s.svc.CurrentAssignment(c.Request.Context(), currentUser(c), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := assignmentResponse{
		ID:           assignment.ID,
		Round:        assignment.Round,
		TargetUserID: assignment.TargetUserID,
		Status:       assignment.Status,
	}
	if assignment.WordID != nil {
		if word, err := s.svc.WordByID(c.Request.Context(), uri.ID, *assignment.WordID); err == nil {
			resp.Word = word.Word
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRecordElimination(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	var req eliminationRequest
	if !bindJSON(c, &req, eliminationMessages, "invalid elimination") {
		return
	}
	elimination, err := s.svc.RecordElimination(c.Request.Context(), currentUser(c), req.VictimUserID, uri.ID, req.AssignmentID, normalizeText(req.Notes))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newEliminationResponse(*elimination))
}

func (s *Server) handleEliminations(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	if _, err := s.svc.GameByID(c.Request.Context(), uri.ID); err != nil {
		respondError(c, err)
		return
	}
	eliminations, err := s.svc.Eliminations(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]eliminationResponse, 0, len(eliminations))
	for _, elimination := range eliminations {
		resp = append(resp, newEliminationResponse(elimination))
	}
	c.JSON(http.StatusOK, gin.H{"eliminations": resp})
}
