package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type addWordRequest struct {
	Word        string     `json:"word" binding:"required,gameword"`
	DayNumber   int        `json:"day_number" binding:"omitempty,min=1"`
	AvailableAt *time.Time `json:"available_at"`
}

var addWordMessages = bindMessages{
	"Word": {
		"required": "word is required",
		"gameword": "word is invalid",
	},
	"DayNumber": {
		"min": "day number must be at least 1",
	},
}

type wordsQuery struct {
	Day *int `form:"day" binding:"omitempty,min=0"`
}

func (s *Server) handleAddWord(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	var req addWordRequest
	if !bindJSON(c, &req, addWordMessages, "invalid word") {
		return
	}
	word, err := validateWord(req.Word)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := s.svc.AddWord(c.Request.Context(), currentUser(c), uri.ID, word, req.DayNumber, req.AvailableAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newWordResponse(*entry))
}

func (s *Server) handleWords(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	var query wordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day"})
		return
	}
	record, err := s.svc.GameByID(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	asOfDay := s.svc.CurrentDay(record)
	if query.Day != nil {
		asOfDay = *query.Day
	}
	words, err := s.svc.WordsAvailableAsOf(c.Request.Context(), uri.ID, asOfDay)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]wordResponse, 0, len(words))
	for _, word := range words {
		resp = append(resp, newWordResponse(word))
	}
	c.JSON(http.StatusOK, gin.H{"day": asOfDay, "words": resp})
}
