package server

import (
	"time"

	"codeword/internal/db"
)

type gameResponse struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Code          string         `json:"code"`
	Status        string         `json:"status"`
	HostUserID    string         `json:"host_user_id"`
	DurationHours int            `json:"duration_hours"`
	StartedAt     *time.Time     `json:"started_at,omitempty"`
	EndedAt       *time.Time     `json:"ended_at,omitempty"`
	EndsAt        *time.Time     `json:"ends_at,omitempty"`
	CurrentDay    int            `json:"current_day"`
	Settings      map[string]any `json:"settings,omitempty"`
}

type memberResponse struct {
	UserID       string     `json:"user_id"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	IsReady      bool       `json:"is_ready"`
	Score        int        `json:"score"`
	JoinedAt     time.Time  `json:"joined_at"`
	EliminatedAt *time.Time `json:"eliminated_at,omitempty"`
	LeftAt       *time.Time `json:"left_at,omitempty"`
}

type wordResponse struct {
	ID          uint       `json:"id"`
	Word        string     `json:"word"`
	DayNumber   int        `json:"day_number"`
	AvailableAt *time.Time `json:"available_at,omitempty"`
}

type assignmentResponse struct {
	ID           uint   `json:"id"`
	Round        int    `json:"round"`
	TargetUserID string `json:"target_user_id"`
	Word         string `json:"word,omitempty"`
	Status       string `json:"status"`
}

type eliminationResponse struct {
	ID           uint      `json:"id"`
	AssignmentID *uint     `json:"assignment_id,omitempty"`
	KillerUserID string    `json:"killer_user_id"`
	VictimUserID string    `json:"victim_user_id"`
	Notes        string    `json:"notes,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (s *Server) newGameResponse(record *db.Game) gameResponse {
	return gameResponse{
		ID:            record.ID,
		Name:          record.Name,
		Description:   record.Description,
		Code:          record.Code,
		Status:        record.Status,
		HostUserID:    record.HostUserID,
		DurationHours: record.DurationHours,
		StartedAt:     record.StartedAt,
		EndedAt:       record.EndedAt,
		EndsAt:        record.EndsAt(),
		CurrentDay:    s.svc.CurrentDay(record),
		Settings:      map[string]any(record.Settings),
	}
}

func newMemberResponse(member db.Membership) memberResponse {
	return memberResponse{
		UserID:       member.UserID,
		Role:         member.Role,
		Status:       member.Status,
		IsReady:      member.IsReady,
		Score:        member.Score,
		JoinedAt:     member.JoinedAt,
		EliminatedAt: member.EliminatedAt,
		LeftAt:       member.LeftAt,
	}
}

func newWordResponse(word db.Word) wordResponse {
	return wordResponse{
		ID:          word.ID,
		Word:        word.Word,
		DayNumber:   word.DayNumber,
		AvailableAt: word.AvailableAt,
	}
}

func newEliminationResponse(elimination db.Elimination) eliminationResponse {
	return eliminationResponse{
		ID:           elimination.ID,
		AssignmentID: elimination.AssignmentID,
		KillerUserID: elimination.KillerUserID,
		VictimUserID: elimination.VictimUserID,
		Notes:        elimination.Notes,
		OccurredAt:   elimination.OccurredAt,
	}
}
