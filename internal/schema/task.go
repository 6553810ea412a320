// Package schema defines the request and response payload shapes for
// the HTTP API, plus the validation error body built from failed
// binding.
package schema

import (
	"time"

	"github.com/zulandar/konoha/internal/models"
)

// Task status values.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Task priority wire values. Rows store the ordinal: low=1, medium=2,
// high=3.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// PriorityOrdinal maps a wire priority to its stored ordinal. The empty
// string maps to the default, medium.
func PriorityOrdinal(wire string) int {
	switch wire {
	case PriorityLow:
		return 1
	case PriorityHigh:
		return 3
	default:
		return 2
	}
}

// PriorityWire maps a stored ordinal back to its wire value.
func PriorityWire(ordinal int) string {
	switch ordinal {
	case 1:
		return PriorityLow
	case 3:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// TaskCreate is the POST /tasks/ payload. Start and end dates are not
// accepted here; they are stamped by status transitions.
type TaskCreate struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// TaskUpdate is the PATCH /tasks/{id} payload. Nil fields were absent
// from the request and leave the stored value unchanged.
type TaskUpdate struct {
	Title       *string `json:"title" binding:"omitnil,min=1,max=100"`
	Description *string `json:"description" binding:"omitnil,max=1000"`
	Status      *string `json:"status" binding:"omitnil,oneof=pending in_progress completed cancelled"`
	Priority    *string `json:"priority" binding:"omitnil,oneof=low medium high"`
}

// TaskRead is the task response body.
type TaskRead struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewTaskRead shapes a stored task for the wire.
func NewTaskRead(m models.Task) TaskRead {
	return TaskRead{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      m.Status,
		Priority:    PriorityWire(m.Priority),
		CreatedAt:   m.CreatedAt,
	}
}
