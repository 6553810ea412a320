package schema

import (
	"time"

	"github.com/zulandar/konoha/internal/models"
)

// CharacterCreate is the POST /characters/ payload.
type CharacterCreate struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Village string `json:"village" binding:"required,min=1,max=50"`
	Rank    string `json:"rank" binding:"omitempty,max=50"`
}

// CharacterUpdate is the PATCH /characters/{id} payload. Nil fields
// were absent from the request and leave the stored value unchanged.
type CharacterUpdate struct {
	Name    *string `json:"name" binding:"omitnil,min=1,max=100"`
	Village *string `json:"village" binding:"omitnil,min=1,max=50"`
	Rank    *string `json:"rank" binding:"omitnil,max=50"`
}

// CharacterRead is the character response body.
type CharacterRead struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Village   string    `json:"village"`
	Rank      string    `json:"rank"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCharacterRead shapes a stored character for the wire.
func NewCharacterRead(m models.Character) CharacterRead {
	return CharacterRead{
		ID:        m.ID,
		Name:      m.Name,
		Village:   m.Village,
		Rank:      m.Rank,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
