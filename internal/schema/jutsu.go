package schema

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/zulandar/konoha/internal/models"
)

// JutsuCreate is the payload for POST /jutsus/ and for the nested
// POST /characters/{id}/jutsus (where any character_id in the body is
// ignored in favor of the path).
type JutsuCreate struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Type        string `json:"type" binding:"required,min=1,max=50"`
	ChakraCost  *int   `json:"chakra_cost" binding:"omitnil,min=1"`
	CharacterID *uint  `json:"character_id" binding:"omitnil,min=1"`
}

// JutsuUpdate is the PATCH /jutsus/{id} payload. Nil pointer fields
// were absent and leave the stored value unchanged. CharacterID is a
// NullableID because an explicit null clears the owner.
type JutsuUpdate struct {
	Name        *string    `json:"name" binding:"omitnil,min=1,max=100"`
	Type        *string    `json:"type" binding:"omitnil,min=1,max=50"`
	ChakraCost  *int       `json:"chakra_cost" binding:"omitnil,min=1"`
	CharacterID NullableID `json:"character_id"`
}

// NullableID is an update field that distinguishes the three payload
// states of a nullable reference: absent (leave unchanged), JSON null
// (clear it), and a value (set it).
type NullableID struct {
	Present bool
	Value   *uint
}

// UnmarshalJSON records that the field appeared in the payload.
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Present = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

// JutsuRead is the jutsu response body. CharacterID is null for an
// unowned jutsu.
type JutsuRead struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	ChakraCost  int       `json:"chakra_cost"`
	CharacterID *uint     `json:"character_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewJutsuRead shapes a stored jutsu for the wire.
func NewJutsuRead(m models.Jutsu) JutsuRead {
	return JutsuRead{
		ID:          m.ID,
		Name:        m.Name,
		Type:        m.Type,
		ChakraCost:  m.ChakraCost,
		CharacterID: m.CharacterID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
