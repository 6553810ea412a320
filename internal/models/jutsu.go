package models

import "time"

// Jutsu is a technique. CharacterID is nullable: a jutsu may be
// unowned, and deleting its owner sets it back to NULL rather than
// cascading.
type Jutsu struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:100;not null;index"`
	Type        string `gorm:"size:50;not null"`
	ChakraCost  int    `gorm:"default:10"`
	CharacterID *uint  `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Character *Character `gorm:"foreignKey:CharacterID"`
}
