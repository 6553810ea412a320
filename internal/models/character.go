package models

import "time"

// Character is a shinobi profile. It owns zero or more jutsus.
type Character struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100;not null;index"`
	Village   string `gorm:"size:50;not null;index"`
	Rank      string `gorm:"size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Jutsus []Jutsu `gorm:"foreignKey:CharacterID"`
}
