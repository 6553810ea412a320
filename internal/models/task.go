package models

import "time"

// Task is a tracked unit of work.
//
// StartDate and EndDate are stamped by status transitions in the task
// repository, never written from client payloads. CreatedAt is set once
// at insert; Task has no UpdatedAt column.
type Task struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"size:100;not null;index"`
	Description string `gorm:"type:text"`
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string `gorm:"size:16;default:pending;index"`
	Priority    int    `gorm:"default:2"`
	CreatedAt   time.Time
}
