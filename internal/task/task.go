// Package task provides task repository operations.
package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/zulandar/konoha/internal/errs"
	"github.com/zulandar/konoha/internal/models"
	"github.com/zulandar/konoha/internal/pagination"
	"github.com/zulandar/konoha/internal/schema"
	"gorm.io/gorm"
)

// Create persists a new task with defaults applied and returns it with
// its generated id and creation timestamp.
func Create(db *gorm.DB, in schema.TaskCreate) (*models.Task, error) {
	task := models.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    schema.PriorityOrdinal(in.Priority),
	}
	if task.Status == "" {
		task.Status = schema.StatusPending
	}

	if err := db.Create(&task).Error; err != nil {
		return nil, errs.Invalid("Could not create task", fmt.Errorf("task: create: %w", err))
	}
	return &task, nil
}

// Get returns the task with the given id.
func Get(db *gorm.DB, id uint) (*models.Task, error) {
	var task models.Task
	if err := db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Task not found")
		}
		return nil, errs.Internal("Error retrieving task", fmt.Errorf("task: get %d: %w", id, err))
	}
	return &task, nil
}

// List returns one page of tasks ordered by id, optionally filtered by
// a title substring. Total counts all matching rows before paging.
func List(db *gorm.DB, q schema.ListQuery) (pagination.Page[models.Task], error) {
	p := q.Pagination()
	p.Normalize()

	query := db.Model(&models.Task{})
	if q.Search != "" {
		query = query.Where("title LIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return pagination.Page[models.Task]{}, errs.Internal("Error retrieving tasks", fmt.Errorf("task: count: %w", err))
	}

	var tasks []models.Task
	if err := query.Order("id ASC").Offset(p.Offset()).Limit(p.Size).Find(&tasks).Error; err != nil {
		return pagination.Page[models.Task]{}, errs.Internal("Error retrieving tasks", fmt.Errorf("task: list: %w", err))
	}
	return pagination.New(tasks, total, p), nil
}

// Update applies the fields present in the patch. A status change to
// in_progress stamps the start date; completed or cancelled stamps the
// end date. The stamps are server-controlled and never client-written.
func Update(db *gorm.DB, id uint, in schema.TaskUpdate) (*models.Task, error) {
	task, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Priority != nil {
		task.Priority = schema.PriorityOrdinal(*in.Priority)
	}
	if in.Status != nil {
		task.Status = *in.Status
		now := time.Now().UTC()
		switch *in.Status {
		case schema.StatusInProgress:
			task.StartDate = &now
		case schema.StatusCompleted, schema.StatusCancelled:
			task.EndDate = &now
		}
	}

	if err := db.Save(task).Error; err != nil {
		return nil, errs.Invalid("Could not update task", fmt.Errorf("task: update %d: %w", id, err))
	}
	return task, nil
}

// Delete removes the task with the given id.
func Delete(db *gorm.DB, id uint) error {
	task, err := Get(db, id)
	if err != nil {
		return err
	}
	if err := db.Delete(task).Error; err != nil {
		return errs.Internal("Could not delete task", fmt.Errorf("task: delete %d: %w", id, err))
	}
	return nil
}
