package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents the completion state of a task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// IsValidTaskStatus reports whether s is one of the two allowed states.
func IsValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusPending, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskCategory classifies a task.
type TaskCategory string

const (
	TaskCategoryGeneral  TaskCategory = "general"
	TaskCategoryPersonal TaskCategory = "personal"
	TaskCategoryWork     TaskCategory = "work"
	TaskCategorySchool   TaskCategory = "school"
)

// IsValidTaskCategory reports whether c is one of the fixed categories.
func IsValidTaskCategory(c string) bool {
	switch TaskCategory(c) {
	case TaskCategoryGeneral, TaskCategoryPersonal, TaskCategoryWork, TaskCategorySchool:
		return true
	}
	return false
}

// Task represents a single task owned by a user.
type Task struct {
	ID          uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Description string       `json:"description" gorm:"type:text"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	Category    TaskCategory `json:"category" gorm:"type:varchar(20);not null;default:'general';index"`
	UserID      uuid.UUID    `json:"userId" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// BeforeCreate sets UUID and defaults before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
	if t.Category == "" {
		t.Category = TaskCategoryGeneral
	}
	return nil
}
