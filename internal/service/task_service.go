package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codefeast/internal/errors"
	"codefeast/internal/model"
	"codefeast/internal/repository"
)

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Category    string
}

// UpdateTaskInput carries the fields accepted when updating a task.
// Nil pointers mean "leave unchanged".
type UpdateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Category    *string
}

// TaskService handles task operations for authenticated users.
type TaskService interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateTaskInput) error
	Fetch(ctx context.Context, taskID string) (*model.Task, error)
	FetchAll(ctx context.Context, userID uuid.UUID, category string) ([]model.Task, error)
	Update(ctx context.Context, taskID string, in UpdateTaskInput) (*model.Task, error)
	ToggleStatus(ctx context.Context, taskID, event string) error
	Delete(ctx context.Context, taskID string) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService builds a TaskService over the task repository.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

// Create persists a new task for the user. Title is mandatory and category,
// when supplied, must be one of the fixed set; defaults are applied at
// persistence.
func (s *taskService) Create(ctx context.Context, userID uuid.UUID, in CreateTaskInput) error {
	title := strings.TrimSpace(in.Title)
	categoryOK := in.Category == "" || model.IsValidTaskCategory(in.Category)

	if title == "" || !categoryOK {
		return errors.NewBadRequest("Please provide required fields")
	}

	task := &model.Task{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		DueDate:     in.DueDate,
		Category:    model.TaskCategory(in.Category),
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return err
	}
	return nil
}

// Fetch returns a task by id. A malformed id is indistinguishable from a
// storage failure here and answers 500 "Unable to fetch task".
func (s *taskService) Fetch(ctx context.Context, taskID string) (*model.Task, error) {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return nil, errors.NewInternal("Unable to fetch task")
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Task not found")
		}
		return nil, errors.NewInternal("Unable to fetch task")
	}
	return task, nil
}

// FetchAll lists the user's tasks, newest first. An unknown category value in
// the filter is ignored rather than rejected; an empty result set answers 404.
func (s *taskService) FetchAll(ctx context.Context, userID uuid.UUID, category string) ([]model.Task, error) {
	filter := model.TaskCategory("")
	if model.IsValidTaskCategory(category) {
		filter = model.TaskCategory(category)
	}

	tasks, err := s.repo.FindAllByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, errors.NewNotFound("No tasks found")
	}
	return tasks, nil
}

// Update rewrites the supplied fields of a task. Title cannot be blanked.
// Updating a task that no longer exists is not an error; the nil result is
// echoed back to the caller. Category is deliberately not validated here,
// matching the persistence layer's behavior on partial updates.
func (s *taskService) Update(ctx context.Context, taskID string, in UpdateTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, errors.NewBadRequest("Title is required")
	}

	id, err := uuid.Parse(taskID)
	if err != nil {
		return nil, errors.NewInternal("Unable to update task")
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.NewInternal("Unable to update task")
	}

	task.Title = title
	if in.Description != nil {
		task.Description = strings.TrimSpace(*in.Description)
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.Category != nil {
		task.Category = model.TaskCategory(*in.Category)
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, errors.NewInternal("Unable to update task")
	}
	return task, nil
}

// ToggleStatus transitions a task between pending and completed. A request
// for the state the task is already in is a conflict, not a no-op.
func (s *taskService) ToggleStatus(ctx context.Context, taskID, event string) error {
	if !model.IsValidTaskStatus(event) {
		return errors.NewBadRequest("Please provide required fields : event")
	}

	id, err := uuid.Parse(taskID)
	if err != nil {
		return errors.NewInternal("Unable to toggle task status")
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewNotFound("Task not found")
		}
		return errors.NewInternal("Unable to toggle task status")
	}

	if task.Status == model.TaskStatus(event) {
		return errors.NewBadRequest("Task already " + event)
	}

	if err := s.repo.UpdateStatus(ctx, id, model.TaskStatus(event)); err != nil {
		return errors.NewInternal("Unable to toggle task status")
	}
	return nil
}

// Delete removes a task by id. Deleting a task that does not exist still
// succeeds.
func (s *taskService) Delete(ctx context.Context, taskID string) error {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return errors.NewInternal("Unable to delete task")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewInternal("Unable to delete task")
	}
	return nil
}
