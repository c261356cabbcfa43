package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "codefeast/internal/errors"
	"codefeast/internal/middleware"
	"codefeast/internal/service"
)

// TaskHandler handles task endpoints, all scoped behind authentication.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Category    string     `json:"category"`
}

// UpdateTaskRequest represents a task update request. Absent fields leave
// the stored values untouched.
type UpdateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Category    *string    `json:"category"`
}

// ToggleTaskRequest represents a status toggle request.
type ToggleTaskRequest struct {
	Event string `json:"event"`
}

// CreateTask godoc
// @Summary Create a task
// @Tags task
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorBody
// @Failure 401 {object} errors.ErrorBody
// @Router /task/create-task [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized to access this route")
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	err := h.taskService.Create(c.Request().Context(), user.ID, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Task Created!",
		"status":  true,
	})
}

// FetchTask godoc
// @Summary Fetch a task by id
// @Tags task
// @Produce json
// @Param taskId path string true "Task id"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorBody
// @Failure 404 {object} errors.ErrorBody
// @Failure 500 {object} errors.ErrorBody
// @Router /task/fetch-task/{taskId} [get]
func (h *TaskHandler) FetchTask(c echo.Context) error {
	task, err := h.taskService.Fetch(c.Request().Context(), c.Param("taskId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Task Fetched!",
		"status":  true,
		"result":  task,
	})
}

// FetchAllTasks godoc
// @Summary Fetch the user's tasks, optionally filtered by category
// @Tags task
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorBody
// @Failure 404 {object} errors.ErrorBody
// @Router /task/fetch-all-tasks [get]
func (h *TaskHandler) FetchAllTasks(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized to access this route")
	}

	tasks, err := h.taskService.FetchAll(c.Request().Context(), user.ID, c.QueryParam("category"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Tasks Fetched!",
		"status":  true,
		"result":  tasks,
	})
}

// UpdateTask godoc
// @Summary Update a task
// @Tags task
// @Accept json
// @Produce json
// @Param taskId path string true "Task id"
// @Param request body UpdateTaskRequest true "Updated fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorBody
// @Failure 401 {object} errors.ErrorBody
// @Failure 500 {object} errors.ErrorBody
// @Router /task/update-task/{taskId} [patch]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	task, err := h.taskService.Update(c.Request().Context(), c.Param("taskId"), service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	// result is null when the task no longer exists
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Task Updated!",
		"status":  true,
		"result":  task,
	})
}

// ToggleCompleteTask godoc
// @Summary Toggle a task between pending and completed
// @Tags task
// @Accept json
// @Produce json
// @Param taskId path string true "Task id"
// @Param request body ToggleTaskRequest true "Target state"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorBody
// @Failure 401 {object} errors.ErrorBody
// @Failure 404 {object} errors.ErrorBody
// @Failure 500 {object} errors.ErrorBody
// @Router /task/toggle-complete-task/{taskId} [patch]
func (h *TaskHandler) ToggleCompleteTask(c echo.Context) error {
	var req ToggleTaskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.taskService.ToggleStatus(c.Request().Context(), c.Param("taskId"), req.Event); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Task in " + req.Event + " state!",
		"status":  true,
	})
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags task
// @Produce json
// @Param taskId path string true "Task id"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorBody
// @Failure 500 {object} errors.ErrorBody
// @Router /task/delete-task/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	if err := h.taskService.Delete(c.Request().Context(), c.Param("taskId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Task Deleted!",
		"status":  true,
	})
}
