package router_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"encoding/json"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"codefeast/internal/auth"
	"codefeast/internal/cache"
	"codefeast/internal/handler"
	"codefeast/internal/model"
	"codefeast/internal/router"
	"codefeast/internal/service"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTaskRepository is a mock implementation of repository.TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindAllByUser(ctx context.Context, userID uuid.UUID, category model.TaskCategory) ([]model.Task, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// testServer wires the full middleware/handler/service stack over mock
// repositories, the API-level equivalent of the persistence boundary.
type testServer struct {
	e          *echo.Echo
	userRepo   *MockUserRepository
	taskRepo   *MockTaskRepository
	jwtService *auth.JWTService
	userID     uuid.UUID
}

func newTestServer() *testServer {
	e := echo.New()
	jwtService := auth.NewJWTService("test-secret")
	userRepo := new(MockUserRepository)
	taskRepo := new(MockTaskRepository)

	userService := service.NewUserService(userRepo, jwtService, (*cache.Client)(nil))
	taskService := service.NewTaskService(taskRepo)

	router.Register(e, handler.NewAuthHandler(userService), handler.NewTaskHandler(taskService), jwtService, userService)

	return &testServer{
		e:          e,
		userRepo:   userRepo,
		taskRepo:   taskRepo,
		jwtService: jwtService,
		userID:     uuid.New(),
	}
}

// loginCookie issues a valid session cookie and teaches the user repository
// about the authenticated user.
func (ts *testServer) loginCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := ts.jwtService.GenerateToken(ts.userID, "aditya@gmail.com")
	assert.NoError(t, err)

	ts.userRepo.On("FindByID", mock.Anything, ts.userID).
		Return(&model.User{ID: ts.userID, Name: "aditya", Email: "aditya@gmail.com"}, nil)

	return &http.Cookie{Name: "token", Value: "Bearer " + token}
}

func (ts *testServer) do(method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRootRoute(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CodeFeast Server!", rec.Body.String())
}

func TestRouteDoesNotExist(t *testing.T) {
	ts := newTestServer()

	t.Run("unknown path", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/api/v1/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Route does not exist", body["message"])
		assert.Equal(t, false, body["status"])
	})

	t.Run("method mismatch on known path", func(t *testing.T) {
		rec := ts.do(http.MethodPut, "/api/v1/auth/signup", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Route does not exist", body["message"])
	})
}

func TestSignup(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		ts := newTestServer()

		rec := ts.do(http.MethodPost, "/api/v1/auth/signup", `{"name":"aditya"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Please provide required fields: name, email, password", body["message"])
		assert.Equal(t, false, body["status"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		ts := newTestServer()
		ts.userRepo.On("FindByEmail", mock.Anything, "aditya@gmail.com").
			Return(&model.User{Email: "aditya@gmail.com"}, nil)

		rec := ts.do(http.MethodPost, "/api/v1/auth/signup", `{"name":"aditya","email":"aditya@gmail.com","password":"other"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "User already exists with this email", body["message"])
	})

	t.Run("invalid email format", func(t *testing.T) {
		ts := newTestServer()
		ts.userRepo.On("FindByEmail", mock.Anything, "not-an-email").
			Return(nil, gorm.ErrRecordNotFound)

		rec := ts.do(http.MethodPost, "/api/v1/auth/signup", `{"name":"aditya","email":"not-an-email","password":"aditya123"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Please provide valid email", body["message"])
	})

	t.Run("success", func(t *testing.T) {
		ts := newTestServer()
		ts.userRepo.On("FindByEmail", mock.Anything, "aditya@gmail.com").
			Return(nil, gorm.ErrRecordNotFound)
		ts.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		rec := ts.do(http.MethodPost, "/api/v1/auth/signup", `{"name":"aditya","email":"aditya@gmail.com","password":"aditya123"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Signup Successful", body["message"])
		assert.Equal(t, true, body["status"])
	})
}

func TestLogin(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("aditya123"), 10)

	t.Run("missing fields", func(t *testing.T) {
		ts := newTestServer()

		rec := ts.do(http.MethodPost, "/api/v1/auth/login", `{"email":"aditya@gmail.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Please provide required fields: email, password", body["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		ts := newTestServer()
		ts.userRepo.On("FindByEmail", mock.Anything, "missing@gmail.com").
			Return(nil, gorm.ErrRecordNotFound)

		rec := ts.do(http.MethodPost, "/api/v1/auth/login", `{"email":"missing@gmail.com","password":"aditya123"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("wrong password", func(t *testing.T) {
		ts := newTestServer()
		ts.userRepo.On("FindByEmail", mock.Anything, "aditya@gmail.com").
			Return(&model.User{ID: ts.userID, Email: "aditya@gmail.com", Password: string(hashed)}, nil)

		rec := ts.do(http.MethodPost, "/api/v1/auth/login", `{"email":"aditya@gmail.com","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("success sets bearer cookie", func(t *testing.T) {
		ts := newTestServer()
		ts.userRepo.On("FindByEmail", mock.Anything, "aditya@gmail.com").
			Return(&model.User{ID: ts.userID, Name: "aditya", Email: "aditya@gmail.com", Password: string(hashed)}, nil)

		rec := ts.do(http.MethodPost, "/api/v1/auth/login", `{"email":"aditya@gmail.com","password":"aditya123"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Login Successful", body["message"])
		assert.Equal(t, true, body["status"])
		result := body["result"].(map[string]interface{})
		assert.Equal(t, "aditya", result["name"])
		assert.Equal(t, "aditya@gmail.com", result["email"])
		assert.NotContains(t, result, "password")

		var tokenCookie *http.Cookie
		for _, c := range rec.Result().Cookies() {
			if c.Name == "token" {
				tokenCookie = c
			}
		}
		assert.NotNil(t, tokenCookie)
		assert.True(t, tokenCookie.HttpOnly)
		assert.True(t, strings.HasPrefix(tokenCookie.Value, "Bearer "))

		claims, err := ts.jwtService.ValidateToken(strings.TrimPrefix(tokenCookie.Value, "Bearer "))
		assert.NoError(t, err)
		assert.Equal(t, ts.userID.String(), claims.UserID)
	})
}

func TestAuthenticationMiddleware(t *testing.T) {
	t.Run("no cookie", func(t *testing.T) {
		ts := newTestServer()

		rec := ts.do(http.MethodGet, "/api/v1/auth/fetch-user-details", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "No token provided", body["message"])
	})

	t.Run("cookie without bearer prefix", func(t *testing.T) {
		ts := newTestServer()
		token, _ := ts.jwtService.GenerateToken(ts.userID, "aditya@gmail.com")

		rec := ts.do(http.MethodGet, "/api/v1/auth/fetch-user-details", "",
			&http.Cookie{Name: "token", Value: token})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "No token provided", body["message"])
	})

	t.Run("invalid token", func(t *testing.T) {
		ts := newTestServer()

		rec := ts.do(http.MethodGet, "/api/v1/auth/fetch-user-details", "",
			&http.Cookie{Name: "token", Value: "Bearer garbage"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Not authorized to access this route", body["message"])
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		ts := newTestServer()
		token, _ := auth.NewJWTService("other-secret").GenerateToken(ts.userID, "aditya@gmail.com")

		rec := ts.do(http.MethodGet, "/api/v1/auth/fetch-user-details", "",
			&http.Cookie{Name: "token", Value: "Bearer " + token})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Not authorized to access this route", body["message"])
	})

	t.Run("valid token fetches profile without password", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		rec := ts.do(http.MethodGet, "/api/v1/auth/fetch-user-details", "", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "User details fetched successfully!", body["message"])
		result := body["result"].(map[string]interface{})
		assert.Equal(t, "aditya@gmail.com", result["email"])
		assert.NotContains(t, result, "password")
	})

	t.Run("stale token after account deletion", func(t *testing.T) {
		ts := newTestServer()
		token, _ := ts.jwtService.GenerateToken(ts.userID, "aditya@gmail.com")
		ts.userRepo.On("FindByID", mock.Anything, ts.userID).Return(nil, gorm.ErrRecordNotFound)

		rec := ts.do(http.MethodGet, "/api/v1/auth/fetch-user-details", "",
			&http.Cookie{Name: "token", Value: "Bearer " + token})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "User not found", body["message"])
	})
}

func TestUserExistsMiddleware(t *testing.T) {
	ts := newTestServer()
	token, _ := ts.jwtService.GenerateToken(ts.userID, "aditya@gmail.com")
	ts.userRepo.On("FindByID", mock.Anything, ts.userID).Return(nil, gorm.ErrRecordNotFound)

	rec := ts.do(http.MethodGet, "/api/v1/task/fetch-all-tasks", "",
		&http.Cookie{Name: "token", Value: "Bearer " + token})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestCreateTask(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		rec := ts.do(http.MethodPost, "/api/v1/task/create-task", `{}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Please provide required fields", body["message"])
	})

	t.Run("invalid category", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		rec := ts.do(http.MethodPost, "/api/v1/task/create-task", `{"title":"task1","category":"chores"}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Please provide required fields", body["message"])
	})

	t.Run("success scopes the task to the authenticated user", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		var created *model.Task
		ts.taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*model.Task)
			}).Return(nil)

		rec := ts.do(http.MethodPost, "/api/v1/task/create-task",
			`{"title":"task1","description":"task1 description","category":"general"}`, cookie)
		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Task Created!", body["message"])
		assert.Equal(t, true, body["status"])
		assert.Equal(t, ts.userID, created.UserID)
	})
}

func TestFetchTask(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		taskID := uuid.New()
		ts.taskRepo.On("FindByID", mock.Anything, taskID).Return(&model.Task{
			ID:          taskID,
			Title:       "task1",
			Description: "task1 description",
			Status:      model.TaskStatusPending,
			Category:    model.TaskCategoryGeneral,
			UserID:      ts.userID,
		}, nil)

		rec := ts.do(http.MethodGet, "/api/v1/task/fetch-task/"+taskID.String(), "", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Task Fetched!", body["message"])
		result := body["result"].(map[string]interface{})
		assert.Equal(t, "task1", result["title"])
		assert.Equal(t, "task1 description", result["description"])
		assert.Equal(t, "pending", result["status"])
		assert.Equal(t, "general", result["category"])
	})

	t.Run("malformed id", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		rec := ts.do(http.MethodGet, "/api/v1/task/fetch-task/12345", "", cookie)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Unable to fetch task", body["message"])
	})

	t.Run("unknown id", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		taskID := uuid.New()
		ts.taskRepo.On("FindByID", mock.Anything, taskID).Return(nil, gorm.ErrRecordNotFound)

		rec := ts.do(http.MethodGet, "/api/v1/task/fetch-task/"+taskID.String(), "", cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Task not found", body["message"])
	})
}

func TestFetchAllTasks(t *testing.T) {
	t.Run("no tasks", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)
		ts.taskRepo.On("FindAllByUser", mock.Anything, ts.userID, model.TaskCategory("")).
			Return([]model.Task{}, nil)

		rec := ts.do(http.MethodGet, "/api/v1/task/fetch-all-tasks", "", cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "No tasks found", body["message"])
	})

	t.Run("tasks returned", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)
		ts.taskRepo.On("FindAllByUser", mock.Anything, ts.userID, model.TaskCategory("")).
			Return([]model.Task{{Title: "task2"}, {Title: "task1"}}, nil)

		rec := ts.do(http.MethodGet, "/api/v1/task/fetch-all-tasks", "", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Tasks Fetched!", body["message"])
		assert.Len(t, body["result"], 2)
	})

	t.Run("category filter", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)
		ts.taskRepo.On("FindAllByUser", mock.Anything, ts.userID, model.TaskCategoryWork).
			Return([]model.Task{{Title: "task1", Category: model.TaskCategoryWork}}, nil)

		rec := ts.do(http.MethodGet, "/api/v1/task/fetch-all-tasks?category=work", "", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown category filter is ignored", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)
		ts.taskRepo.On("FindAllByUser", mock.Anything, ts.userID, model.TaskCategory("")).
			Return([]model.Task{{Title: "task1"}}, nil)

		rec := ts.do(http.MethodGet, "/api/v1/task/fetch-all-tasks?category=chores", "", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		ts.taskRepo.AssertExpectations(t)
	})
}

func TestUpdateTask(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		rec := ts.do(http.MethodPatch, "/api/v1/task/update-task/"+uuid.NewString(), `{"description":"x"}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Title is required", body["message"])
	})

	t.Run("malformed id", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		rec := ts.do(http.MethodPatch, "/api/v1/task/update-task/12345", `{"title":"task1"}`, cookie)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Unable to update task", body["message"])
	})

	t.Run("missing task answers with null result", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		taskID := uuid.New()
		ts.taskRepo.On("FindByID", mock.Anything, taskID).Return(nil, gorm.ErrRecordNotFound)

		rec := ts.do(http.MethodPatch, "/api/v1/task/update-task/"+taskID.String(), `{"title":"task1"}`, cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Task Updated!", body["message"])
		assert.Contains(t, body, "result")
		assert.Nil(t, body["result"])
	})

	t.Run("success", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		taskID := uuid.New()
		ts.taskRepo.On("FindByID", mock.Anything, taskID).
			Return(&model.Task{ID: taskID, Title: "old", UserID: ts.userID}, nil)
		ts.taskRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

		rec := ts.do(http.MethodPatch, "/api/v1/task/update-task/"+taskID.String(), `{"title":"new title"}`, cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		result := body["result"].(map[string]interface{})
		assert.Equal(t, "new title", result["title"])
	})
}

func TestToggleCompleteTask(t *testing.T) {
	t.Run("missing event", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		rec := ts.do(http.MethodPatch, "/api/v1/task/toggle-complete-task/"+uuid.NewString(), `{}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Please provide required fields : event", body["message"])
	})

	t.Run("same state is rejected", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		taskID := uuid.New()
		ts.taskRepo.On("FindByID", mock.Anything, taskID).
			Return(&model.Task{ID: taskID, Status: model.TaskStatusCompleted}, nil)

		rec := ts.do(http.MethodPatch, "/api/v1/task/toggle-complete-task/"+taskID.String(), `{"event":"completed"}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Task already completed", body["message"])
	})

	t.Run("success", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		taskID := uuid.New()
		ts.taskRepo.On("FindByID", mock.Anything, taskID).
			Return(&model.Task{ID: taskID, Status: model.TaskStatusPending}, nil)
		ts.taskRepo.On("UpdateStatus", mock.Anything, taskID, model.TaskStatusCompleted).Return(nil)

		rec := ts.do(http.MethodPatch, "/api/v1/task/toggle-complete-task/"+taskID.String(), `{"event":"completed"}`, cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Task in completed state!", body["message"])
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		rec := ts.do(http.MethodDelete, "/api/v1/task/delete-task/12345", "", cookie)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Unable to delete task", body["message"])
	})

	t.Run("success even when the task is already gone", func(t *testing.T) {
		ts := newTestServer()
		cookie := ts.loginCookie(t)

		taskID := uuid.New()
		ts.taskRepo.On("Delete", mock.Anything, taskID).Return(nil)

		rec := ts.do(http.MethodDelete, "/api/v1/task/delete-task/"+taskID.String(), "", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Task Deleted!", body["message"])
		assert.Equal(t, true, body["status"])
	})
}
