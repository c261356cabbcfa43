package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"codefeast/internal/auth"
	"codefeast/internal/cache"
	"codefeast/internal/errors"
	"codefeast/internal/model"
	"codefeast/internal/repository"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute
)

// UserService handles signup, login and profile lookups.
type UserService interface {
	SignUp(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	FetchByID(ctx context.Context, userID string) (*model.User, error)
}

type userService struct {
	repo       repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewUserService builds a UserService with repository, token signer and cache.
func NewUserService(repo repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) UserService {
	return &userService{repo: repo, jwtService: jwtService, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// SignUp creates a new user with a hashed password. The email pattern check
// runs here as an explicit pre-persist step; a failure surfaces as a 500,
// matching the schema-validation behavior of the persistence layer.
func (s *userService) SignUp(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return errors.NewBadRequest("User already exists with this email")
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check user existence: %w", err)
	}

	user := &model.User{
		Name:  name,
		Email: email,
	}
	if err := user.ValidateEmail(); err != nil {
		return errors.NewInternal(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := s.repo.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return nil
}

// Login verifies credentials and issues a signed session token. An unknown
// email and a wrong password both answer "Invalid credentials" but with
// distinct status codes (404 vs 401).
func (s *userService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, errors.NewNotFound("Invalid credentials")
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.NewUnauthorized("Invalid credentials")
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// FetchByID loads a user's profile, consulting the cache first. A missing
// user yields gorm.ErrRecordNotFound so callers can map it to their own
// not-found message.
func (s *userService) FetchByID(ctx context.Context, userID string) (*model.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}
