package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"codefeast/internal/config"
	"codefeast/internal/db"
	"codefeast/internal/model"
	"codefeast/internal/repository"
)

const (
	demoUserName     = "Demo User"
	demoUserEmail    = "demo@codefeast.dev"
	demoUserPassword = "demo1234"
)

// SeedTaskData describes one starter task for the demo user.
type SeedTaskData struct {
	Title       string
	Description string
	Category    model.TaskCategory
	Status      model.TaskStatus
	DueInDays   int
}

var starterTasks = []SeedTaskData{
	{Title: "Plan the week", Description: "Write down the top three goals", Category: model.TaskCategoryGeneral, Status: model.TaskStatusPending, DueInDays: 1},
	{Title: "Submit assignment", Description: "Chapter 4 exercises", Category: model.TaskCategorySchool, Status: model.TaskStatusPending, DueInDays: 3},
	{Title: "Prepare sprint review", Description: "Collect demo material", Category: model.TaskCategoryWork, Status: model.TaskStatusPending, DueInDays: 5},
	{Title: "Book dentist appointment", Category: model.TaskCategoryPersonal, Status: model.TaskStatusCompleted},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	ctx := context.Background()

	user, created, err := seedUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	if created {
		log.Printf("Created demo user %s", user.Email)
	} else {
		log.Printf("Demo user %s already present", user.Email)
	}

	seeded, err := seedTasks(ctx, taskRepo, user)
	if err != nil {
		log.Fatalf("Failed to seed tasks: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Starter tasks created: %d", seeded)
	log.Printf("  - Login with %s / %s", demoUserEmail, demoUserPassword)
}

// seedUser creates the demo user unless it already exists.
func seedUser(ctx context.Context, repo repository.UserRepository) (*model.User, bool, error) {
	existing, err := repo.FindByEmail(ctx, demoUserEmail)
	if err == nil {
		return existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoUserPassword), 10)
	if err != nil {
		return nil, false, err
	}

	user := &model.User{
		Name:     demoUserName,
		Email:    demoUserEmail,
		Password: string(hashed),
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// seedTasks inserts the starter tasks unless the demo user already has tasks.
func seedTasks(ctx context.Context, repo repository.TaskRepository, user *model.User) (int, error) {
	existing, err := repo.FindAllByUser(ctx, user.ID, "")
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Printf("Demo user already has %d tasks, skipping task seed", len(existing))
		return 0, nil
	}

	seeded := 0
	for _, data := range starterTasks {
		task := &model.Task{
			Title:       data.Title,
			Description: data.Description,
			Category:    data.Category,
			Status:      data.Status,
			UserID:      user.ID,
		}
		if data.DueInDays > 0 {
			due := time.Now().AddDate(0, 0, data.DueInDays)
			task.DueDate = &due
		}
		if err := repo.Create(ctx, task); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
