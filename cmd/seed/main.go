package main

import (
	"errors"
	"fmt"
	"time"

	"worklink_backend/internal/auth"
	"worklink_backend/internal/config"
	"worklink_backend/internal/logger"
	"worklink_backend/internal/models"
	"worklink_backend/internal/repositories"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	seedEmail = "worker@example.com"
	gigCount  = 17
)

// Seeds a default worker with a batch of gigs so the listing endpoints have
// data to serve. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.WorkerProfile{}, &models.Gig{}); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	worker, err := ensureWorker(db)
	if err != nil {
		logger.Fatal("Failed to seed worker", "error", err)
	}

	created, err := seedGigs(db, worker)
	if err != nil {
		logger.Fatal("Failed to seed gigs", "error", err)
	}
	logger.Info("Seeding complete", "gigs_created", created, "worker_id", worker.ID)

	if cfg.Auth.Mode == "token" {
		token, err := auth.GenerateToken(cfg.Auth.Secret, time.Duration(cfg.Auth.TTL)*time.Minute, auth.Principal{
			UserID: worker.UserID,
			Email:  seedEmail,
			Role:   models.UserRoleWorker,
		})
		if err != nil {
			logger.Fatal("Failed to issue dev token", "error", err)
		}
		fmt.Println("Dev token:", token)
	}
}

// ensureWorker creates the default user and promotes it through the same
// transaction the API uses, so the seeded rows match production ones.
func ensureWorker(db *gorm.DB) (*models.WorkerProfile, error) {
	users := repositories.NewUserRepository(db)
	profiles := repositories.NewWorkerProfileRepository(db)

	user, err := users.FindByEmail(seedEmail)
	if err == nil {
		return profiles.FindByUserID(user.ID)
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = &models.User{
		Name:     "Default Worker",
		Email:    seedEmail,
		Password: string(hash),
		Role:     models.UserRoleClient,
	}
	if err := users.Create(user); err != nil {
		return nil, err
	}

	profile := &models.WorkerProfile{
		UserID:          user.ID,
		Phone:           "03001234567",
		SkillCategory:   models.SkillOther,
		Country:         "Pakistan",
		City:            "Lahore",
		ExperienceYears: 1,
		Cnic:            "12345-1234567-1",
	}
	if err := profiles.CreateWithPromotion(profile); err != nil {
		return nil, err
	}
	logger.Info("Created default worker", "user_id", user.ID)
	return profile, nil
}

func seedGigs(db *gorm.DB, worker *models.WorkerProfile) (int64, error) {
	var existing int64
	if err := db.Model(&models.Gig{}).Where("worker_id = ?", worker.ID).Count(&existing).Error; err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	gigs := repositories.NewGigRepository(db)
	var created int64
	for i := 1; i <= gigCount; i++ {
		gig := &models.Gig{
			Title:       fmt.Sprintf("Gig %d", i),
			Description: fmt.Sprintf("This is the description for Gig %d.", i),
			Price:       1000 + float64(i-1)*100,
			Category:    models.SkillOther,
			City:        worker.City,
			Address:     fmt.Sprintf("Address %d", i),
			WorkerID:    worker.ID,
			IsActive:    true,
		}
		if err := gigs.Create(gig); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
