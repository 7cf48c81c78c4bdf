package repositories

import (
	"errors"
	"strings"

	"worklink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("worker profile not found")
	ErrDuplicateCnic   = errors.New("cnic already taken")
	ErrDuplicateKey    = errors.New("duplicate key")
)

type WorkerProfileRepository interface {
	FindByID(id string) (*models.WorkerProfile, error)
	FindByUserID(userID string) (*models.WorkerProfile, error)
	// CreateWithPromotion atomically promotes the user from CLIENT to WORKER
	// and inserts the profile. Either both happen or neither does.
	CreateWithPromotion(profile *models.WorkerProfile) error
	Update(userID string, updates map[string]interface{}) (*models.WorkerProfile, error)
}

type WorkerProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewWorkerProfileRepository(db *gorm.DB) WorkerProfileRepository {
	return &WorkerProfileRepositoryImpl{db: db}
}

func (r *WorkerProfileRepositoryImpl) FindByID(id string) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := r.db.Preload("Gigs", "is_deleted = ?", false).Preload("User").
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *WorkerProfileRepositoryImpl) FindByUserID(userID string) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *WorkerProfileRepositoryImpl) CreateWithPromotion(profile *models.WorkerProfile) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ? AND role = ?", profile.UserID, models.UserRoleClient).
			Update("role", models.UserRoleWorker)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// User missing, or already a WORKER
			return ErrUserNotFound
		}

		return tx.Create(profile).Error
	})
	if err != nil {
		return translateDuplicate(err)
	}

	return r.db.Preload("User").First(profile, "id = ?", profile.ID).Error
}

func (r *WorkerProfileRepositoryImpl) Update(userID string, updates map[string]interface{}) (*models.WorkerProfile, error) {
	if len(updates) > 0 {
		result := r.db.Model(&models.WorkerProfile{}).
			Where("user_id = ?", userID).
			Updates(updates)
		if result.Error != nil {
			return nil, translateDuplicate(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrProfileNotFound
		}
	}

	var profile models.WorkerProfile
	err := r.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func translateDuplicate(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return err
	}
	if strings.Contains(constraint, "cnic") {
		return ErrDuplicateCnic
	}
	return ErrDuplicateKey
}
