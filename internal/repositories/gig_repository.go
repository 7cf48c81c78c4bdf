package repositories

import (
	"errors"

	"worklink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrGigNotFound = errors.New("gig not found")

// GigSearchCriteria is the conjunctive filter for the public search endpoint.
// Zero-valued fields are left out of the query.
type GigSearchCriteria struct {
	Query    string
	Category models.SkillCategory
	City     string
	Filter   models.SearchFilter
	Limit    int
	Offset   int
}

type GigRepository interface {
	CountActive(city string) (int64, error)
	// FindActive returns a slice of publicly visible gigs. An empty city
	// means no city restriction.
	FindActive(city string, newestFirst bool, limit, offset int) ([]models.Gig, error)
	Search(criteria GigSearchCriteria) ([]models.Gig, error)

	FindByOwner(userID string) ([]models.Gig, error)
	FindOwnedByID(gigID, userID string) (*models.Gig, error)
	Create(gig *models.Gig) error
	// UpdateOwned applies the patch only when the gig belongs to userID; the
	// ownership check and the mutation are a single statement so there is no
	// check-then-act window.
	UpdateOwned(gigID, userID string, updates map[string]interface{}) error
	SoftDeleteOwned(gigID, userID string) error
}

type GigRepositoryImpl struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) GigRepository {
	return &GigRepositoryImpl{db: db}
}

// visible restricts a query to gigs shown on public listing endpoints.
func (r *GigRepositoryImpl) visible() *gorm.DB {
	return r.db.Model(&models.Gig{}).Where("is_active = ? AND is_deleted = ?", true, false)
}

// ownedBy builds the worker-profile subquery used for ownership filters.
func (r *GigRepositoryImpl) ownedBy(userID string) *gorm.DB {
	return r.db.Model(&models.WorkerProfile{}).Select("id").Where("user_id = ?", userID)
}

func (r *GigRepositoryImpl) CountActive(city string) (int64, error) {
	query := r.visible()
	if city != "" {
		query = query.Where("city = ?", city)
	}

	var total int64
	err := query.Count(&total).Error
	return total, err
}

func (r *GigRepositoryImpl) FindActive(city string, newestFirst bool, limit, offset int) ([]models.Gig, error) {
	query := r.visible()
	if city != "" {
		query = query.Where("city = ?", city)
	}

	order := "created_at ASC"
	if newestFirst {
		order = "created_at DESC"
	}

	var gigs []models.Gig
	err := query.Order(order).
		Limit(limit).Offset(offset).
		Preload("Worker.User").
		Find(&gigs).Error
	return gigs, err
}

func (r *GigRepositoryImpl) Search(criteria GigSearchCriteria) ([]models.Gig, error) {
	query := r.visible()

	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.City != "" {
		query = query.Where("city = ?", criteria.City)
	}
	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", search, search)
	}

	var gigs []models.Gig
	err := query.Order(searchOrderClause(criteria.Filter)).
		Limit(criteria.Limit).Offset(criteria.Offset).
		Preload("Worker.User").
		Find(&gigs).Error
	return gigs, err
}

func (r *GigRepositoryImpl) FindByOwner(userID string) ([]models.Gig, error) {
	var gigs []models.Gig
	err := r.db.Where("worker_id IN (?)", r.ownedBy(userID)).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&gigs).Error
	return gigs, err
}

func (r *GigRepositoryImpl) FindOwnedByID(gigID, userID string) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.Where("id = ?", gigID).
		Where("worker_id IN (?)", r.ownedBy(userID)).
		Where("is_deleted = ?", false).
		First(&gig).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepositoryImpl) Create(gig *models.Gig) error {
	return r.db.Create(gig).Error
}

func (r *GigRepositoryImpl) UpdateOwned(gigID, userID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		// Nothing to patch; still report whether the gig is reachable
		_, err := r.FindOwnedByID(gigID, userID)
		return err
	}

	result := r.db.Model(&models.Gig{}).
		Where("id = ?", gigID).
		Where("worker_id IN (?)", r.ownedBy(userID)).
		Where("is_deleted = ?", false).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Missing or not owned by the caller; indistinguishable on purpose
		return ErrGigNotFound
	}
	return nil
}

func (r *GigRepositoryImpl) SoftDeleteOwned(gigID, userID string) error {
	result := r.db.Model(&models.Gig{}).
		Where("id = ?", gigID).
		Where("worker_id IN (?)", r.ownedBy(userID)).
		Where("is_deleted = ?", false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}

// searchOrderClause maps the public filter value to a SQL order clause.
func searchOrderClause(filter models.SearchFilter) string {
	switch filter {
	case models.FilterOld:
		return "created_at ASC"
	case models.FilterPriceLowToHigh:
		return "price ASC"
	case models.FilterPriceHighToLow:
		return "price DESC"
	default:
		return "created_at DESC"
	}
}
