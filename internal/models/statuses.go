package models

type UserRole string
type WorkerStatus string
type SkillCategory string
type SearchFilter string

const (
	UserRoleClient UserRole = "CLIENT"
	UserRoleWorker UserRole = "WORKER"

	WorkerStatusPending   WorkerStatus = "PENDING"
	WorkerStatusActive    WorkerStatus = "ACTIVE"
	WorkerStatusSuspended WorkerStatus = "SUSPENDED"

	SkillPlumbing   SkillCategory = "PLUMBING"
	SkillElectrical SkillCategory = "ELECTRICAL"
	SkillCarpentry  SkillCategory = "CARPENTRY"
	SkillPainting   SkillCategory = "PAINTING"
	SkillCleaning   SkillCategory = "CLEANING"
	SkillCooking    SkillCategory = "COOKING"
	SkillDriving    SkillCategory = "DRIVING"
	SkillGardening  SkillCategory = "GARDENING"
	SkillTailoring  SkillCategory = "TAILORING"
	SkillOther      SkillCategory = "OTHER"

	FilterRecent          SearchFilter = "recent"
	FilterOld             SearchFilter = "old"
	FilterPriceLowToHigh  SearchFilter = "priceLowToHigh"
	FilterPriceHighToLow  SearchFilter = "priceHighToLow"
)

// AllSkillCategories is the allow-set used by profile and search validation.
var AllSkillCategories = []SkillCategory{
	SkillPlumbing, SkillElectrical, SkillCarpentry, SkillPainting,
	SkillCleaning, SkillCooking, SkillDriving, SkillGardening,
	SkillTailoring, SkillOther,
}

// AllSearchFilters is the allow-set for the gig search filter parameter.
var AllSearchFilters = []SearchFilter{
	FilterRecent, FilterOld, FilterPriceLowToHigh, FilterPriceHighToLow,
}

// SkillCategoryNames renders the allow-set for error messages.
func SkillCategoryNames() []string {
	names := make([]string, 0, len(AllSkillCategories))
	for _, c := range AllSkillCategories {
		names = append(names, string(c))
	}
	return names
}

func (c SkillCategory) Valid() bool {
	for _, allowed := range AllSkillCategories {
		if c == allowed {
			return true
		}
	}
	return false
}

func (f SearchFilter) Valid() bool {
	for _, allowed := range AllSearchFilters {
		if f == allowed {
			return true
		}
	}
	return false
}
