package models

// Gig is a service listing owned by exactly one WorkerProfile. Removal is a
// logical delete: IsDeleted is flipped and every public query filters on it.
type Gig struct {
	BaseModel
	WorkerID    string        `gorm:"type:uuid;not null;index" json:"workerId"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `gorm:"not null" json:"description"`
	Price       float64       `gorm:"not null" json:"price"`
	Category    SkillCategory `gorm:"type:varchar(30);not null" json:"category"`
	City        string        `gorm:"not null;index" json:"city"`
	Address     string        `json:"address"`
	Lat         *float64      `json:"lat,omitempty"`
	Lng         *float64      `json:"lng,omitempty"`
	IsActive    bool          `gorm:"not null;default:true" json:"isActive"`
	IsDeleted   bool          `gorm:"not null;default:false" json:"isDeleted"`

	// Relations
	Worker *WorkerProfile `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}
