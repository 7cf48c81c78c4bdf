package models

type WorkerProfile struct {
	BaseModel
	UserID          string        `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Phone           string        `gorm:"not null" json:"phone"`
	SkillCategory   SkillCategory `gorm:"type:varchar(30);not null" json:"skillCategory"`
	Country         string        `gorm:"not null" json:"country"`
	City            string        `gorm:"not null" json:"city"`
	ExperienceYears int           `json:"experienceYears"`
	Cnic            string        `gorm:"uniqueIndex:idx_worker_profiles_cnic;not null" json:"cnic"`
	Status          WorkerStatus  `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Gigs []Gig `gorm:"foreignKey:WorkerID" json:"gigs,omitempty"`
}
