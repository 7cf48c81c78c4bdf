package models

type User struct {
	BaseModel
	Name     string   `gorm:"not null" json:"name"`
	Email    string   `gorm:"uniqueIndex;not null" json:"email"`
	Password string   `gorm:"not null" json:"-"`
	Role     UserRole `gorm:"type:varchar(20);not null;default:'CLIENT'" json:"role"`

	// Relations
	WorkerProfile *WorkerProfile `gorm:"foreignKey:UserID" json:"workerProfile,omitempty"`
}
