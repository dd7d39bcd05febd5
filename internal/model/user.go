// Package model contain gorm model for recording data to database
package model

import "time"

// Role strings embedded in access tokens
var (
	// RoleUser is the default role for job seeker accounts
	RoleUser = "user"
	// RoleEmployer is the role for employer accounts
	RoleEmployer = "employer"
)

// User is gorm model for job seeker accounts
type User struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	Username    string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Email       string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"type:text" json:"-"`
	PhoneNumber *string   `gorm:"type:text;uniqueIndex" json:"phoneNumber,omitempty"`
	GoogleID    string    `gorm:"type:text" json:"-"`
	Role        string    `gorm:"type:text;not null;default:'user'" json:"role"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	SavedJobs []SavedJob `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
