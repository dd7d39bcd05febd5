package model

import "time"

// Employer is gorm model for employer accounts that own job postings
type Employer struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	PersonName  string    `gorm:"type:text;not null" json:"personName"`
	Email       string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	CompanyName string    `gorm:"type:text;not null;uniqueIndex" json:"companyName"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Website     string    `gorm:"type:text" json:"website,omitempty"`
	Logo        string    `gorm:"type:text" json:"logo,omitempty"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Jobs []Job `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"-"`
}
