package model

import (
	"time"

	"github.com/lib/pq"
)

// Employment type values accepted on job postings
var (
	EmploymentFullTime   = "FULL_TIME"
	EmploymentPartTime   = "PART_TIME"
	EmploymentContract   = "CONTRACT"
	EmploymentInternship = "INTERNSHIP"

	// EmploymentTypes lists every accepted employment type
	EmploymentTypes = []string{EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship}
)

// Job status values
var (
	JobStatusDraft     = "DRAFT"
	JobStatusPublished = "PUBLISHED"
	JobStatusClosed    = "CLOSED"
)

// EditableJobInfo is the part of a job posting that employers supply themselves
type EditableJobInfo struct {
	Title              string         `gorm:"type:text" json:"title"`
	Description        string         `gorm:"type:text" json:"description"`
	Location           string         `gorm:"type:text" json:"location"`
	EmploymentType     string         `gorm:"type:text" json:"employmentType"`
	ExperienceRequired string         `gorm:"type:text" json:"experienceRequired,omitempty"`
	SkillsRequired     pq.StringArray `gorm:"type:text[]" json:"skillsRequired,omitempty"`
	SalaryMin          *int           `json:"salaryMin,omitempty"`
	SalaryMax          *int           `json:"salaryMax,omitempty"`
	IsRemote           bool           `gorm:"default:false" json:"isRemote"`
	VisibilityDate     *time.Time     `gorm:"type:timestamp" json:"visibilityDate,omitempty"`
}

// Job is gorm model for store job posting data in DB
type Job struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	EmployerID uint      `gorm:"not null;index;<-:create" json:"employerId"`
	Employer   *Employer `gorm:"foreignKey:EmployerID;references:ID" json:"employer,omitempty"`
	EditableJobInfo
	Status     string    `gorm:"type:text;not null;default:'PUBLISHED'" json:"status"`
	PostedDate time.Time `gorm:"type:timestamp" json:"postedDate"`
	CreatedAt  time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	SavedBy []SavedJob `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
