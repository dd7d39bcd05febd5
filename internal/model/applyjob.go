package model

import "time"

var (
	// ApplicationStatusSubmitted indicates that the application has been received
	ApplicationStatusSubmitted = "Submitted"
	// ApplicationStatusReviewed indicates that the application has been reviewed
	ApplicationStatusReviewed = "Reviewed"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "Rejected"
	// ApplicationStatusOffered indicates that an offer was made to the applicant
	ApplicationStatusOffered = "Offered"

	// ApplicationStatuses lists every accepted application status
	ApplicationStatuses = []string{ApplicationStatusSubmitted, ApplicationStatusReviewed, ApplicationStatusRejected, ApplicationStatusOffered}
)

// ApplyJob represents a job application record. It intentionally carries no
// foreign key to Job or User: applications may come from guests and reference
// the job only by title.
type ApplyJob struct {
	ID                uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	FullName          string    `gorm:"type:text;not null" json:"fullName"`
	Email             string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PhoneNumber       string    `gorm:"type:text;not null;uniqueIndex" json:"phoneNumber"`
	Resume            string    `gorm:"type:text;not null" json:"resume"`
	CoverLetter       string    `gorm:"type:text;not null" json:"coverLetter"`
	JobTitle          string    `gorm:"type:text;not null" json:"jobTitle"`
	ApplicationStatus string    `gorm:"type:text;not null;default:'Submitted'" json:"applicationStatus"`
	CreatedAt         time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
