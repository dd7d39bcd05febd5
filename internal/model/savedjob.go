package model

import "time"

// Saved job category values
var (
	SavedCategoryHighPriority = "HIGH_PRIORITY"
	SavedCategoryInterested   = "INTERESTED"
	SavedCategoryApplied      = "APPLIED"
	SavedCategoryNone         = "NONE"

	// SavedCategories lists every accepted saved job category
	SavedCategories = []string{SavedCategoryHighPriority, SavedCategoryInterested, SavedCategoryApplied, SavedCategoryNone}
)

// SavedJob is gorm model for a user's bookmark of a job posting.
// The (UserID, JobID) pair is unique so a job can be saved at most once per user.
type SavedJob struct {
	ID       uint   `gorm:"primaryKey;autoIncrement;->" json:"id"`
	Category string `gorm:"type:text;not null;default:'NONE'" json:"category"`
	Notes    string `gorm:"type:text" json:"notes,omitempty"`

	UserID uint `gorm:"not null;uniqueIndex:idx_saved_jobs_user_job" json:"userId"`
	User   User `gorm:"foreignKey:UserID;references:ID" json:"-"`

	JobID uint `gorm:"not null;uniqueIndex:idx_saved_jobs_user_job" json:"jobId"`
	Job   *Job `gorm:"foreignKey:JobID;references:ID" json:"job,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
