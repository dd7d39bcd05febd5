package service

import (
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/model"
)

// ApplyJobService wraps job application submission.
type ApplyJobService struct {
	DB *database.DBinstanceStruct
}

// NewApplyJobService creates a new ApplyJobService with the provided database connection.
func NewApplyJobService(db *database.DBinstanceStruct) *ApplyJobService {
	return &ApplyJobService{DB: db}
}

// ApplyJobInput is the payload accepted by Submit.
type ApplyJobInput struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phoneNumber"`
	Resume            string `json:"resume"`
	CoverLetter       string `json:"coverLetter"`
	JobTitle          string `json:"jobTitle"`
	ApplicationStatus string `json:"applicationStatus"`
}

// Submit records a job application. There is no uniqueness pre-check beyond
// the column constraints on email and phone number; a violation surfaces as
// a generic creation failure rather than a crash.
func (s *ApplyJobService) Submit(in ApplyJobInput) (Result, error) {
	if in.ApplicationStatus == "" {
		in.ApplicationStatus = model.ApplicationStatusSubmitted
	}

	application := model.ApplyJob{
		FullName:          in.FullName,
		Email:             in.Email,
		PhoneNumber:       in.PhoneNumber,
		Resume:            in.Resume,
		CoverLetter:       in.CoverLetter,
		JobTitle:          in.JobTitle,
		ApplicationStatus: in.ApplicationStatus,
	}
	if err := s.DB.Create(&application).Error; err != nil {
		if isUniqueViolation(err) {
			return FailField("general", "Failed to submit application"), nil
		}
		return Result{}, err
	}

	return Ok(application), nil
}
