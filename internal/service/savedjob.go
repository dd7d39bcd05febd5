package service

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobportal-backend/internal/database"
	"jobportal-backend/internal/model"
)

// SavedJobService wraps the bookmark lifecycle of a user's saved jobs.
type SavedJobService struct {
	DB *database.DBinstanceStruct
}

// NewSavedJobService creates a new SavedJobService with the provided database connection.
func NewSavedJobService(db *database.DBinstanceStruct) *SavedJobService {
	return &SavedJobService{DB: db}
}

// Save bookmarks jobID for userID. Saving the same job twice fails; a
// concurrent duplicate insert is rejected by the unique (userId, jobId)
// index and reported the same way.
func (s *SavedJobService) Save(userID, jobID uint, category, notes string) (Result, error) {
	var existing model.SavedJob
	err := s.DB.Where("user_id = ? AND job_id = ?", userID, jobID).First(&existing).Error
	switch {
	case err == nil:
		return FailField("jobId", "Job already saved"), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Do nothing
	default:
		return Result{}, err
	}

	if category == "" {
		category = model.SavedCategoryNone
	}

	saved := model.SavedJob{
		UserID:   userID,
		JobID:    jobID,
		Category: category,
		Notes:    notes,
	}
	if err := s.DB.Create(&saved).Error; err != nil {
		if isUniqueViolation(err) {
			return FailField("jobId", "Job already saved"), nil
		}
		if isForeignKeyViolation(err) {
			return FailField("jobId", "Job not found"), nil
		}
		return Result{}, err
	}

	return Ok(saved), nil
}

// Update changes the category and notes of an existing bookmark. An empty
// category leaves the stored one untouched so a notes-only update cannot
// push the row outside the category enum.
func (s *SavedJobService) Update(userID, jobID uint, category, notes string) (Result, error) {
	var saved model.SavedJob
	err := s.DB.Where("user_id = ? AND job_id = ?", userID, jobID).First(&saved).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return FailField("jobId", "Saved job not found"), nil
	case err != nil:
		return Result{}, err
	}

	if category != "" {
		saved.Category = category
	}
	saved.Notes = notes
	if err := s.DB.Save(&saved).Error; err != nil {
		return Result{}, err
	}

	return Ok(saved), nil
}

// Unsave deletes the bookmark for (userID, jobID) and fails when no row was
// removed.
func (s *SavedJobService) Unsave(userID, jobID uint) (Result, error) {
	res := s.DB.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&model.SavedJob{})
	if res.Error != nil {
		return Result{}, res.Error
	}
	if res.RowsAffected == 0 {
		return FailField("jobId", "Saved job not found"), nil
	}

	return Ok(nil), nil
}

// List returns the caller's bookmarks, optionally narrowed to one category,
// each carrying the saved job and its employer's company name and logo.
func (s *SavedJobService) List(userID uint, category string) (Result, error) {
	saved := []model.SavedJob{}

	query := s.DB.
		Preload("Job").
		Preload("Job.Employer", employerSummary).
		Where("user_id = ?", userID)

	if category != "" {
		query = query.Where("category = ?", category)
	}

	err := query.Order(clause.OrderByColumn{
		Column: clause.Column{Name: "created_at"},
		Desc:   true,
	}).Find(&saved).Error
	if err != nil {
		return Result{}, err
	}

	return Ok(saved), nil
}
