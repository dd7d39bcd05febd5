package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal-backend/internal/database"
	"jobportal-backend/internal/model"
)

func TestSaveJob_duplicateRejected(t *testing.T) {
	ss := NewSavedJobService(testDB)

	res, err := ss.Save(database.TestUser1.ID, database.TestJob1.ID, "", "looks interesting")
	require.NoError(t, err)
	require.True(t, res.Success)

	saved := res.Data.(model.SavedJob)
	assert.Equal(t, model.SavedCategoryNone, saved.Category)

	res, err = ss.Save(database.TestUser1.ID, database.TestJob1.ID, "", "")
	require.NoError(t, err)
	require.False(t, res.Success)
	assert.Equal(t, "Job already saved", res.Errors[0].Message)
}

func TestSaveJob_unknownJob(t *testing.T) {
	ss := NewSavedJobService(testDB)

	res, err := ss.Save(database.TestUser1.ID, 99999, "", "")
	require.NoError(t, err)
	require.False(t, res.Success)
	assert.Equal(t, "Job not found", res.Errors[0].Message)
}

func TestUpdateSavedJob(t *testing.T) {
	ss := NewSavedJobService(testDB)

	res, err := ss.Save(database.TestUser2.ID, database.TestJob1.ID, model.SavedCategoryInterested, "")
	require.NoError(t, err)
	require.True(t, res.Success)

	res, err = ss.Update(database.TestUser2.ID, database.TestJob1.ID, model.SavedCategoryApplied, "sent resume")
	require.NoError(t, err)
	require.True(t, res.Success)

	saved := res.Data.(model.SavedJob)
	assert.Equal(t, model.SavedCategoryApplied, saved.Category)
	assert.Equal(t, "sent resume", saved.Notes)

	// Updating a bookmark that does not exist fails.
	res, err = ss.Update(database.TestUser2.ID, 99999, model.SavedCategoryApplied, "")
	require.NoError(t, err)
	require.False(t, res.Success)
	assert.Equal(t, "Saved job not found", res.Errors[0].Message)
}

func TestUpdateSavedJob_notesOnlyKeepsCategory(t *testing.T) {
	ss := NewSavedJobService(testDB)

	res, err := ss.Save(database.TestUser1.ID, database.TestJob2.ID, model.SavedCategoryInterested, "")
	require.NoError(t, err)
	require.True(t, res.Success)

	res, err = ss.Update(database.TestUser1.ID, database.TestJob2.ID, "", "check again next week")
	require.NoError(t, err)
	require.True(t, res.Success)

	saved := res.Data.(model.SavedJob)
	assert.Equal(t, model.SavedCategoryInterested, saved.Category)
	assert.Equal(t, "check again next week", saved.Notes)

	// The category filter still finds the row afterwards.
	res, err = ss.List(database.TestUser1.ID, model.SavedCategoryInterested)
	require.NoError(t, err)
	listed := res.Data.([]model.SavedJob)
	require.Len(t, listed, 1)
	assert.Equal(t, database.TestJob2.ID, listed[0].JobID)
}

func TestUnsaveJob(t *testing.T) {
	ss := NewSavedJobService(testDB)

	res, err := ss.Save(database.TestUser2.ID, database.TestJob2.ID, "", "")
	require.NoError(t, err)
	require.True(t, res.Success)

	res, err = ss.Unsave(database.TestUser2.ID, database.TestJob2.ID)
	require.NoError(t, err)
	require.True(t, res.Success)

	res, err = ss.Unsave(database.TestUser2.ID, database.TestJob2.ID)
	require.NoError(t, err)
	require.False(t, res.Success)
	assert.Equal(t, "Saved job not found", res.Errors[0].Message)
}

func TestListSavedJobs_categoryFilter(t *testing.T) {
	ss := NewSavedJobService(testDB)

	us := NewUserService(testDB)
	reg, err := us.Register(RegisterUserInput{
		Username: "lister",
		Email:    "lister@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.True(t, reg.Success)
	userID := reg.Data.(UserAuthPayload).User.ID

	_, err = ss.Save(userID, database.TestJob1.ID, model.SavedCategoryInterested, "")
	require.NoError(t, err)
	_, err = ss.Save(userID, database.TestJob2.ID, model.SavedCategoryApplied, "")
	require.NoError(t, err)

	res, err := ss.List(userID, "")
	require.NoError(t, err)
	require.True(t, res.Success)
	all := res.Data.([]model.SavedJob)
	require.Len(t, all, 2)
	for _, s := range all {
		require.NotNil(t, s.Job)
		require.NotNil(t, s.Job.Employer)
		assert.NotEmpty(t, s.Job.Employer.CompanyName)
	}

	res, err = ss.List(userID, model.SavedCategoryApplied)
	require.NoError(t, err)
	filtered := res.Data.([]model.SavedJob)
	require.Len(t, filtered, 1)
	assert.Equal(t, database.TestJob2.ID, filtered[0].JobID)
}
