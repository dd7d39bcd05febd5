package service

import (
	"context"
	"fmt"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"jobportal-backend/internal/cache"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/metrics"
	"jobportal-backend/internal/model"
)

func jobTitles(res Result) []string {
	jobs := res.Data.([]model.Job)
	titles := make([]string, 0, len(jobs))
	for _, j := range jobs {
		titles = append(titles, j.Title)
	}
	return titles
}

func TestCreateJob_defaults(t *testing.T) {
	js := NewJobService(testDB, nil)

	res, err := js.Create(database.TestEmployer1.ID, model.EditableJobInfo{
		Title:          "Backend Developer",
		Description:    "Build APIs",
		Location:       "Bangkok",
		EmploymentType: model.EmploymentFullTime,
	})
	require.NoError(t, err)
	require.True(t, res.Success)

	job := res.Data.(model.Job)
	assert.Equal(t, database.TestEmployer1.ID, job.EmployerID)
	assert.Equal(t, model.JobStatusPublished, job.Status)
	assert.False(t, job.PostedDate.IsZero())
	require.NotNil(t, job.VisibilityDate)
}

func TestCreateJob_unknownEmployer(t *testing.T) {
	js := NewJobService(testDB, nil)

	res, err := js.Create(99999, model.EditableJobInfo{
		Title:          "Orphan Job",
		Description:    "No owner",
		Location:       "Nowhere",
		EmploymentType: model.EmploymentFullTime,
	})
	require.NoError(t, err)
	require.False(t, res.Success)
	assert.Equal(t, "employerId", res.Errors[0].Field)
}

func TestSearchJobs_salaryOverlap(t *testing.T) {
	js := NewJobService(testDB, nil)

	// TestJob1 pays 50000-80000; a floor inside the range matches.
	res, err := js.Search(SearchFilters{SalaryMin: intPtr(70000)})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Contains(t, jobTitles(res), database.TestJob1.Title)

	// A floor above the range does not.
	res, err = js.Search(SearchFilters{SalaryMin: intPtr(90000)})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.NotContains(t, jobTitles(res), database.TestJob1.Title)

	// A ceiling under the range does not match either.
	res, err = js.Search(SearchFilters{SalaryMax: intPtr(40000)})
	require.NoError(t, err)
	assert.NotContains(t, jobTitles(res), database.TestJob1.Title)
}

func TestSearchJobs_filters(t *testing.T) {
	js := NewJobService(testDB, nil)

	res, err := js.Search(SearchFilters{Title: "engineer"})
	require.NoError(t, err)
	assert.Contains(t, jobTitles(res), database.TestJob1.Title)

	isRemote := true
	res, err = js.Search(SearchFilters{IsRemote: &isRemote})
	require.NoError(t, err)
	titles := jobTitles(res)
	assert.Contains(t, titles, database.TestJob2.Title)
	assert.NotContains(t, titles, database.TestJob1.Title)

	res, err = js.Search(SearchFilters{EmploymentType: model.EmploymentInternship})
	require.NoError(t, err)
	assert.Contains(t, jobTitles(res), database.TestJob2.Title)

	jobs := res.Data.([]model.Job)
	for _, j := range jobs {
		require.NotNil(t, j.Employer)
		assert.NotEmpty(t, j.Employer.CompanyName)
	}
}

func TestQuickSearch_matchesCompanyName(t *testing.T) {
	js := NewJobService(testDB, nil)

	res, err := js.QuickSearch(context.Background(), "globex")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Contains(t, jobTitles(res), database.TestJob2.Title)

	res, err = js.QuickSearch(context.Background(), "marketing")
	require.NoError(t, err)
	assert.Contains(t, jobTitles(res), database.TestJob2.Title)
}

func TestQuickSearch_secondCallServedFromCache(t *testing.T) {
	ctx := context.Background()

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer func() { _ = redisContainer.Terminate(ctx) }()

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	port, err := redisContainer.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	c, err := cache.New(fmt.Sprintf("%s:%s", host, port.Port()), "", 0, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	js := NewJobService(testDB, c)
	hitsBefore := promtestutil.ToFloat64(metrics.QuickSearchCacheHits)

	// First call misses and populates the cache.
	res, err := js.QuickSearch(ctx, "globex")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, hitsBefore, promtestutil.ToFloat64(metrics.QuickSearchCacheHits))

	// Second call is answered from the cache with the same results.
	res, err = js.QuickSearch(ctx, "globex")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Contains(t, jobTitles(res), database.TestJob2.Title)
	assert.Equal(t, hitsBefore+1, promtestutil.ToFloat64(metrics.QuickSearchCacheHits))
}

func TestGetJobByID_draftHidden(t *testing.T) {
	js := NewJobService(testDB, nil)

	res, err := js.GetByID(database.TestJob1.ID)
	require.NoError(t, err)
	require.True(t, res.Success)
	job := res.Data.(model.Job)
	require.NotNil(t, job.Employer)
	assert.Equal(t, database.TestEmployer1.CompanyName, job.Employer.CompanyName)

	// Draft jobs exist but are not retrievable by id.
	res, err = js.GetByID(database.TestJob3.ID)
	require.NoError(t, err)
	require.False(t, res.Success)
	assert.Equal(t, "Job not found", res.Errors[0].Message)
}

func TestGetAllJobs_includesDraft(t *testing.T) {
	js := NewJobService(testDB, nil)

	res, err := js.GetAll()
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Contains(t, jobTitles(res), database.TestJob3.Title)
}
