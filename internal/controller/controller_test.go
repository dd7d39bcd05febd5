package controller

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/middleware"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/service"
	"jobportal-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var teardown func(context.Context, ...testcontainers.TerminateOption) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
}

func jobEngine() *gin.Engine {
	jc := NewJobController(service.NewJobService(testDB, nil))
	r := gin.New()
	r.POST("/api/jobs", middleware.RequireAuth(), middleware.RequireEmployer(), jc.Create)
	r.GET("/api/jobs/search", jc.Search)
	r.GET("/api/jobs/search/quick", jc.QuickSearch)
	r.GET("/api/jobs/all", jc.GetAll)
	r.GET("/api/jobs/:id", jc.GetByID)
	return r
}

func TestCreateJob_ownerComesFromToken(t *testing.T) {
	token, err := auth.GenerateToken(database.TestEmployer1.ID, model.RoleEmployer)
	require.NoError(t, err)

	r := jobEngine()
	body := gin.H{
		"title":          "Platform Engineer",
		"description":    "Run the platform",
		"location":       "Berlin",
		"employmentType": model.EmploymentFullTime,
		// A spoofed owner in the body must be ignored.
		"employerId": database.TestEmployer2.ID,
	}
	rec, resp := testutil.MakeJSONRequest(body, token, r, "/api/jobs", http.MethodPost)

	require.Equal(t, http.StatusCreated, rec.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(database.TestEmployer1.ID), data["employerId"])
	assert.Equal(t, "PUBLISHED", data["status"])
}

func TestCreateJob_userRoleForbidden(t *testing.T) {
	token, err := auth.GenerateToken(database.TestUser1.ID, model.RoleUser)
	require.NoError(t, err)

	r := jobEngine()
	body := gin.H{
		"title":          "Sneaky Job",
		"description":    "Should not exist",
		"location":       "Anywhere",
		"employmentType": model.EmploymentFullTime,
	}
	rec, _ := testutil.MakeJSONRequest(body, token, r, "/api/jobs", http.MethodPost)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateJob_validationErrors(t *testing.T) {
	token, err := auth.GenerateToken(database.TestEmployer1.ID, model.RoleEmployer)
	require.NoError(t, err)

	r := jobEngine()
	body := gin.H{
		"title":          "X",
		"employmentType": "GIG",
		"salaryMin":      50000,
		"salaryMax":      10000,
	}
	rec, resp := testutil.MakeJSONRequest(body, token, r, "/api/jobs", http.MethodPost)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, resp["success"])
	errs := resp["errors"].([]interface{})
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.(map[string]interface{})["field"].(string)] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["employmentType"])
	assert.True(t, fields["salaryMax"])
}

func TestQuickSearch_termTooShort(t *testing.T) {
	r := jobEngine()

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/jobs/search/quick?q=%20a%20", http.MethodGet)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errs := resp["errors"].([]interface{})
	first := errs[0].(map[string]interface{})
	assert.Equal(t, "q", first["field"])
}

func TestGetJobByID_invalidID(t *testing.T) {
	r := jobEngine()

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/jobs/abc", http.MethodGet)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errs := resp["errors"].([]interface{})
	first := errs[0].(map[string]interface{})
	assert.Equal(t, "Invalid job ID", first["message"])
}

func TestGetJobByID_published(t *testing.T) {
	r := jobEngine()

	endpoint := fmt.Sprintf("/api/jobs/%d", database.TestJob1.ID)
	rec, resp := testutil.MakeJSONRequest(nil, "", r, endpoint, http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, database.TestJob1.Title, data["title"])

	employer := data["employer"].(map[string]interface{})
	assert.Equal(t, database.TestEmployer1.CompanyName, employer["companyName"])
}

func TestApplyJob_validationErrors(t *testing.T) {
	ap := NewApplyJobController(service.NewApplyJobService(testDB))
	r := gin.New()
	r.POST("/api/apply", ap.Submit)

	body := gin.H{
		"fullName":    "A",
		"email":       "not-an-email",
		"phoneNumber": "123",
	}
	rec, resp := testutil.MakeJSONRequest(body, "", r, "/api/apply", http.MethodPost)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, resp["success"])
}

func TestApplyJob_success(t *testing.T) {
	ap := NewApplyJobController(service.NewApplyJobService(testDB))
	r := gin.New()
	r.POST("/api/apply", ap.Submit)

	body := gin.H{
		"fullName":    "Applicant One",
		"email":       "applicant1@example.com",
		"phoneNumber": "0811111111",
		"resume":      "https://example.com/resume.pdf",
		"coverLetter": "I am a great fit.",
		"jobTitle":    "Senior Software Engineer",
	}
	rec, resp := testutil.MakeJSONRequest(body, "", r, "/api/apply", http.MethodPost)

	require.Equal(t, http.StatusCreated, rec.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Submitted", data["applicationStatus"])
}

func TestRegisterUser_endpoint(t *testing.T) {
	ac := NewAuthController(service.NewUserService(testDB))
	r := gin.New()
	r.POST("/api/auth/register", ac.Register)
	r.GET("/api/auth/profile", middleware.RequireAuth(), ac.GetProfile)

	body := gin.H{
		"username": "henry",
		"email":    "henry@example.com",
		"password": "secret123",
	}
	rec, resp := testutil.MakeJSONRequest(body, "", r, "/api/auth/register", http.MethodPost)

	require.Equal(t, http.StatusCreated, rec.Code)
	data := resp["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(t, token)

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "henry", user["username"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)

	rec, resp = testutil.MakeJSONRequest(nil, token, r, "/api/auth/profile", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := resp["data"].(map[string]interface{})
	assert.Equal(t, "henry@example.com", profile["email"])
}
