package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/metrics"
	"jobportal-backend/internal/middleware"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/service"
)

// JobController handles job posting, lookup and search endpoints.
type JobController struct {
	Jobs *service.JobService
}

// NewJobController creates a new instance of JobController with the provided job service.
func NewJobController(jobs *service.JobService) *JobController {
	return &JobController{Jobs: jobs}
}

// Create posts a new job owned by the authenticated employer. The owner is
// always the principal; an employerId in the body is ignored.
func (jc *JobController) Create(c *gin.Context) {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, service.FailField("authorization", err.Error()))
		return
	}

	var info model.EditableJobInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		invalidBody(c, err)
		return
	}

	if errs := service.ValidateJob(info); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, service.Fail(errs...))
		return
	}

	res, err := jc.Jobs.Create(principal.ID, info)
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusCreated, http.StatusBadRequest)
}

// Search filters jobs by the query parameters title, location,
// employmentType, isRemote, salaryMin and salaryMax. Absent parameters do
// not filter; isRemote only filters when the parameter is present.
func (jc *JobController) Search(c *gin.Context) {
	filters := service.SearchFilters{
		Title:          c.Query("title"),
		Location:       c.Query("location"),
		EmploymentType: c.Query("employmentType"),
	}

	if raw, ok := c.GetQuery("isRemote"); ok {
		isRemote, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, service.FailField("isRemote", "isRemote must be true or false"))
			return
		}
		filters.IsRemote = &isRemote
	}
	if raw, ok := c.GetQuery("salaryMin"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, service.FailField("salaryMin", "salaryMin must be a number"))
			return
		}
		filters.SalaryMin = &v
	}
	if raw, ok := c.GetQuery("salaryMax"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, service.FailField("salaryMax", "salaryMax must be a number"))
			return
		}
		filters.SalaryMax = &v
	}

	metrics.JobSearchCounter.WithLabelValues("filtered").Inc()

	res, err := jc.Jobs.Search(filters)
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusOK, http.StatusBadRequest)
}

// QuickSearch matches a single trimmed term of at least two characters
// against job titles and employer company names.
func (jc *JobController) QuickSearch(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if len(term) < 2 {
		c.JSON(http.StatusBadRequest, service.FailField("q", "Search term must be at least 2 characters long"))
		return
	}

	metrics.JobSearchCounter.WithLabelValues("quick").Inc()

	res, err := jc.Jobs.QuickSearch(c.Request.Context(), term)
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusOK, http.StatusBadRequest)
}

// GetByID returns one published job with full employer detail.
func (jc *JobController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.FailField("id", "Invalid job ID"))
		return
	}

	res, err := jc.Jobs.GetByID(uint(id))
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusOK, http.StatusNotFound)
}

// GetAll lists every job regardless of status.
func (jc *JobController) GetAll(c *gin.Context) {
	res, err := jc.Jobs.GetAll()
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusOK, http.StatusBadRequest)
}
