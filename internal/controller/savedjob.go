package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/middleware"
	"jobportal-backend/internal/service"
)

// SavedJobController handles the authenticated bookmark endpoints.
type SavedJobController struct {
	SavedJobs *service.SavedJobService
}

// NewSavedJobController creates a new instance of SavedJobController with the provided saved job service.
func NewSavedJobController(savedJobs *service.SavedJobService) *SavedJobController {
	return &SavedJobController{SavedJobs: savedJobs}
}

type saveJobRequest struct {
	JobID    uint   `json:"jobId"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

type updateSavedJobRequest struct {
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

// Save bookmarks a job for the authenticated user.
func (sc *SavedJobController) Save(c *gin.Context) {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, service.FailField("authorization", err.Error()))
		return
	}

	var in saveJobRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}
	if in.JobID == 0 {
		c.JSON(http.StatusBadRequest, service.FailField("jobId", "Job ID is required"))
		return
	}
	if errs := service.ValidateSavedJob(in.Category); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, service.Fail(errs...))
		return
	}

	res, err := sc.SavedJobs.Save(principal.ID, in.JobID, in.Category, in.Notes)
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusCreated, http.StatusBadRequest)
}

// Update changes the category and notes of an existing bookmark.
func (sc *SavedJobController) Update(c *gin.Context) {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, service.FailField("authorization", err.Error()))
		return
	}

	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.FailField("jobId", "Invalid job ID"))
		return
	}

	var in updateSavedJobRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}
	if errs := service.ValidateSavedJob(in.Category); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, service.Fail(errs...))
		return
	}

	res, err := sc.SavedJobs.Update(principal.ID, uint(jobID), in.Category, in.Notes)
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusOK, http.StatusNotFound)
}

// Unsave removes a bookmark.
func (sc *SavedJobController) Unsave(c *gin.Context) {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, service.FailField("authorization", err.Error()))
		return
	}

	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.FailField("jobId", "Invalid job ID"))
		return
	}

	res, err := sc.SavedJobs.Unsave(principal.ID, uint(jobID))
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusOK, http.StatusNotFound)
}

// List returns the caller's bookmarks, optionally filtered by ?category=.
func (sc *SavedJobController) List(c *gin.Context) {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, service.FailField("authorization", err.Error()))
		return
	}

	category := c.Query("category")
	if errs := service.ValidateSavedJob(category); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, service.Fail(errs...))
		return
	}

	res, err := sc.SavedJobs.List(principal.ID, category)
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusOK, http.StatusBadRequest)
}
