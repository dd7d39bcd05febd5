package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/service"
)

// ApplyJobController handles the public job application endpoint.
type ApplyJobController struct {
	Applications *service.ApplyJobService
}

// NewApplyJobController creates a new instance of ApplyJobController with the provided application service.
func NewApplyJobController(applications *service.ApplyJobService) *ApplyJobController {
	return &ApplyJobController{Applications: applications}
}

// Submit records a job application.
func (ap *ApplyJobController) Submit(c *gin.Context) {
	var in service.ApplyJobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}

	if errs := service.ValidateApplyJob(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, service.Fail(errs...))
		return
	}

	res, err := ap.Applications.Submit(in)
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusCreated, http.StatusBadRequest)
}
