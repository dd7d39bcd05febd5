package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/metrics"
	"jobportal-backend/internal/service"
)

// EmployerController handles employer registration and login endpoints.
type EmployerController struct {
	Employers *service.EmployerService
}

// NewEmployerController creates a new instance of EmployerController with the provided employer service.
func NewEmployerController(employers *service.EmployerService) *EmployerController {
	return &EmployerController{Employers: employers}
}

// Register creates an employer account and returns it with a fresh token.
func (ec *EmployerController) Register(c *gin.Context) {
	var in service.RegisterEmployerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}

	if errs := service.ValidateRegisterEmployer(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, service.Fail(errs...))
		return
	}

	res, err := ec.Employers.Register(in)
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusCreated, http.StatusBadRequest)
}

// Login verifies employer credentials and returns a token carrying the
// employer role.
func (ec *EmployerController) Login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}

	if errs := service.ValidateLogin(in.Email, in.Password); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, service.Fail(errs...))
		return
	}

	metrics.AuthAttemptsCounter.Inc()

	res, err := ec.Employers.Login(in.Email, in.Password)
	if err != nil {
		serverError(c, err)
		return
	}
	if res.Success {
		metrics.AuthSuccessCounter.Inc()
	}

	writeResult(c, res, http.StatusOK, http.StatusUnauthorized)
}
