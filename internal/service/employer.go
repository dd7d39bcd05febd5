package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/utilities"
)

// EmployerService wraps employer registration and login.
type EmployerService struct {
	DB *database.DBinstanceStruct
}

// NewEmployerService creates a new EmployerService with the provided database connection.
func NewEmployerService(db *database.DBinstanceStruct) *EmployerService {
	return &EmployerService{DB: db}
}

// RegisterEmployerInput is the payload accepted by Register.
type RegisterEmployerInput struct {
	PersonName      string `json:"personName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	CompanyName     string `json:"companyName"`
	Description     string `json:"description"`
	Website         string `json:"website"`
	Logo            string `json:"logo"`
}

// EmployerAuthPayload is the data returned by successful employer registration or login.
type EmployerAuthPayload struct {
	Token    string         `json:"token"`
	Employer model.Employer `json:"employer"`
}

// Register creates an employer account. Both the email and the company name
// must be unique among employers; a clash reports one error per taken field,
// even when the two collide with different existing accounts.
func (s *EmployerService) Register(in RegisterEmployerInput) (Result, error) {
	var existing []model.Employer
	if err := s.DB.Where("email = ? OR company_name = ?", in.Email, in.CompanyName).Find(&existing).Error; err != nil {
		return Result{}, err
	}
	if len(existing) > 0 {
		var errs []FieldError
		for _, e := range existing {
			if e.Email == in.Email {
				errs = append(errs, FieldError{Field: "email", Message: "Email already registered"})
			}
			if e.CompanyName == in.CompanyName {
				errs = append(errs, FieldError{Field: "companyName", Message: "Company name already registered"})
			}
		}
		return Fail(errs...), nil
	}

	hashed, err := utilities.HashPassword(in.Password)
	if err != nil {
		return Result{}, err
	}

	employer := model.Employer{
		PersonName:  in.PersonName,
		Email:       in.Email,
		Password:    hashed,
		CompanyName: in.CompanyName,
		Description: in.Description,
		Website:     in.Website,
		Logo:        in.Logo,
	}
	if err := s.DB.Create(&employer).Error; err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "company_name") {
				return FailField("companyName", "Company name already registered"), nil
			}
			return FailField("email", "Email already registered"), nil
		}
		return Result{}, err
	}

	token, err := auth.GenerateToken(employer.ID, model.RoleEmployer)
	if err != nil {
		return Result{}, err
	}

	return Ok(EmployerAuthPayload{Token: token, Employer: employer}), nil
}

// Login verifies credentials against a stored employer and issues a token
// with the employer role embedded.
func (s *EmployerService) Login(email, password string) (Result, error) {
	var employer model.Employer
	err := s.DB.Where("email = ?", email).First(&employer).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return FailField("email", "Employer not found"), nil
	case err != nil:
		return Result{}, err
	}

	if !utilities.VerifyPassword(password, employer.Password) {
		return FailField("password", "Invalid password"), nil
	}

	token, err := auth.GenerateToken(employer.ID, model.RoleEmployer)
	if err != nil {
		return Result{}, err
	}

	return Ok(EmployerAuthPayload{Token: token, Employer: employer}), nil
}
