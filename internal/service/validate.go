package service

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"jobportal-backend/internal/model"
	"jobportal-backend/internal/utilities"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func isURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// strongPassword requires at least one lowercase, uppercase, digit and special
// character.
func strongPassword(s string) bool {
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return lower && upper && digit && special
}

// ValidateRegisterUser checks a user registration payload and returns one
// error per offending field.
func ValidateRegisterUser(in RegisterUserInput) []FieldError {
	var errs []FieldError

	if len(strings.TrimSpace(in.Username)) < 3 || len(in.Username) > 30 {
		errs = append(errs, FieldError{Field: "username", Message: "Username must be between 3 and 30 characters long"})
	}
	if !isEmail(strings.TrimSpace(in.Email)) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email"})
	}
	if len(in.Password) < 6 || len(in.Password) > 100 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters long"})
	}
	if in.PhoneNumber != nil && !phonePattern.MatchString(*in.PhoneNumber) {
		errs = append(errs, FieldError{Field: "phoneNumber", Message: "Please enter a valid phone number"})
	}

	return errs
}

// ValidateUpdateProfile checks the fields of a profile update. Empty fields
// are left alone by the update and pass validation.
func ValidateUpdateProfile(in UpdateProfileInput) []FieldError {
	var errs []FieldError

	if in.Username != "" && (len(strings.TrimSpace(in.Username)) < 3 || len(in.Username) > 30) {
		errs = append(errs, FieldError{Field: "username", Message: "Username must be between 3 and 30 characters long"})
	}
	if in.PhoneNumber != nil && !phonePattern.MatchString(*in.PhoneNumber) {
		errs = append(errs, FieldError{Field: "phoneNumber", Message: "Please enter a valid phone number"})
	}

	return errs
}

// ValidateLogin checks a login payload for user and employer logins alike.
func ValidateLogin(email, password string) []FieldError {
	var errs []FieldError

	if !isEmail(strings.TrimSpace(email)) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email"})
	}
	if password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	}

	return errs
}

// ValidateRegisterEmployer checks an employer registration payload.
func ValidateRegisterEmployer(in RegisterEmployerInput) []FieldError {
	var errs []FieldError

	if len(strings.TrimSpace(in.PersonName)) < 2 || len(in.PersonName) > 50 {
		errs = append(errs, FieldError{Field: "personName", Message: "Name must be between 2 and 50 characters long"})
	}
	if !isEmail(strings.TrimSpace(in.Email)) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email"})
	}
	if len(in.Password) < 8 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 8 characters long"})
	} else if !strongPassword(in.Password) {
		errs = append(errs, FieldError{
			Field:   "password",
			Message: "Password must contain at least one uppercase letter, one lowercase letter, one number and one special character",
		})
	}
	if in.ConfirmPassword != in.Password {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "Passwords do not match"})
	}
	if len(strings.TrimSpace(in.CompanyName)) < 2 || len(in.CompanyName) > 100 {
		errs = append(errs, FieldError{Field: "companyName", Message: "Company name must be between 2 and 100 characters long"})
	}
	if in.Website != "" && !isURL(in.Website) {
		errs = append(errs, FieldError{Field: "website", Message: "Please enter a valid website URL"})
	}
	if in.Logo != "" && !isURL(in.Logo) {
		errs = append(errs, FieldError{Field: "logo", Message: "Please enter a valid logo URL"})
	}

	return errs
}

// ValidateJob checks employer-supplied job fields before creation.
func ValidateJob(info model.EditableJobInfo) []FieldError {
	var errs []FieldError

	if len(strings.TrimSpace(info.Title)) < 2 {
		errs = append(errs, FieldError{Field: "title", Message: "Job title must be at least 2 characters long"})
	}
	if info.Description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "Job description is required"})
	}
	if info.Location == "" {
		errs = append(errs, FieldError{Field: "location", Message: "Job location is required"})
	}
	if !utilities.Contains(model.EmploymentTypes, info.EmploymentType) {
		errs = append(errs, FieldError{Field: "employmentType", Message: "Valid employment type is required"})
	}
	if info.SalaryMin != nil && info.SalaryMax != nil && *info.SalaryMax < *info.SalaryMin {
		errs = append(errs, FieldError{Field: "salaryMax", Message: "Maximum salary must be greater than minimum salary"})
	}

	return errs
}

// ValidateSavedJob checks the optional category and notes of a saved job payload.
func ValidateSavedJob(category string) []FieldError {
	if category != "" && !utilities.Contains(model.SavedCategories, category) {
		return []FieldError{{Field: "category", Message: "Invalid category"}}
	}
	return nil
}

// ValidateApplyJob checks a job application payload.
func ValidateApplyJob(in ApplyJobInput) []FieldError {
	var errs []FieldError

	if len(strings.TrimSpace(in.FullName)) < 2 || len(in.FullName) > 50 {
		errs = append(errs, FieldError{Field: "fullName", Message: "Name must be between 2 and 50 characters long"})
	}
	if !isEmail(strings.TrimSpace(in.Email)) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email"})
	}
	if !phonePattern.MatchString(in.PhoneNumber) {
		errs = append(errs, FieldError{Field: "phoneNumber", Message: "Please enter a valid phone number"})
	}
	if in.Resume == "" {
		errs = append(errs, FieldError{Field: "resume", Message: "Resume is required"})
	}
	if in.CoverLetter == "" {
		errs = append(errs, FieldError{Field: "coverLetter", Message: "Cover letter is required"})
	}
	if in.JobTitle == "" {
		errs = append(errs, FieldError{Field: "jobTitle", Message: "Job title is required"})
	}
	if in.ApplicationStatus != "" && !utilities.Contains(model.ApplicationStatuses, in.ApplicationStatus) {
		errs = append(errs, FieldError{Field: "applicationStatus", Message: "Invalid application status"})
	}

	return errs
}
