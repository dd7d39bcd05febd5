package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobportal-backend/internal/cache"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/metrics"
	"jobportal-backend/internal/model"
)

// JobService wraps job creation, lookup and search. The cache is optional;
// a nil cache disables quick-search caching.
type JobService struct {
	DB    *database.DBinstanceStruct
	Cache *cache.Cache
}

// NewJobService creates a new JobService with the provided database connection
// and optional cache.
func NewJobService(db *database.DBinstanceStruct, c *cache.Cache) *JobService {
	return &JobService{DB: db, Cache: c}
}

// SearchFilters are the optional predicates of a job search. Nil pointer
// fields mean "not filtered".
type SearchFilters struct {
	Title          string
	Location       string
	EmploymentType string
	IsRemote       *bool
	SalaryMin      *int
	SalaryMax      *int
}

// employerSummary limits the eagerly loaded employer columns to what job
// listings expose.
func employerSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "company_name", "logo")
}

func employerDetail(db *gorm.DB) *gorm.DB {
	return db.Select("id", "company_name", "logo", "website")
}

// Create persists a job posting owned by employerID. The owner always comes
// from the authenticated principal, never from the request body. postedDate
// and visibilityDate default to now.
func (s *JobService) Create(employerID uint, info model.EditableJobInfo) (Result, error) {
	now := time.Now()
	if info.VisibilityDate == nil {
		info.VisibilityDate = &now
	}

	job := model.Job{
		EmployerID:      employerID,
		EditableJobInfo: info,
		Status:          model.JobStatusPublished,
		PostedDate:      now,
	}
	if err := s.DB.Create(&job).Error; err != nil {
		if isForeignKeyViolation(err) {
			return FailField("employerId", "Employer not found"), nil
		}
		return Result{}, err
	}

	return Ok(job), nil
}

// Search returns published-or-not jobs matching the given filters, newest
// first, with the owning employer's company name and logo attached. Salary
// filters use range-overlap semantics: a floor matches jobs whose salaryMax
// reaches it, a ceiling matches jobs whose salaryMin stays under it.
func (s *JobService) Search(filters SearchFilters) (Result, error) {
	jobs := []model.Job{}

	query := s.DB.Preload("Employer", employerSummary)

	if filters.Title != "" {
		query = query.Where("title ILIKE ?", "%"+filters.Title+"%")
	}
	if filters.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filters.Location+"%")
	}
	if filters.EmploymentType != "" {
		query = query.Where("employment_type = ?", filters.EmploymentType)
	}
	if filters.IsRemote != nil {
		query = query.Where("is_remote = ?", *filters.IsRemote)
	}
	if filters.SalaryMin != nil {
		query = query.Where("salary_max >= ?", *filters.SalaryMin)
	}
	if filters.SalaryMax != nil {
		query = query.Where("salary_min <= ?", *filters.SalaryMax)
	}

	err := query.Order(clause.OrderByColumn{
		Column: clause.Column{Name: "created_at"},
		Desc:   true,
	}).Find(&jobs).Error
	if err != nil {
		return Result{}, err
	}

	return Ok(jobs), nil
}

// QuickSearch matches a single free-text term against the job title or the
// employer's company name. The employer join is an outer join: a job whose
// own title matches is returned even when its employer's name does not.
func (s *JobService) QuickSearch(ctx context.Context, term string) (Result, error) {
	cached := []model.Job{}
	if err := s.Cache.Get(ctx, cache.QuickSearchKey(term), &cached); err == nil {
		metrics.QuickSearchCacheHits.Inc()
		return Ok(cached), nil
	}

	jobs := []model.Job{}
	pattern := "%" + term + "%"

	err := s.DB.
		Preload("Employer", employerSummary).
		Joins("LEFT JOIN employers ON employers.id = jobs.employer_id").
		Where("jobs.title ILIKE ? OR employers.company_name ILIKE ?", pattern, pattern).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "jobs.created_at"}, Desc: true}).
		Find(&jobs).Error
	if err != nil {
		return Result{}, err
	}

	_ = s.Cache.Set(ctx, cache.QuickSearchKey(term), jobs, cache.QuickSearchTTL)

	return Ok(jobs), nil
}

// GetByID returns a single job only when it is PUBLISHED. Jobs in any other
// status answer not-found even though the row exists.
func (s *JobService) GetByID(jobID uint) (Result, error) {
	var job model.Job
	err := s.DB.
		Preload("Employer", employerDetail).
		Where("id = ? AND status = ?", jobID, model.JobStatusPublished).
		First(&job).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return FailField("id", "Job not found"), nil
	case err != nil:
		return Result{}, err
	}

	return Ok(job), nil
}

// GetAll returns every job with its employer summary, newest first.
func (s *JobService) GetAll() (Result, error) {
	jobs := []model.Job{}
	err := s.DB.
		Preload("Employer", employerSummary).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Find(&jobs).Error
	if err != nil {
		return Result{}, err
	}

	return Ok(jobs), nil
}
