package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "jobportal-backend/internal/model"
	"jobportal-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seed fixtures for package tests
var (
	TestUser1     m.User
	TestUser2     m.User
	TestEmployer1 m.Employer
	TestEmployer2 m.Employer

	// TestSeedPassword is the plain password every seeded account uses
	TestSeedPassword = "SeedPass123!"

	// Exported seeded jobs. TestJob3 stays in DRAFT.
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample users, employers and jobs if the database is empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	hashed, err := utilities.HashPassword(TestSeedPassword)
	if err != nil {
		return err
	}

	phone := "0812345678"
	users := []*m.User{
		{Username: "alice", Email: "alice@example.com", Password: hashed, Role: m.RoleUser},
		{Username: "bob", Email: "bob@example.com", Password: hashed, PhoneNumber: &phone, Role: m.RoleUser},
	}
	for _, u := range users {
		if err := db.Create(u).Error; err != nil {
			return err
		}
	}

	employers := []*m.Employer{
		{
			PersonName:  "Carol Smith",
			Email:       "carol@acmelabs.com",
			Password:    hashed,
			CompanyName: "Acme Labs",
			Description: "We build everything",
			Website:     "https://acmelabs.example.com",
			Logo:        "https://acmelabs.example.com/logo.png",
		},
		{
			PersonName:  "Dan Jones",
			Email:       "dan@globex.com",
			Password:    hashed,
			CompanyName: "Globex",
			Logo:        "https://globex.example.com/logo.png",
		},
	}
	for _, e := range employers {
		if err := db.Create(e).Error; err != nil {
			return err
		}
	}

	salaryMin := 50000
	salaryMax := 80000
	now := time.Now()
	jobs := []*m.Job{
		{
			EmployerID: employers[0].ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:              "Senior Software Engineer",
				Description:        "Design and build backend services",
				Location:           "New York",
				EmploymentType:     m.EmploymentFullTime,
				ExperienceRequired: "5+ years",
				SkillsRequired:     pq.StringArray{"go", "postgres"},
				SalaryMin:          &salaryMin,
				SalaryMax:          &salaryMax,
			},
			Status:     m.JobStatusPublished,
			PostedDate: now,
		},
		{
			EmployerID: employers[1].ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:          "Marketing Intern",
				Description:    "Assist the marketing team",
				Location:       "Remote",
				EmploymentType: m.EmploymentInternship,
				IsRemote:       true,
			},
			Status:     m.JobStatusPublished,
			PostedDate: now,
		},
		{
			EmployerID: employers[0].ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:          "Unannounced Role",
				Description:    "Not visible yet",
				Location:       "New York",
				EmploymentType: m.EmploymentContract,
			},
			Status:     m.JobStatusDraft,
			PostedDate: now,
		},
	}
	for _, j := range jobs {
		if err := db.Create(j).Error; err != nil {
			return err
		}
	}

	return loadTestData(db)
}

// loadTestData refreshes the exported fixtures from the database.
func loadTestData(db *DBinstanceStruct) error {
	if err := db.Where("username = ?", "alice").First(&TestUser1).Error; err != nil {
		return err
	}
	if err := db.Where("username = ?", "bob").First(&TestUser2).Error; err != nil {
		return err
	}
	if err := db.Where("company_name = ?", "Acme Labs").First(&TestEmployer1).Error; err != nil {
		return err
	}
	if err := db.Where("company_name = ?", "Globex").First(&TestEmployer2).Error; err != nil {
		return err
	}
	if err := db.Where("title = ?", "Senior Software Engineer").First(&TestJob1).Error; err != nil {
		return err
	}
	if err := db.Where("title = ?", "Marketing Intern").First(&TestJob2).Error; err != nil {
		return err
	}
	if err := db.Where("title = ?", "Unannounced Role").First(&TestJob3).Error; err != nil {
		return err
	}
	return nil
}
