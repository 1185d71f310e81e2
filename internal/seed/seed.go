package seed

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/calendar"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/config"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/repository"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/utils"
)

var jobTypes = []domain.JobType{
	domain.JobTypeInstallation,
	domain.JobTypeServicing,
	domain.JobTypeInstallationAndServicing,
}

var jobBrands = []domain.Brand{
	domain.BrandDicon,
	domain.BrandMElectric,
}

var locations = []string{
	"123 Main St", "456 Elm St", "789 Oak St", "12 Marina View",
	"88 Tampines Ave", "5 Jurong Gateway", "301 Upper Thomson Rd",
	"77 Bukit Timah Rd", "9 Changi Business Park",
}

// upcomingWorkdays returns the next n dates that are neither weekends nor
// public holidays, starting tomorrow.
func upcomingWorkdays(cal *calendar.Calendar, n int) []string {
	dates := make([]string, 0, n)
	day := time.Now().AddDate(0, 0, 1)
	for len(dates) < n {
		if !cal.IsRestrictedDay(day) {
			dates = append(dates, day.Format(calendar.DateLayout))
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates
}

// Run populates the database with random staff, their availability and a
// batch of unassigned jobs. Safe to re-run; duplicate usernames just fail
// and get logged.
func Run(cfg *config.Config, repo *repository.Repository) {
	cal := calendar.New(cfg.Dispatch.ExtraHolidays...)
	workdays := upcomingWorkdays(cal, 15)

	staffCount := 12
	for i := 0; i < staffCount; i++ {
		user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, "aircon-dispatch.example.com", int32(cfg.Dispatch.AnnualLeaveDays))
		if err != nil {
			slog.Error("failed to generate user", "error", err)
			continue
		}

		if err := repo.CreateUser(user); err != nil {
			slog.Error("failed to insert user", "username", user.Username, "error", err)
			continue
		}

		// most seeded staff declare availability on a random slice of the
		// upcoming workdays; a few are left without a record on purpose
		if rand.Intn(6) == 0 {
			continue
		}

		start := rand.Intn(5)
		end := start + rand.Intn(len(workdays)-start-1) + 1
		record := &domain.AvailabilityRecord{
			UserID:        user.ID,
			Status:        domain.AvailabilityStatusAvailable,
			JobPreference: jobTypes[rand.Intn(len(jobTypes))],
			Dates:         workdays[start:end],
		}
		if err := repo.ReplaceAvailability(record, 0); err != nil {
			slog.Error("failed to insert availability", "userID", user.ID, "error", err)
		}
	}

	jobCount := 20
	for i := 0; i < jobCount; i++ {
		job := &domain.Job{
			ScheduledDate:  workdays[rand.Intn(len(workdays))],
			Type:           jobTypes[rand.Intn(len(jobTypes))],
			Brand:          jobBrands[rand.Intn(len(jobBrands))],
			Location:       locations[rand.Intn(len(locations))],
			AllocatedHours: int32(cfg.Dispatch.DefaultJobHours),
		}
		if err := repo.CreateJob(job); err != nil {
			slog.Error("failed to insert job", "error", err)
		}
	}

	slog.Info("seeding finished", "staff", staffCount, "jobs", jobCount)
}
