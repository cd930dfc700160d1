package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/careerpilot/backend/config"
	"github.com/careerpilot/backend/internal/database"
	"github.com/careerpilot/backend/internal/logger"
	"github.com/careerpilot/backend/internal/models"
	"github.com/careerpilot/backend/internal/store"
)

// Seeds a pair of demo tenants with enough data to exercise the dashboard.
func main() {
	appLog := logger.New()

	cfg, err := config.LoadConfig()
	if err != nil {
		appLog.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.New(cfg, appLog)
	if err != nil {
		appLog.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.AutoMigrate(db); err != nil {
		appLog.WithError(err).Fatal("failed to run migrations")
	}

	st := store.New(db)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("demopassword123"), bcrypt.DefaultCost)
	if err != nil {
		appLog.WithError(err).Fatal("failed to hash password")
	}

	demos := []struct {
		name  string
		email string
	}{
		{name: "Dana Demo", email: "dana@example.com"},
		{name: "Miguel Demo", email: "miguel@example.com"},
	}

	for _, d := range demos {
		if _, err := st.UserByEmail(ctx, d.email); err == nil {
			appLog.WithField("email", d.email).Info("user already exists, skipping")
			continue
		}

		user := &models.User{
			Name:         d.name,
			Email:        d.email,
			PasswordHash: string(hash),
		}
		if err := st.ProvisionTenant(ctx, user, d.name); err != nil {
			appLog.WithError(err).Fatalf("failed to provision %s", d.email)
		}
		tenant := user.ID

		apps := []*models.Application{
			{JobTitle: "Backend Engineer", Company: "Acme", Status: models.StatusApplied},
			{JobTitle: "Platform Engineer", Company: "Globex", Status: models.StatusInterview},
			{JobTitle: "SRE", Company: "Initech", Status: models.StatusRejected},
		}
		for _, a := range apps {
			if err := store.Create(ctx, st, tenant, a); err != nil {
				appLog.WithError(err).Fatal("failed to seed application")
			}
		}

		for day := 0; day < 3; day++ {
			p := &models.LearningProgress{
				RoadmapID:        "backend-go",
				MilestoneID:      "milestone-" + time.Now().AddDate(0, 0, -day).Format("2006-01-02"),
				Completed:        true,
				TimeSpentMinutes: 45,
			}
			if err := st.UpsertLearningProgress(ctx, tenant, p); err != nil {
				appLog.WithError(err).Fatal("failed to seed learning progress")
			}
			db.Model(p).Update("updated_at", time.Now().AddDate(0, 0, -day))
		}

		entry := &models.WellnessLog{
			Mood:        models.MoodGood,
			EnergyLevel: 7,
			SleepHours:  7.5,
			StressLevel: 4,
			Notes:       "seeded entry",
		}
		if err := store.Create(ctx, st, tenant, entry); err != nil {
			appLog.WithError(err).Fatal("failed to seed wellness log")
		}

		job := &models.SavedJob{
			JobTitle:       "Staff Engineer",
			Company:        "Hooli",
			Location:       "Remote",
			RequiredSkills: datatypes.JSON(`["go","postgres"]`),
			MatchScore:     0.82,
			SourcePlatform: "manual",
		}
		if err := store.Create(ctx, st, tenant, job); err != nil {
			appLog.WithError(err).Fatal("failed to seed saved job")
		}

		appLog.WithFields(logrus.Fields{"email": d.email, "user_id": tenant}).Info("seeded tenant")
	}
}
