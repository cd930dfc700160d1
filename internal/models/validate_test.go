package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validationField(t *testing.T, err error) string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return verr.Field
}

func TestApplicationValidate(t *testing.T) {
	app := &Application{JobTitle: "Backend Engineer", Company: "Acme"}
	assert.NoError(t, app.Validate())

	// an empty status defaults to applied at insert time
	app.Status = ""
	assert.NoError(t, app.Validate())

	app.Status = StatusOffer
	assert.NoError(t, app.Validate())

	app.Status = "ghosted"
	assert.Equal(t, "status", validationField(t, app.Validate()))

	assert.Equal(t, "job_title", validationField(t, (&Application{Company: "Acme"}).Validate()))
	assert.Equal(t, "company", validationField(t, (&Application{JobTitle: "Role"}).Validate()))
}

func TestWellnessLogValidate(t *testing.T) {
	valid := &WellnessLog{Mood: MoodGood, EnergyLevel: 7, StressLevel: 3, SleepHours: 8}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		log   WellnessLog
		field string
	}{
		{"unknown mood", WellnessLog{Mood: "ecstatic", EnergyLevel: 5, StressLevel: 5}, "mood"},
		{"energy too low", WellnessLog{Mood: MoodGood, EnergyLevel: 0, StressLevel: 5}, "energy_level"},
		{"energy too high", WellnessLog{Mood: MoodGood, EnergyLevel: 11, StressLevel: 5}, "energy_level"},
		{"stress too high", WellnessLog{Mood: MoodGood, EnergyLevel: 5, StressLevel: 11}, "stress_level"},
		{"sleep beyond a day", WellnessLog{Mood: MoodGood, EnergyLevel: 5, StressLevel: 5, SleepHours: 25}, "sleep_hours"},
		{"negative sleep", WellnessLog{Mood: MoodGood, EnergyLevel: 5, StressLevel: 5, SleepHours: -1}, "sleep_hours"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.field, validationField(t, tc.log.Validate()))
		})
	}

	// the range bounds are inclusive
	edge := &WellnessLog{Mood: MoodStruggling, EnergyLevel: 1, StressLevel: 10, SleepHours: 24}
	assert.NoError(t, edge.Validate())
}

func TestLearningProgressValidate(t *testing.T) {
	valid := &LearningProgress{RoadmapID: "backend-go", MilestoneID: "goroutines", TimeSpentMinutes: 30}
	assert.NoError(t, valid.Validate())

	assert.Equal(t, "roadmap_id", validationField(t, (&LearningProgress{MilestoneID: "m"}).Validate()))
	assert.Equal(t, "milestone_id", validationField(t, (&LearningProgress{RoadmapID: "r"}).Validate()))

	negative := &LearningProgress{RoadmapID: "r", MilestoneID: "m", TimeSpentMinutes: -5}
	assert.Equal(t, "time_spent_minutes", validationField(t, negative.Validate()))
}

func TestInterviewSessionValidate(t *testing.T) {
	valid := &InterviewSession{JobTitle: "Backend Engineer", InterviewType: InterviewTechnical}
	assert.NoError(t, valid.Validate())

	assert.Equal(t, "job_title", validationField(t, (&InterviewSession{InterviewType: InterviewHR}).Validate()))
	assert.Equal(t, "interview_type", validationField(t, (&InterviewSession{JobTitle: "Role", InterviewType: "casual"}).Validate()))
}

func TestCareerProfileValidate(t *testing.T) {
	assert.NoError(t, (&CareerProfile{Email: "a@example.com"}).Validate())
	assert.Equal(t, "email", validationField(t, (&CareerProfile{}).Validate()))
}
