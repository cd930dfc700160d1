package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Moods for wellness check-ins.
const (
	MoodGreat      = "great"
	MoodGood       = "good"
	MoodNeutral    = "neutral"
	MoodLow        = "low"
	MoodStruggling = "struggling"
)

// WellnessLog is one wellness check-in. The table is append-only: rows are
// created and read by the owner, never updated or deleted.
type WellnessLog struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Mood        string    `gorm:"size:20;not null" json:"mood"`
	EnergyLevel int       `gorm:"not null;check:energy_level >= 1 AND energy_level <= 10" json:"energy_level"`
	SleepHours  float64   `json:"sleep_hours"`
	StressLevel int       `gorm:"not null;check:stress_level >= 1 AND stress_level <= 10" json:"stress_level"`
	Notes       string    `gorm:"type:text" json:"notes"`
	LoggedAt    time.Time `json:"logged_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (w *WellnessLog) OwnerID() uuid.UUID      { return w.UserID }
func (w *WellnessLog) SetOwnerID(id uuid.UUID) { w.UserID = id }

func (w *WellnessLog) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.LoggedAt.IsZero() {
		w.LoggedAt = time.Now()
	}
	return nil
}

func (w *WellnessLog) Validate() error {
	if err := oneOf("mood", w.Mood, MoodGreat, MoodGood, MoodNeutral, MoodLow, MoodStruggling); err != nil {
		return err
	}
	if err := intInRange("energy_level", w.EnergyLevel, 1, 10); err != nil {
		return err
	}
	if err := intInRange("stress_level", w.StressLevel, 1, 10); err != nil {
		return err
	}
	return floatInRange("sleep_hours", w.SleepHours, 0, 24)
}
