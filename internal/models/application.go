package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application statuses. "viewed" exists in the schema but is not a named
// funnel bucket; see store.ApplicationStats.
const (
	StatusApplied   = "applied"
	StatusViewed    = "viewed"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
)

// Application is one tracked job application.
type Application struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	JobTitle    string    `gorm:"size:255;not null" json:"job_title"`
	Company     string    `gorm:"size:255;not null" json:"company"`
	JobURL      string    `gorm:"size:512" json:"job_url"`
	Status      string    `gorm:"size:20;not null;default:'applied'" json:"status"`
	Notes       string    `gorm:"type:text" json:"notes"`
	AppliedAt   time.Time `json:"applied_at"`
	// S3 object keys for the materials this application was sent with.
	ResumeSnapshotKey      string `gorm:"size:512" json:"resume_snapshot_key"`
	CoverLetterSnapshotKey string `gorm:"size:512" json:"cover_letter_snapshot_key"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Application) OwnerID() uuid.UUID      { return a.UserID }
func (a *Application) SetOwnerID(id uuid.UUID) { a.UserID = id }

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusApplied
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now()
	}
	return nil
}

func (a *Application) Validate() error {
	if err := required("job_title", a.JobTitle); err != nil {
		return err
	}
	if err := required("company", a.Company); err != nil {
		return err
	}
	status := a.Status
	if status == "" {
		status = StatusApplied
	}
	return oneOf("status", status, StatusApplied, StatusViewed, StatusInterview, StatusOffer, StatusRejected)
}
