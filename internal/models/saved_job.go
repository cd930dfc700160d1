package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SavedJob is a job posting bookmarked from the market scanner.
type SavedJob struct {
	ID             uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	JobTitle       string         `gorm:"size:255" json:"job_title"`
	Company        string         `gorm:"size:255" json:"company"`
	Location       string         `gorm:"size:255" json:"location"`
	JobURL         string         `gorm:"size:512" json:"job_url"`
	Salary         string         `gorm:"size:100" json:"salary"`
	RequiredSkills datatypes.JSON `json:"required_skills"`
	MatchScore     float64        `json:"match_score"`
	SourcePlatform string         `gorm:"size:50" json:"source_platform"` // linkedin, indeed, remoteok, manual
	SavedAt        time.Time      `json:"saved_at"`
	CreatedAt      time.Time      `json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (j *SavedJob) OwnerID() uuid.UUID      { return j.UserID }
func (j *SavedJob) SetOwnerID(id uuid.UUID) { j.UserID = id }

func (j *SavedJob) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.SavedAt.IsZero() {
		j.SavedAt = time.Now()
	}
	return nil
}
