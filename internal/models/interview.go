package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Interview types.
const (
	InterviewBehavioral = "behavioral"
	InterviewTechnical  = "technical"
	InterviewHR         = "hr"
	InterviewCase       = "case"
)

// InterviewSession records one mock interview: the questions asked, the
// answers given and the per-answer scores, in matching order. Sessions are
// created and read, never edited.
type InterviewSession struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	JobTitle      string         `gorm:"size:255;not null" json:"job_title"`
	Company       string         `gorm:"size:255" json:"company"`
	InterviewType string         `gorm:"size:20;not null" json:"interview_type"`
	Questions     datatypes.JSON `json:"questions"`
	Answers       datatypes.JSON `json:"answers"`
	Scores        datatypes.JSON `json:"scores"`
	OverallScore  float64        `json:"overall_score"`
	Feedback      string         `gorm:"type:text" json:"feedback"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (s *InterviewSession) OwnerID() uuid.UUID      { return s.UserID }
func (s *InterviewSession) SetOwnerID(id uuid.UUID) { s.UserID = id }

func (s *InterviewSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *InterviewSession) Validate() error {
	if err := required("job_title", s.JobTitle); err != nil {
		return err
	}
	return oneOf("interview_type", s.InterviewType, InterviewBehavioral, InterviewTechnical, InterviewHR, InterviewCase)
}
