package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearningProgress tracks one tenant's progress against one roadmap
// milestone. At most one row exists per (user, milestone); repeat writes
// update the existing row.
type LearningProgress struct {
	ID               uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex:idx_learning_user_milestone" json:"user_id"`
	RoadmapID        string     `gorm:"size:100;not null" json:"roadmap_id"`
	MilestoneID      string     `gorm:"size:100;not null;uniqueIndex:idx_learning_user_milestone" json:"milestone_id"`
	Completed        bool       `gorm:"not null;default:false" json:"completed"`
	TimeSpentMinutes int        `gorm:"not null;default:0" json:"time_spent_minutes"`
	CompletedAt      *time.Time `json:"completed_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (LearningProgress) TableName() string { return "learning_progress" }

func (p *LearningProgress) OwnerID() uuid.UUID      { return p.UserID }
func (p *LearningProgress) SetOwnerID(id uuid.UUID) { p.UserID = id }

func (p *LearningProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *LearningProgress) Validate() error {
	if err := required("roadmap_id", p.RoadmapID); err != nil {
		return err
	}
	if err := required("milestone_id", p.MilestoneID); err != nil {
		return err
	}
	if p.TimeSpentMinutes < 0 {
		return &ValidationError{Field: "time_spent_minutes", Reason: "must not be negative"}
	}
	return nil
}
