package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CareerProfile holds a tenant's career data. Exactly one exists per user;
// it is created by tenant provisioning, never directly by a caller.
//
// The list fields are schemaless JSON arrays: their record shape is owned by
// the analysis agents that write them, the store only guarantees that a list
// round-trips in order.
type CareerProfile struct {
	ID             uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Name           string         `gorm:"size:255" json:"name"`
	Email          string         `gorm:"size:255;not null" json:"email"`
	GitHubUsername string         `gorm:"column:github_username;size:100" json:"github_username"`
	LinkedInURL    string         `gorm:"column:linkedin_url;size:255" json:"linkedin_url"`
	Skills         datatypes.JSON `json:"skills"`
	Experience     datatypes.JSON `json:"experience"`
	Education      datatypes.JSON `json:"education"`
	CareerGoals    datatypes.JSON `json:"career_goals"`
	ResumeText     string         `gorm:"type:text" json:"resume_text"`
	GitHubSnapshot datatypes.JSON `gorm:"column:github_snapshot" json:"github_snapshot"` // cached external-profile analysis
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CareerProfile) TableName() string { return "career_profiles" }

func (p *CareerProfile) OwnerID() uuid.UUID      { return p.UserID }
func (p *CareerProfile) SetOwnerID(id uuid.UUID) { p.UserID = id }

func (p *CareerProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	// list containers are always present, never NULL
	if p.Skills == nil {
		p.Skills = datatypes.JSON("[]")
	}
	if p.Experience == nil {
		p.Experience = datatypes.JSON("[]")
	}
	if p.Education == nil {
		p.Education = datatypes.JSON("[]")
	}
	if p.CareerGoals == nil {
		p.CareerGoals = datatypes.JSON("[]")
	}
	return nil
}

func (p *CareerProfile) Validate() error {
	return required("email", p.Email)
}
