package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/careerpilot/backend/internal/models"
	"github.com/careerpilot/backend/internal/store"
)

// ProfileService reads and mutates a tenant's career profile. The profile
// itself is never created here; tenant provisioning owns that.
type ProfileService struct {
	store *store.Store
}

func NewProfileService(st *store.Store) *ProfileService {
	return &ProfileService{store: st}
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is";
// an empty list replaces the stored one.
type ProfileUpdate struct {
	Name           *string         `json:"name"`
	GitHubUsername *string         `json:"github_username"`
	LinkedInURL    *string         `json:"linkedin_url"`
	Skills         datatypes.JSON  `json:"skills"`
	Experience     datatypes.JSON  `json:"experience"`
	Education      datatypes.JSON  `json:"education"`
	CareerGoals    datatypes.JSON  `json:"career_goals"`
	ResumeText     *string         `json:"resume_text"`
	GitHubSnapshot datatypes.JSON  `json:"github_snapshot"`
}

func (s *ProfileService) GetProfile(ctx context.Context, tenant uuid.UUID) (*models.CareerProfile, error) {
	return s.store.Profile(ctx, tenant)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, tenant uuid.UUID, update ProfileUpdate) (*models.CareerProfile, error) {
	profile, err := s.store.Profile(ctx, tenant)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		profile.Name = *update.Name
	}
	if update.GitHubUsername != nil {
		profile.GitHubUsername = *update.GitHubUsername
	}
	if update.LinkedInURL != nil {
		profile.LinkedInURL = *update.LinkedInURL
	}
	if update.ResumeText != nil {
		profile.ResumeText = *update.ResumeText
	}
	if update.Skills != nil {
		profile.Skills = update.Skills
	}
	if update.Experience != nil {
		profile.Experience = update.Experience
	}
	if update.Education != nil {
		profile.Education = update.Education
	}
	if update.CareerGoals != nil {
		profile.CareerGoals = update.CareerGoals
	}
	if update.GitHubSnapshot != nil {
		profile.GitHubSnapshot = update.GitHubSnapshot
	}

	if err := store.Save(ctx, s.store, tenant, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
