package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerpilot/backend/internal/models"
)

// ProvisionTenant creates a tenant and its career profile in one
// transaction. A tenant can never exist without exactly one profile: if the
// profile insert fails the user insert rolls back with it.
func (s *Store) ProvisionTenant(ctx context.Context, user *models.User, displayName string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &models.CareerProfile{
			UserID: user.ID,
			Name:   profileName(displayName, user.Email),
			Email:  user.Email,
		}
		return tx.Create(profile).Error
	})
	return translate(err)
}

// EnsureProfile is the idempotent form of the tenant-created hook, for
// deployments where identity lives in an external provider that cannot be
// rolled back. Repeated calls converge on exactly one profile: the
// profile-per-tenant unique index turns the losing side of a race into a
// conflict, which resolves by re-reading the winner's row.
func (s *Store) EnsureProfile(ctx context.Context, tenant uuid.UUID, email, displayName string) (*models.CareerProfile, error) {
	profile, err := s.Profile(ctx, tenant)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	profile = &models.CareerProfile{
		UserID: tenant,
		Name:   profileName(displayName, email),
		Email:  email,
	}
	createErr := translate(s.db.WithContext(ctx).Create(profile).Error)
	if errors.Is(createErr, ErrConflict) {
		// lost a concurrent retry; the winner's row is the tenant's profile
		return s.Profile(ctx, tenant)
	}
	if createErr != nil {
		return nil, createErr
	}
	return profile, nil
}

// Profile returns the tenant's career profile.
func (s *Store) Profile(ctx context.Context, tenant uuid.UUID) (*models.CareerProfile, error) {
	var profile models.CareerProfile
	err := s.db.WithContext(ctx).Where(ownerColumn+" = ?", tenant).First(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// DeleteTenant removes the user and cascades over every row it owns across
// all entities, in one transaction. Rows are removed outright, not
// soft-deleted, so the email becomes reusable.
func (s *Store) DeleteTenant(ctx context.Context, tenant uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&models.CareerProfile{},
			&models.Application{},
			&models.LearningProgress{},
			&models.WellnessLog{},
			&models.SavedJob{},
			&models.InterviewSession{},
		}
		for _, m := range owned {
			if err := tx.Unscoped().Where(ownerColumn+" = ?", tenant).Delete(m).Error; err != nil {
				return err
			}
		}
		res := tx.Unscoped().Where("id = ?", tenant).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err)
}

// UserByEmail looks a tenant up by login email. Used by the identity
// collaborator only; it is not tenant-scoped because it is the lookup that
// establishes the tenant.
func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func profileName(displayName, email string) string {
	if displayName != "" {
		return displayName
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
