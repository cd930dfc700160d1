package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/careerpilot/backend/internal/models"
	"github.com/careerpilot/backend/internal/store"
)

// CareerService exposes the tenant's career data: applications, learning
// progress, wellness logs, saved jobs, interview sessions, and the two
// derived dashboard numbers. All access goes through the tenant-scoped
// store; the service itself holds no authorization logic.
type CareerService struct {
	store *store.Store
}

func NewCareerService(st *store.Store) *CareerService {
	return &CareerService{store: st}
}

// Applications

func (s *CareerService) CreateApplication(ctx context.Context, tenant uuid.UUID, app *models.Application) error {
	return store.Create(ctx, s.store, tenant, app)
}

func (s *CareerService) GetApplication(ctx context.Context, tenant, id uuid.UUID) (*models.Application, error) {
	return store.Get[models.Application](ctx, s.store, tenant, id)
}

func (s *CareerService) ListApplications(ctx context.Context, tenant uuid.UUID) ([]models.Application, error) {
	return store.List[models.Application](ctx, s.store, tenant, store.Ordered("applied_at DESC"))
}

// UpdateApplication applies status and notes changes to one application.
func (s *CareerService) UpdateApplication(ctx context.Context, tenant, id uuid.UUID, status, notes *string) (*models.Application, error) {
	app, err := store.Get[models.Application](ctx, s.store, tenant, id)
	if err != nil {
		return nil, err
	}
	if status != nil {
		app.Status = *status
	}
	if notes != nil {
		app.Notes = *notes
	}
	if err := store.Save(ctx, s.store, tenant, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Learning progress

func (s *CareerService) RecordLearningProgress(ctx context.Context, tenant uuid.UUID, p *models.LearningProgress) error {
	return s.store.UpsertLearningProgress(ctx, tenant, p)
}

func (s *CareerService) ListLearningProgress(ctx context.Context, tenant uuid.UUID) ([]models.LearningProgress, error) {
	return store.List[models.LearningProgress](ctx, s.store, tenant, store.Ordered("updated_at DESC"))
}

// Wellness

func (s *CareerService) LogWellness(ctx context.Context, tenant uuid.UUID, entry *models.WellnessLog) error {
	return store.Create(ctx, s.store, tenant, entry)
}

// WellnessHistory returns the most recent check-ins, newest first.
func (s *CareerService) WellnessHistory(ctx context.Context, tenant uuid.UUID, limit int) ([]models.WellnessLog, error) {
	if limit <= 0 {
		limit = 7
	}
	return store.List[models.WellnessLog](ctx, s.store, tenant, store.Ordered("logged_at DESC"), store.Limit(limit))
}

// Saved jobs

func (s *CareerService) SaveJob(ctx context.Context, tenant uuid.UUID, job *models.SavedJob) error {
	return store.Create(ctx, s.store, tenant, job)
}

func (s *CareerService) ListSavedJobs(ctx context.Context, tenant uuid.UUID) ([]models.SavedJob, error) {
	return store.List[models.SavedJob](ctx, s.store, tenant, store.Ordered("saved_at DESC"))
}

func (s *CareerService) DeleteSavedJob(ctx context.Context, tenant, id uuid.UUID) error {
	return store.Delete[models.SavedJob](ctx, s.store, tenant, id)
}

// Interview sessions

func (s *CareerService) CreateInterviewSession(ctx context.Context, tenant uuid.UUID, session *models.InterviewSession) error {
	return store.Create(ctx, s.store, tenant, session)
}

func (s *CareerService) GetInterviewSession(ctx context.Context, tenant, id uuid.UUID) (*models.InterviewSession, error) {
	return store.Get[models.InterviewSession](ctx, s.store, tenant, id)
}

func (s *CareerService) ListInterviewSessions(ctx context.Context, tenant uuid.UUID) ([]models.InterviewSession, error) {
	return store.List[models.InterviewSession](ctx, s.store, tenant, store.Ordered("created_at DESC"))
}

// Analytics

func (s *CareerService) ApplicationStats(ctx context.Context, tenant uuid.UUID) (*store.FunnelStats, error) {
	return s.store.ApplicationStats(ctx, tenant)
}

func (s *CareerService) LearningStreak(ctx context.Context, tenant uuid.UUID) (int, error) {
	return s.store.LearningStreak(ctx, tenant)
}
