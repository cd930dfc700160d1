package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/careerpilot/backend/internal/models"
)

// FunnelStats is the application funnel for one tenant, computed from the
// rows present at call time. Applications in the "viewed" status count into
// Total but have no bucket of their own: the dashboard tracks only the
// terminal and near-terminal states individually, so
// Total == Applied + Interview + Offer + Rejected + viewed rows.
type FunnelStats struct {
	Total     int64 `json:"total"`
	Applied   int64 `json:"applied"`
	Interview int64 `json:"interview"`
	Offer     int64 `json:"offer"`
	Rejected  int64 `json:"rejected"`
}

// ApplicationStats counts the tenant's applications grouped by status in a
// single aggregate query. Nothing is cached or materialized.
func (s *Store) ApplicationStats(ctx context.Context, tenant uuid.UUID) (*FunnelStats, error) {
	var counts []struct {
		Status string
		N      int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where(ownerColumn+" = ?", tenant).
		Select("status, count(*) as n").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, translate(err)
	}

	stats := &FunnelStats{}
	for _, c := range counts {
		stats.Total += c.N
		switch c.Status {
		case models.StatusApplied:
			stats.Applied = c.N
		case models.StatusInterview:
			stats.Interview = c.N
		case models.StatusOffer:
			stats.Offer = c.N
		case models.StatusRejected:
			stats.Rejected = c.N
		}
	}
	return stats, nil
}

// streakLookbackDays bounds the backward walk so a long-lived tenant never
// triggers an unbounded scan. Streaks longer than this report the cap.
const streakLookbackDays = 365

// LearningStreak returns the number of consecutive calendar days, ending
// today, on which the tenant completed at least one roadmap milestone.
//
// Day boundaries are UTC: each qualifying row's updated_at is truncated to
// its UTC date, and the walk starts at today's UTC date. The walk stops at
// the first day with no activity, so a tenant with no completion today has a
// streak of 0 regardless of earlier history.
func (s *Store) LearningStreak(ctx context.Context, tenant uuid.UUID) (int, error) {
	since := time.Now().UTC().AddDate(0, 0, -streakLookbackDays)
	var stamps []time.Time
	err := s.db.WithContext(ctx).
		Model(&models.LearningProgress{}).
		Where(ownerColumn+" = ? AND completed = ? AND updated_at >= ?", tenant, true, since).
		Pluck("updated_at", &stamps).Error
	if err != nil {
		return 0, translate(err)
	}

	active := make(map[string]struct{}, len(stamps))
	for _, ts := range stamps {
		active[ts.UTC().Format(time.DateOnly)] = struct{}{}
	}

	streak := 0
	day := time.Now().UTC()
	for streak < streakLookbackDays {
		if _, ok := active[day.Format(time.DateOnly)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}
