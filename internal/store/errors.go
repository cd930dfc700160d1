package store

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/careerpilot/backend/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both rows that do not exist and rows owned by a
	// different tenant, so existence never leaks across tenants.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a uniqueness invariant blocked a concurrent insert.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable means the underlying storage is unreachable; safe to
	// retry with backoff.
	ErrUnavailable = errors.New("store unavailable")
)

// IsValidation reports whether err is a schema constraint violation.
func IsValidation(err error) bool {
	var ve *models.ValidationError
	return errors.As(err, &ve)
}

// translate maps gorm and driver errors onto the store's error kinds.
// Duplicate-key detection relies on TranslateError being enabled on the
// gorm connection (see database.New).
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrInvalidDB),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
