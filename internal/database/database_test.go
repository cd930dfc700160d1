package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/backend/internal/database"
	"github.com/careerpilot/backend/internal/models"
	"github.com/careerpilot/backend/internal/testdb"
)

func TestHealthCheck(t *testing.T) {
	db := testdb.Open(t)
	assert.NoError(t, database.HealthCheck(context.Background(), db))
}

func TestAutoMigrateIdempotent(t *testing.T) {
	db := testdb.Open(t)

	// a second run against an already-migrated schema is a no-op
	require.NoError(t, database.AutoMigrate(db))

	user := models.User{Name: "Test User", Email: "test@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	assert.NotZero(t, user.ID)
}

func TestSchemaEnforcesUniqueEmail(t *testing.T) {
	db := testdb.Open(t)

	first := models.User{Name: "A", Email: "dup@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&first).Error)

	second := models.User{Name: "B", Email: "dup@example.com", PasswordHash: "x"}
	assert.Error(t, db.Create(&second).Error)
}
