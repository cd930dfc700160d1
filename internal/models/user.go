package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the tenant: every other row in the system belongs to exactly one
// user and is invisible outside it.
type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Owned is implemented by every row type that belongs to a single tenant.
// The owner column is user_id on all tables; declaring it once here is what
// lets the store apply the owner filter uniformly to any entity, present or
// future, without per-table enforcement code.
type Owned interface {
	OwnerID() uuid.UUID
	SetOwnerID(uuid.UUID)
}

// Validator is implemented by models carrying column-level rules. The store
// runs it before any insert or save; a failure means nothing is written.
type Validator interface {
	Validate() error
}
