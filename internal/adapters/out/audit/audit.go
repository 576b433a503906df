// Package audit implements the audit-trail sink on its own database
// connection, outside any caller transaction. Audit writes are best effort:
// a failed insert is logged and swallowed, never failing the operation that
// produced it.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryDTO represents one persisted audit record.
type EntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action    string    `gorm:"index;not null"`
	Details   string
	Category  string `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// GormAuditLog writes audit entries through GORM.
type GormAuditLog struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormAuditLog creates an audit sink on the given connection.
func NewGormAuditLog(db *gorm.DB, logger *slog.Logger) *GormAuditLog {
	return &GormAuditLog{db: db, logger: logger}
}

// Record appends an audit entry. Failures are logged and dropped.
func (a *GormAuditLog) Record(ctx context.Context, action, details, category string) {
	entry := EntryDTO{
		ID:        uuid.New(),
		Action:    action,
		Details:   details,
		Category:  category,
		CreatedAt: time.Now(),
	}

	if err := a.db.WithContext(ctx).Create(&entry).Error; err != nil {
		a.logger.Warn("audit write failed",
			"action", action,
			"category", category,
			"error", err)
	}
}
