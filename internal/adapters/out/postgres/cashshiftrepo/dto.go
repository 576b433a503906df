// Package cashshiftrepo provides data transfer objects and mapping functions
// for cash-shift persistence. A partial unique index on status guarantees at
// most one OPEN shift system-wide; see the migrations in the parent package.
package cashshiftrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/cashshift"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
)

// ShiftDTO represents the database structure for persisting cash shifts.
// Status is stored as its label so the partial unique index can predicate
// on the literal 'OPEN'.
type ShiftDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OpenedBy      uuid.UUID       `gorm:"type:uuid;not null"`
	OpeningAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status        string          `gorm:"not null"`
	OpenedAt      time.Time
	ClosedAt      *time.Time
	ClosingAmount *decimal.Decimal `gorm:"type:numeric(14,2)"`
	SystemAmount  *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Variance      *decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for cash shift entities.
func (ShiftDTO) TableName() string {
	return "cash_shifts"
}

// TransactionDTO represents one persisted cash ledger entry. Rows are
// insert-only; corrections are inverse entries.
type TransactionDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShiftID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Direction   string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	Category    string
	Description string
	CreatedAt   time.Time
}

// TableName specifies the database table name for cash transaction entities.
func (TransactionDTO) TableName() string {
	return "cash_transactions"
}

// shiftFromDomain converts a shift domain aggregate to its database representation.
func shiftFromDomain(s *cashshift.Shift) ShiftDTO {
	return ShiftDTO{
		ID:            s.ID().Bytes(),
		OpenedBy:      s.OpenedBy().Bytes(),
		OpeningAmount: s.OpeningAmount(),
		Status:        s.Status().String(),
		OpenedAt:      s.OpenedAt(),
		ClosedAt:      s.ClosedAt(),
		ClosingAmount: s.ClosingAmount(),
		SystemAmount:  s.SystemAmount(),
		Variance:      s.Variance(),
	}
}

// shiftToDomain converts a database DTO to a shift domain aggregate.
func shiftToDomain(dto ShiftDTO) (*cashshift.Shift, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	openedBy, err := kernel.UUIDFromBytes(dto.OpenedBy[:])
	if err != nil {
		return nil, err
	}

	status := cashshift.Open
	if dto.Status == cashshift.Closed.String() {
		status = cashshift.Closed
	}

	return cashshift.RestoreShift(
		id,
		openedBy,
		dto.OpeningAmount,
		status,
		dto.OpenedAt,
		dto.ClosedAt,
		dto.ClosingAmount,
		dto.SystemAmount,
		dto.Variance,
	)
}

// transactionFromDomain converts a ledger entry to its database representation.
func transactionFromDomain(t *cashshift.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          t.ID().Bytes(),
		ShiftID:     t.ShiftID().Bytes(),
		Direction:   t.Direction().String(),
		Amount:      t.Amount(),
		Category:    t.Category(),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt(),
	}
}

// transactionToDomain converts a database DTO to a ledger entry.
func transactionToDomain(dto TransactionDTO) (*cashshift.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shiftID, err := kernel.UUIDFromBytes(dto.ShiftID[:])
	if err != nil {
		return nil, err
	}

	direction, err := cashshift.DirectionFromString(dto.Direction)
	if err != nil {
		return nil, err
	}

	return cashshift.NewTransaction(
		id,
		shiftID,
		direction,
		dto.Amount,
		dto.Category,
		dto.Description,
		dto.CreatedAt,
	)
}
