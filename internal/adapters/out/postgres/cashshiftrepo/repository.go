package cashshiftrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/cashshift"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
)

// GormCashShiftRepository implements CashShiftRepository using GORM.
type GormCashShiftRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCashShiftRepository creates a new GORM cash-shift repository.
func NewGormCashShiftRepository(db *gorm.DB, tracker aggregateTracker) *GormCashShiftRepository {
	return &GormCashShiftRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a newly opened shift. The partial unique index on OPEN
// status rejects a second open shift; that violation maps to
// cashshift.ErrShiftAlreadyOpen.
func (r *GormCashShiftRepository) Add(ctx context.Context, aggregate *cashshift.Shift) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := shiftFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return cashshift.ErrShiftAlreadyOpen
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists closing changes to an existing shift. Nullable closing
// columns are written through a map so they land even when NULL before.
func (r *GormCashShiftRepository) Update(ctx context.Context, aggregate *cashshift.Shift) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := shiftFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShiftDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":         dto.Status,
			"closed_at":      dto.ClosedAt,
			"closing_amount": dto.ClosingAmount,
			"system_amount":  dto.SystemAmount,
			"variance":       dto.Variance,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetOpen retrieves the currently open shift.
func (r *GormCashShiftRepository) GetOpen(ctx context.Context) (*cashshift.Shift, error) {
	var dto ShiftDTO
	err := r.db.WithContext(ctx).First(&dto, "status = ?", cashshift.Open.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cashshift.ErrNoOpenShift
		}
		return nil, err
	}

	return shiftToDomain(dto)
}

// AddTransaction appends an immutable entry to a shift's cash ledger.
func (r *GormCashShiftRepository) AddTransaction(ctx context.Context, transaction *cashshift.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	dto := transactionFromDomain(transaction)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetTransactions retrieves a shift's ledger in recording order.
func (r *GormCashShiftRepository) GetTransactions(
	ctx context.Context,
	shiftID kernel.UUID,
) ([]*cashshift.Transaction, error) {
	if err := shiftID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "shift_id = ?", shiftID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*cashshift.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		t, toErr := transactionToDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}
