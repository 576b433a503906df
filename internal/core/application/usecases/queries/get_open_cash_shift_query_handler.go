package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/cashshift"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
)

// GetOpenCashShiftQueryHandler reads the open shift and sums its ledger in
// one statement. Returns cashshift.ErrNoOpenShift when no shift is open.
type GetOpenCashShiftQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenCashShiftQueryHandler creates a handler for open-shift queries.
func NewGetOpenCashShiftQueryHandler(db *gorm.DB) GetOpenCashShiftQueryHandler {
	return GetOpenCashShiftQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOpenCashShiftQueryHandler) Handle(
	ctx context.Context,
	query GetOpenCashShiftQuery,
) (GetOpenCashShiftQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOpenCashShiftQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.opened_by,
			s.opening_amount,
			s.opening_amount + COALESCE(SUM(
				CASE WHEN t.direction = 'OUT' THEN -t.amount ELSE t.amount END
			), 0) AS system_amount,
			s.opened_at
		FROM cash_shifts s
		LEFT JOIN cash_transactions t ON t.shift_id = s.id
		WHERE s.status = 'OPEN'
		GROUP BY s.id, s.opened_by, s.opening_amount, s.opened_at
	`).Row()

	var resp GetOpenCashShiftQueryResponse
	var id, openedBy uuid.UUID
	var openingAmount, systemAmount decimal.Decimal
	var openedAt time.Time

	err := row.Scan(&id, &openedBy, &openingAmount, &systemAmount, &openedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOpenCashShiftQueryResponse{}, cashshift.ErrNoOpenShift
		}
		return GetOpenCashShiftQueryResponse{}, err
	}

	shiftID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOpenCashShiftQueryResponse{}, err
	}
	openedByID, err := kernel.UUIDFromBytes(openedBy[:])
	if err != nil {
		return GetOpenCashShiftQueryResponse{}, err
	}

	resp.ID = shiftID
	resp.OpenedBy = openedByID
	resp.OpeningAmount = openingAmount
	resp.SystemAmount = systemAmount
	resp.OpenedAt = openedAt

	return resp, nil
}
