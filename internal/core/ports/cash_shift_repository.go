package ports

import (
	"context"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/cashshift"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
)

// CashShiftRepository defines the persistence contract for cash shifts and
// their transaction ledger. The "at most one OPEN shift" rule is enforced by
// a partial unique index at the storage layer, never by in-process state.
// The rule must hold across process restarts and multiple instances.
type CashShiftRepository interface {
	// Add persists a newly opened shift. Returns
	// cashshift.ErrShiftAlreadyOpen when another shift is still open;
	// no row is mutated in that case.
	Add(ctx context.Context, aggregate *cashshift.Shift) error

	// Update persists changes (closing) to an existing shift.
	Update(ctx context.Context, aggregate *cashshift.Shift) error

	// GetOpen retrieves the currently open shift, or
	// cashshift.ErrNoOpenShift when none exists.
	GetOpen(ctx context.Context) (*cashshift.Shift, error)

	// AddTransaction appends an immutable entry to a shift's cash ledger.
	AddTransaction(ctx context.Context, transaction *cashshift.Transaction) error

	// GetTransactions retrieves a shift's ledger in recording order.
	GetTransactions(ctx context.Context, shiftID kernel.UUID) ([]*cashshift.Transaction, error)
}
