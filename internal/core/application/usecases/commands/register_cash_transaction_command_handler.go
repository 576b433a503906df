package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/cashshift"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// RegisterCashTransactionCommandHandler appends an entry to the open shift's
// cash ledger. Fails with cashshift.ErrNoOpenShift when no shift is open.
type RegisterCashTransactionCommandHandler struct {
	uowFactory CashShiftUoWFactory
	audit      ports.AuditLog
}

// NewRegisterCashTransactionCommandHandler creates a handler for cash
// ledger entries.
func NewRegisterCashTransactionCommandHandler(
	uowFactory CashShiftUoWFactory,
	audit ports.AuditLog,
) RegisterCashTransactionCommandHandler {
	return RegisterCashTransactionCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the cash transaction command.
func (h *RegisterCashTransactionCommandHandler) Handle(ctx context.Context, cmd RegisterCashTransactionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shiftRepo := uow.CashShiftRepository()

	s, err := shiftRepo.GetOpen(ctx)
	if err != nil {
		return err
	}

	t, err := cashshift.NewTransaction(
		cmd.TransactionID(),
		s.ID(),
		cmd.Direction(),
		cmd.Amount(),
		cmd.Category(),
		cmd.Description(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = shiftRepo.AddTransaction(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx,
		"cash_transaction.registered",
		fmt.Sprintf("%s %s recorded in category %s", t.Direction(), t.Amount(), t.Category()),
		"cash",
	)

	return nil
}
