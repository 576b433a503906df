package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// CloseCashShiftCommandHandler reconciles and closes the open cash shift.
// The expected amount is computed from the ledger inside the same
// transaction that flips the status, so a transaction recorded concurrently
// cannot slip between the sum and the close.
type CloseCashShiftCommandHandler struct {
	uowFactory CashShiftUoWFactory
	audit      ports.AuditLog
}

// NewCloseCashShiftCommandHandler creates a handler for shift closing.
func NewCloseCashShiftCommandHandler(uowFactory CashShiftUoWFactory, audit ports.AuditLog) CloseCashShiftCommandHandler {
	return CloseCashShiftCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the shift closing command.
func (h *CloseCashShiftCommandHandler) Handle(ctx context.Context, cmd CloseCashShiftCommand) error {
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

	transactions, err := shiftRepo.GetTransactions(ctx, s.ID())
	if err != nil {
		return err
	}

	systemAmount := s.OpeningAmount()
	for _, t := range transactions {
		systemAmount = systemAmount.Add(t.SignedAmount())
	}

	if err = s.Close(cmd.DeclaredAmount(), systemAmount, time.Now()); err != nil {
		return err
	}

	if err = shiftRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx,
		"cash_shift.closed",
		fmt.Sprintf("cash shift closed, declared %s, system %s, variance %s",
			cmd.DeclaredAmount(), systemAmount, s.Variance()),
		"cash",
	)

	return nil
}
