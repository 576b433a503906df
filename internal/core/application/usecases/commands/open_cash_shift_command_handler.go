package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/cashshift"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// OpenCashShiftCommandHandler opens a cash shift. At most one shift may be
// open at a time; the repository surfaces cashshift.ErrShiftAlreadyOpen when
// the storage-level constraint rejects a second one.
type OpenCashShiftCommandHandler struct {
	uowFactory CashShiftUoWFactory
	audit      ports.AuditLog
}

// NewOpenCashShiftCommandHandler creates a handler for shift opening.
func NewOpenCashShiftCommandHandler(uowFactory CashShiftUoWFactory, audit ports.AuditLog) OpenCashShiftCommandHandler {
	return OpenCashShiftCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the shift opening command.
func (h *OpenCashShiftCommandHandler) Handle(ctx context.Context, cmd OpenCashShiftCommand) error {
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

	s, err := cashshift.NewShift(cmd.ShiftID(), cmd.OpenedBy(), cmd.OpeningAmount(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.CashShiftRepository().Add(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx,
		"cash_shift.opened",
		fmt.Sprintf("cash shift opened with %s", s.OpeningAmount()),
		"cash",
	)

	return nil
}
