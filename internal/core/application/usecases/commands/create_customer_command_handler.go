package commands

import (
	"context"
	"fmt"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/customer"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// CreateCustomerCommandHandler registers a customer. Duplicate tax IDs are
// rejected by the repository with customer.ErrDuplicateTaxID. Registering a
// wholesale customer pushes a notification so pricing staff can review the
// account.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	audit      ports.AuditLog
	notifier   ports.Notifier
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	audit ports.AuditLog,
	notifier ports.Notifier,
) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		notifier:   notifier,
	}
}

// Handle processes the customer registration command.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
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

	c, err := customer.NewCustomer(
		cmd.CustomerID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.TaxID(),
		cmd.Address(),
		cmd.Category(),
		cmd.BusinessName(),
		cmd.SalespersonID(),
	)
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx,
		"customer.created",
		fmt.Sprintf("customer %s %s registered as %s", c.FirstName(), c.LastName(), c.Category()),
		"customers",
	)

	if c.IsWholesale() {
		h.notifier.Notify(ctx,
			"Nuevo cliente mayorista",
			fmt.Sprintf("Se registró el cliente mayorista %s", *c.BusinessName()),
			"customers",
		)
	}

	return nil
}
