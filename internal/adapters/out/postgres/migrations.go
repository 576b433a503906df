package postgres

import (
	"gorm.io/gorm"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/adapters/out/audit"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/adapters/out/postgres/cashshiftrepo"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/adapters/out/postgres/customerrepo"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/adapters/out/postgres/orderrepo"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/adapters/out/postgres/productrepo"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/adapters/out/postgres/routerepo"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/adapters/out/postgres/shipmentrepo"
)

// Migrate creates or updates the database schema, the order-number sequence
// and the constraints GORM's AutoMigrate cannot express:
//
//   - order_numbers: the sequence behind display order numbers. Values
//     survive rollbacks, so a failed order burns a number instead of ever
//     reusing one.
//   - one_open_cash_shift: a partial unique index that rejects a second
//     OPEN shift at the storage layer, across processes and restarts.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&routerepo.RouteDTO{},
		&shipmentrepo.ShipmentDTO{},
		&cashshiftrepo.ShiftDTO{},
		&cashshiftrepo.TransactionDTO{},
		&customerrepo.CustomerDTO{},
		&audit.EntryDTO{},
	)
	if err != nil {
		return err
	}

	if err = db.Exec("CREATE SEQUENCE IF NOT EXISTS order_numbers START 1").Error; err != nil {
		return err
	}

	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS one_open_cash_shift
		ON cash_shifts ((status = 'OPEN'))
		WHERE status = 'OPEN'
	`).Error
}
