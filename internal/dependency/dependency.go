package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
	"github.com/jmoiron/sqlx"
)

type (
	// Orders is the order-store boundary. ListOrders is the read interface
	// the analytics engine consumes: a point-in-time snapshot of the full
	// history with items and status transitions attached.
	Orders interface {
		ListOrders(ctx context.Context) ([]entity.Order, error)
		ListOrdersPaged(ctx context.Context, status entity.StatusName, limit, offset int) ([]entity.Order, int, error)
		GetOrderByUUID(ctx context.Context, orderUUID string) (*entity.Order, error)
		CreateOrder(ctx context.Context, orderNew *entity.OrderNew) (*entity.Order, error)
		UpdateOrderStatus(ctx context.Context, orderUUID string, status entity.StatusName) error
		SetTrackingNumber(ctx context.Context, orderUUID string, trackingNumber string) error
	}

	Products interface {
		AddProduct(ctx context.Context, prd *entity.ProductNew) (int, error)
		UpdateProduct(ctx context.Context, prd *entity.ProductNew, id int) error
		GetProductByID(ctx context.Context, id int) (*entity.Product, error)
		GetProductsPaged(ctx context.Context, limit, offset int, showHidden bool) ([]entity.Product, int, error)
		DeleteProductByID(ctx context.Context, id int) error
	}

	Suppliers interface {
		AddSupplier(ctx context.Context, sup *entity.SupplierNew) (int, error)
		UpdateSupplier(ctx context.Context, sup *entity.SupplierNew, id int) error
		GetSupplierByID(ctx context.Context, id int) (*entity.Supplier, error)
		ListSuppliers(ctx context.Context) ([]entity.Supplier, error)
		DeleteSupplierByID(ctx context.Context, id int) error
	}

	Franchisees interface {
		AddFranchisee(ctx context.Context, fr *entity.FranchiseeNew) (int, error)
		UpdateFranchisee(ctx context.Context, fr *entity.FranchiseeNew, id int) error
		GetFranchiseeByID(ctx context.Context, id int) (*entity.Franchisee, error)
		ListFranchisees(ctx context.Context) ([]entity.Franchisee, error)
		DeleteFranchiseeByID(ctx context.Context, id int) error
	}

	Statuses interface {
		ListOrderStatuses(ctx context.Context) ([]entity.OrderStatus, error)
	}

	Admin interface {
		AddAdmin(ctx context.Context, un, pwHash string) error
		DeleteAdmin(ctx context.Context, username string) error
		ChangePassword(ctx context.Context, un, newHash string) error
		PasswordHashByUsername(ctx context.Context, un string) (string, error)
		GetAdminByUsername(ctx context.Context, username string) (*entity.Admin, error)
	}

	Repository interface {
		Orders() Orders
		Products() Products
		Suppliers() Suppliers
		Franchisees() Franchisees
		Statuses() Statuses
		Admin() Admin
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		Cache() Cache
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Cache exposes the status catalog loaded at boot. The catalog is
	// injected into aggregation calls as a value, never read as hidden
	// global state.
	Cache interface {
		GetOrderStatuses() []entity.OrderStatus
		GetOrderStatusByID(id int) (*entity.OrderStatus, bool)
		GetOrderStatusByName(name entity.StatusName) (entity.OrderStatus, bool)
	}
)
