package repository

import (
	"context"

	"github.com/Vic2rious/backend-server/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves products with pagination support. A non-positive
	// limit retrieves all products from the given offset.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)

	// GetByID retrieves a single product by its ID. Returns nil when no
	// such product exists.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetByName retrieves a single product by its unique name. Returns
	// nil when no such product exists.
	GetByName(ctx context.Context, name string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error)

	// Create inserts a new product and fills in the store-assigned ID
	// and timestamps.
	Create(ctx context.Context, product *model.Product) error

	// Update persists the product's mutable fields.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id int64) error
}

// OrderRepository defines the interface for order data access operations.
// All write operations run within a caller-provided transaction so the
// service layer controls the aggregate-consistency boundary.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// GetByID retrieves an order by its ID along with its line items.
	// Returns a nil order when no such order exists.
	GetByID(ctx context.Context, id int64) (*model.Order, []model.LineItem, error)

	// GetAll retrieves all orders with their line items eagerly loaded.
	GetAll(ctx context.Context) ([]model.Order, error)

	// CreateOrder inserts a new order header within the provided
	// transaction, filling in the store-assigned ID and timestamps.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// UpdateOrder persists the order header's mutable fields within the
	// provided transaction.
	UpdateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// DeleteOrder removes the order header within the provided
	// transaction. Line items must already be gone.
	DeleteOrder(ctx context.Context, tx pgx.Tx, id int64) error

	// CreateLineItems inserts line items within the provided transaction,
	// filling in the store-assigned IDs.
	CreateLineItems(ctx context.Context, tx pgx.Tx, items []model.LineItem) error

	// DeleteLineItems removes all line items belonging to the order
	// within the provided transaction.
	DeleteLineItems(ctx context.Context, tx pgx.Tx, orderID int64) error
}
