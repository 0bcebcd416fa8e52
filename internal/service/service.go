package service

import (
	"context"

	"github.com/Vic2rious/backend-server/internal/model"
)

// ProductService defines operations for product catalog management.
type ProductService interface {
	// GetAll retrieves a page of products plus the total catalog size.
	// A non-positive take retrieves all products from the given skip.
	GetAll(ctx context.Context, skip, take int) (*model.ProductPage, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create creates a new product. Product names are unique; creating a
	// duplicate fails with a Conflict error.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update applies a partial update to an existing product.
	Update(ctx context.Context, id int64, req *model.ProductUpdateRequest) (*model.Product, error)

	// Delete removes a product and returns its pre-deletion representation.
	Delete(ctx context.Context, id int64) (*model.Product, error)
}

// OrderService defines operations for order lifecycle management. An
// order and its line items always change together: the stored price is
// recomputed from the referenced products at write time and the line
// item set is replaced as a whole.
type OrderService interface {
	// GetByID retrieves an order by its ID with line items eagerly loaded.
	GetByID(ctx context.Context, id int64) (*model.Order, error)

	// GetAll retrieves all orders with line items eagerly loaded.
	GetAll(ctx context.Context) ([]model.Order, error)

	// Create creates a new order together with its line items.
	Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// Update patches the order header and replaces the full line item set.
	Update(ctx context.Context, id int64, req *model.OrderUpdateRequest) (*model.Order, error)

	// Delete removes an order and all its line items, returning the
	// pre-deletion representation.
	Delete(ctx context.Context, id int64) (*model.Order, error)
}
