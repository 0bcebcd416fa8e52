package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a customer order. Price is a stored snapshot computed
// when the order was last written, not a live view over its line items.
type Order struct {
	ID           int64           `json:"id" db:"id"`
	CustomerName string          `json:"customerName" db:"customer_name"`
	Address      string          `json:"address" db:"address"`
	Price        decimal.Decimal `json:"price" db:"price"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
	Items        []LineItem      `json:"items"`
}

// LineItem represents a single product position within an order. A line
// item never outlives its order, and its ID is reassigned whenever the
// order is updated.
type LineItem struct {
	ID        int64 `json:"id" db:"id"`
	OrderID   int64 `json:"orderId" db:"order_id"`
	ProductID int64 `json:"productId" db:"product_id"`
	Amount    int   `json:"amount" db:"amount"`
}

// OrderRequest represents the request payload for creating an order.
// ProductIDs and Amounts are parallel arrays correlating by position.
type OrderRequest struct {
	CustomerName string  `json:"customerName"`
	Address      string  `json:"address"`
	ProductIDs   []int64 `json:"productIds"`
	Amounts      []int   `json:"amounts"`
}

// OrderUpdateRequest represents the request payload for updating an
// order. Nil metadata fields are left untouched. When Price is set the
// supplied value is stored verbatim and no total is recomputed.
type OrderUpdateRequest struct {
	CustomerName *string          `json:"customerName,omitempty"`
	Address      *string          `json:"address,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	ProductIDs   []int64          `json:"productIds"`
	Amounts      []int            `json:"amounts"`
}
