package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog entry with a unit price.
type Product struct {
	ID        int64           `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	Price     decimal.Decimal `json:"price" db:"price"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// ProductRequest represents the request payload for creating a product.
type ProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductUpdateRequest represents a partial product update. Nil fields
// are left untouched.
type ProductUpdateRequest struct {
	Name  *string          `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// ProductPage is the paginated listing response: one page of products
// plus the total catalog size.
type ProductPage struct {
	Pagination Pagination `json:"pagination"`
	Data       []Product  `json:"data"`
}

// Pagination carries listing metadata.
type Pagination struct {
	Total int64 `json:"total"`
}
