package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vic2rious/backend-server/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// GetByID retrieves an order by its ID along with its line items.
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, []model.LineItem, error) {
	orderQuery := `
		SELECT id, customer_name, address, price, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID,
		&order.CustomerName,
		&order.Address,
		&order.Price,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("order_id", id).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	itemsQuery := `
		SELECT id, order_id, product_id, amount
		FROM order_line_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to query line items")
		return nil, nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	items, err := scanLineItems(rows)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to scan line items")
		return nil, nil, err
	}

	return &order, items, nil
}

// GetAll retrieves all orders with their line items eagerly loaded.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	ordersQuery := `
		SELECT id, customer_name, address, price, created_at, updated_at
		FROM orders
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, ordersQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var order model.Order
		err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.Address,
			&order.Price,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		order.Items = []model.LineItem{}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	rows.Close()

	if len(orders) == 0 {
		return orders, nil
	}

	itemsQuery := `
		SELECT id, order_id, product_id, amount
		FROM order_line_items
		ORDER BY order_id, id
	`

	itemRows, err := r.pool.Query(ctx, itemsQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query line items")
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer itemRows.Close()

	items, err := scanLineItems(itemRows)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan line items")
		return nil, err
	}

	byOrder := make(map[int64]int, len(orders))
	for i := range orders {
		byOrder[orders[i].ID] = i
	}
	for _, item := range items {
		if i, ok := byOrder[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return orders, nil
}

// CreateOrder inserts a new order header within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (customer_name, address, price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query, order.CustomerName, order.Address, order.Price).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().Int64("order_id", order.ID).Msg("order created successfully")
	return nil
}

// UpdateOrder persists the order header's mutable fields within the
// provided transaction.
func (r *orderRepository) UpdateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		UPDATE orders
		SET customer_name = $2, address = $3, price = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := tx.QueryRow(ctx, query, order.ID, order.CustomerName, order.Address, order.Price).
		Scan(&order.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to update order")
		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}

// DeleteOrder removes the order header within the provided transaction.
func (r *orderRepository) DeleteOrder(ctx context.Context, tx pgx.Tx, id int64) error {
	_, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

// CreateLineItems inserts line items within the provided transaction,
// filling in the store-assigned IDs.
func (r *orderRepository) CreateLineItems(ctx context.Context, tx pgx.Tx, items []model.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_line_items (order_id, product_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.OrderID, item.ProductID, item.Amount)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := range items {
		if err := results.QueryRow().Scan(&items[i].ID); err != nil {
			r.logger.Error().
				Err(err).
				Int64("order_id", items[i].OrderID).
				Int64("product_id", items[i].ProductID).
				Msg("failed to create line item")
			return fmt.Errorf("failed to create line item: %w", err)
		}
	}

	r.logger.Debug().Int("count", len(items)).Msg("line items created successfully")
	return nil
}

// DeleteLineItems removes all line items belonging to the order within
// the provided transaction.
func (r *orderRepository) DeleteLineItems(ctx context.Context, tx pgx.Tx, orderID int64) error {
	_, err := tx.Exec(ctx, `DELETE FROM order_line_items WHERE order_id = $1`, orderID)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to delete line items")
		return fmt.Errorf("failed to delete line items: %w", err)
	}

	return nil
}

// scanLineItems collects line-item rows, propagating iteration errors.
func scanLineItems(rows pgx.Rows) ([]model.LineItem, error) {
	var items []model.LineItem
	for rows.Next() {
		var item model.LineItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line items: %w", err)
	}

	return items, nil
}
