package service

import (
	"context"
	"fmt"

	"github.com/Vic2rious/backend-server/internal/model"
	"github.com/Vic2rious/backend-server/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// GetByID retrieves an order by its ID with line items eagerly loaded.
func (s *orderService) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	order.Items = items
	if order.Items == nil {
		order.Items = []model.LineItem{}
	}

	return order, nil
}

// GetAll retrieves all orders with line items eagerly loaded.
func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	if orders == nil {
		orders = []model.Order{}
	}

	return orders, nil
}

// Create creates a new order together with its line items. The order
// price is the sum of product price times amount over all positions,
// resolved before any write is issued.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if req == nil {
		return nil, model.NewInvalidArgument("order request is required")
	}

	if err := validateLineItemInput(req.ProductIDs, req.Amounts); err != nil {
		return nil, err
	}

	total, err := s.resolveTotal(ctx, req.ProductIDs, req.Amounts)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Price:        total,
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	items := buildLineItems(order.ID, req.ProductIDs, req.Amounts)
	if err = s.orderRepo.CreateLineItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Int64("order_id", order.ID).
			Int("item_count", len(items)).
			Msg("failed to create line items")
		return nil, fmt.Errorf("failed to create line items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order.Items = items

	s.logger.Info().
		Int64("order_id", order.ID).
		Int("item_count", len(items)).
		Str("price", order.Price.String()).
		Msg("order created successfully")

	return order, nil
}

// Update patches the order header and replaces the full line item set.
// When the patch supplies an explicit price that value is stored as-is
// and no total is recomputed; the stored price may then diverge from the
// line item total.
func (s *orderService) Update(ctx context.Context, id int64, req *model.OrderUpdateRequest) (*model.Order, error) {
	if req == nil {
		return nil, model.NewInvalidArgument("order request is required")
	}

	if err := validateLineItemInput(req.ProductIDs, req.Amounts); err != nil {
		return nil, err
	}

	order, _, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.Address != nil {
		order.Address = *req.Address
	}

	if req.Price != nil {
		order.Price = *req.Price
	} else {
		total, err := s.resolveTotal(ctx, req.ProductIDs, req.Amounts)
		if err != nil {
			return nil, err
		}
		order.Price = total
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.UpdateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to update order")
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	// Replace the full line item set: prior items never survive an update.
	if err = s.orderRepo.DeleteLineItems(ctx, tx, id); err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to delete line items")
		return nil, fmt.Errorf("failed to replace line items: %w", err)
	}

	items := buildLineItems(id, req.ProductIDs, req.Amounts)
	if err = s.orderRepo.CreateLineItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Int64("order_id", id).
			Int("item_count", len(items)).
			Msg("failed to create line items")
		return nil, fmt.Errorf("failed to replace line items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	order.Items = items

	s.logger.Info().
		Int64("order_id", id).
		Int("item_count", len(items)).
		Bool("explicit_price", req.Price != nil).
		Msg("order updated successfully")

	return order, nil
}

// Delete removes an order and all its line items. Line items go first so
// no orphaned item can survive the order.
func (s *orderService) Delete(ctx context.Context, id int64) (*model.Order, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	order.Items = items
	if order.Items == nil {
		order.Items = []model.LineItem{}
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.DeleteLineItems(ctx, tx, id); err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to delete line items")
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}

	if err = s.orderRepo.DeleteOrder(ctx, tx, id); err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to delete order")
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Info().Int64("order_id", id).Msg("order deleted successfully")

	return order, nil
}

// resolveTotal resolves every product reference and accumulates the
// order total. All lookups complete before any write is issued; an
// unresolvable product id fails the whole operation.
func (s *orderService) resolveTotal(ctx context.Context, productIDs []int64, amounts []int) (decimal.Decimal, error) {
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(productIDs)).Msg("failed to resolve products")
		return decimal.Zero, fmt.Errorf("failed to resolve products: %w", err)
	}

	priceByID := make(map[int64]decimal.Decimal, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}

	total := decimal.Zero
	for i, productID := range productIDs {
		price, ok := priceByID[productID]
		if !ok {
			s.logger.Warn().Int64("product_id", productID).Msg("unresolvable product reference")
			return decimal.Zero, model.NewInvalidArgument("Product with ID %d not found", productID)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(amounts[i]))))
	}

	return total, nil
}

// validateLineItemInput checks the parallel-array correlation and amount
// positivity before any product lookup happens.
func validateLineItemInput(productIDs []int64, amounts []int) error {
	if len(productIDs) != len(amounts) {
		return model.ErrLengthMismatch
	}

	for _, amount := range amounts {
		if amount <= 0 {
			return model.ErrInvalidAmount
		}
	}

	return nil
}

// buildLineItems zips the parallel arrays into line items for an order.
func buildLineItems(orderID int64, productIDs []int64, amounts []int) []model.LineItem {
	items := make([]model.LineItem, len(productIDs))
	for i, productID := range productIDs {
		items[i] = model.LineItem{
			OrderID:   orderID,
			ProductID: productID,
			Amount:    amounts[i],
		}
	}
	return items
}
