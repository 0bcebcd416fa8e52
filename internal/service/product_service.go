package service

import (
	"context"
	"fmt"

	"github.com/Vic2rious/backend-server/internal/model"
	"github.com/Vic2rious/backend-server/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves a page of products plus the total catalog size.
func (s *productService) GetAll(ctx context.Context, skip, take int) (*model.ProductPage, error) {
	if skip < 0 {
		skip = 0
	}

	total, err := s.productRepo.Count(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to count products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	products, err := s.productRepo.GetAll(ctx, take, skip)
	if err != nil {
		s.logger.Error().Err(err).
			Int("take", take).
			Int("skip", skip).
			Msg("failed to get products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int64("total", total).
		Msg("retrieved products")

	return &model.ProductPage{
		Pagination: model.Pagination{Total: total},
		Data:       products,
	}, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create creates a new product. Name uniqueness is checked before the
// insert so a duplicate surfaces as a Conflict, not a constraint error.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, model.NewInvalidArgument("product request is required")
	}
	if req.Name == "" {
		return nil, model.NewInvalidArgument("product name is required")
	}

	existing, err := s.productRepo.GetByName(ctx, req.Name)
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to check product name")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	if existing != nil {
		s.logger.Warn().Str("name", req.Name).Msg("duplicate product name")
		return nil, model.ErrProductNameConflict
	}

	product := &model.Product{
		Name:  req.Name,
		Price: req.Price,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("product created successfully")

	return product, nil
}

// Update applies a partial update to an existing product.
func (s *productService) Update(ctx context.Context, id int64, req *model.ProductUpdateRequest) (*model.Product, error) {
	if req == nil {
		return nil, model.NewInvalidArgument("product request is required")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated successfully")

	return product, nil
}

// Delete removes a product and returns its pre-deletion representation.
func (s *productService) Delete(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted successfully")

	return product, nil
}
