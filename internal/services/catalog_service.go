package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rafabene/avantpro-commerce/internal/domain/entities"
	svcerrors "github.com/rafabene/avantpro-commerce/internal/domain/errors"
	"github.com/rafabene/avantpro-commerce/internal/domain/ports"
	"github.com/rafabene/avantpro-commerce/internal/domain/repositories"
)

// CatalogService contém a lógica de negócio de leitura do catálogo
type CatalogService struct {
	catalogRepo repositories.CatalogRepository
	logger      ports.Logger
}

// NewCatalogService cria um novo CatalogService
func NewCatalogService(
	catalogRepo repositories.CatalogRepository,
	logger ports.Logger,
) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetProduct busca um produto por ID
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	product, err := s.catalogRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	if product == nil {
		return nil, svcerrors.NotFound(svcerrors.KeyProductNotFound, id)
	}
	return product, nil
}

// SearchProducts busca produtos pelo nome, opcionalmente filtrando por categoria
func (s *CatalogService) SearchProducts(ctx context.Context, filters repositories.ProductFilters) ([]*entities.Product, error) {
	if filters.Name == "" {
		return nil, svcerrors.BadRequest(svcerrors.KeyQueryParameterNotPresent, "name")
	}
	if filters.CategoryID != nil {
		if err := validateID(*filters.CategoryID); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("searching products", "name", filters.Name, "page", filters.Page)

	products, err := s.catalogRepo.SearchProducts(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// GetCategory busca uma categoria por ID
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*entities.Category, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	category, err := s.catalogRepo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category %s: %w", id, err)
	}
	if category == nil {
		return nil, svcerrors.NotFound(svcerrors.KeyCategoryNotFound, id)
	}
	return category, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return svcerrors.BadRequest(svcerrors.KeyInvalidID, id)
	}
	return nil
}
