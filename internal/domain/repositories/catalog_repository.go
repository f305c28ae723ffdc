package repositories

import (
	"context"

	"github.com/rafabene/avantpro-commerce/internal/domain/entities"
)

// CatalogRepository define a interface de leitura do catálogo.
// Find* retornam (nil, nil) quando o registro não existe.
type CatalogRepository interface {
	FindProductByID(ctx context.Context, id string) (*entities.Product, error)
	SearchProducts(ctx context.Context, filters ProductFilters) ([]*entities.Product, error)
	FindCategoryByID(ctx context.Context, id string) (*entities.Category, error)
}

// ProductFilters contém filtros para busca de produtos
type ProductFilters struct {
	Name       string  // busca parcial, sem diferenciar maiúsculas
	CategoryID *string
	Page       int // Página (começa em 1)
	PageSize   int // Itens por página (default: 20, max: 100)
}
