package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/avantpro-commerce/internal/domain/entities"
	"github.com/rafabene/avantpro-commerce/internal/domain/repositories"
)

// CatalogRepository implementa repositories.CatalogRepository
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository cria um novo CatalogRepository
func NewCatalogRepository(db *gorm.DB) repositories.CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) FindProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var model ProductModel

	err := r.productQuery(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toProductEntity(&model), nil
}

func (r *CatalogRepository) SearchProducts(ctx context.Context, filters repositories.ProductFilters) ([]*entities.Product, error) {
	var models []*ProductModel

	query := r.productQuery(ctx).Where("name ILIKE ?", "%"+filters.Name+"%")

	// Aplicar filtros
	if filters.CategoryID != nil {
		query = query.Where("default_category_id = ?", *filters.CategoryID)
	}

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	query = query.Order("name").Limit(pageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(models))
	for _, model := range models {
		products = append(products, toProductEntity(model))
	}
	return products, nil
}

func (r *CatalogRepository) FindCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var model CategoryModel

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toCategoryEntity(&model), nil
}

// productQuery carrega categoria padrão e mídias ordenadas pela chave
func (r *CatalogRepository) productQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&ProductModel{}).
		Preload("DefaultCategory").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("key")
		})
}

// Conversores
func toProductEntity(model *ProductModel) *entities.Product {
	product := &entities.Product{
		ID:              model.ID,
		Name:            model.Name,
		Description:     model.Description,
		ActiveStartDate: fromUnix(model.ActiveStartDate),
		ActiveEndDate:   fromUnix(model.ActiveEndDate),
		Manufacturer:    model.Manufacturer,
		Model:           model.Model,
		PromoMessage:    model.PromoMessage,
	}

	if model.DefaultCategory != nil {
		product.DefaultCategory = toCategoryEntity(model.DefaultCategory)
	}

	if len(model.Media) > 0 {
		product.Media = make([]entities.Media, len(model.Media))
		for i, m := range model.Media {
			product.Media[i] = entities.Media{
				ID:      m.ID,
				Key:     m.Key,
				URL:     m.URL,
				Title:   m.Title,
				AltText: m.AltText,
				Tags:    m.Tags,
			}
		}
	}

	return product
}

func toCategoryEntity(model *CategoryModel) *entities.Category {
	return &entities.Category{
		ID:              model.ID,
		Name:            model.Name,
		Description:     model.Description,
		URL:             model.URL,
		ActiveStartDate: fromUnix(model.ActiveStartDate),
		ActiveEndDate:   fromUnix(model.ActiveEndDate),
	}
}

func fromUnix(ts *int64) *time.Time {
	if ts == nil {
		return nil
	}
	t := time.Unix(*ts, 0).UTC()
	return &t
}
