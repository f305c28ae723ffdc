package dto

import (
	"encoding/xml"
	"time"

	"github.com/rafabene/avantpro-commerce/internal/domain/entities"
)

// APIWrapper copia os campos de um modelo de domínio para um DTO serializável
type APIWrapper[T any] interface {
	Wrap(model T)
}

var (
	_ APIWrapper[*entities.Product]  = (*ProductWrapper)(nil)
	_ APIWrapper[*entities.Category] = (*CategoryWrapper)(nil)
	_ APIWrapper[*entities.Media]    = (*MediaWrapper)(nil)
)

// ProductWrapper representa a resposta de um produto
type ProductWrapper struct {
	XMLName         xml.Name         `json:"-" xml:"product"`
	ID              string           `json:"id" xml:"id"`
	Name            string           `json:"name" xml:"name"`
	Description     string           `json:"description,omitempty" xml:"description,omitempty"`
	ActiveStartDate *time.Time       `json:"activeStartDate,omitempty" xml:"activeStartDate,omitempty"`
	ActiveEndDate   *time.Time       `json:"activeEndDate,omitempty" xml:"activeEndDate,omitempty"`
	DefaultCategory *CategoryWrapper `json:"defaultCategory,omitempty" xml:"category,omitempty"`
	Manufacturer    string           `json:"manufacturer,omitempty" xml:"manufacturer,omitempty"`
	Model           string           `json:"model,omitempty" xml:"model,omitempty"`
	PromoMessage    string           `json:"promoMessage,omitempty" xml:"promoMessage,omitempty"`
	ProductMedia    []*MediaWrapper  `json:"productMedia,omitempty" xml:"productMediaList>media,omitempty"`
}

// CategoryWrapper representa a resposta de uma categoria
type CategoryWrapper struct {
	XMLName         xml.Name   `json:"-" xml:"category"`
	ID              string     `json:"id" xml:"id"`
	Name            string     `json:"name" xml:"name"`
	Description     string     `json:"description,omitempty" xml:"description,omitempty"`
	URL             string     `json:"url,omitempty" xml:"url,omitempty"`
	ActiveStartDate *time.Time `json:"activeStartDate,omitempty" xml:"activeStartDate,omitempty"`
	ActiveEndDate   *time.Time `json:"activeEndDate,omitempty" xml:"activeEndDate,omitempty"`
}

// MediaWrapper representa a resposta de uma mídia
type MediaWrapper struct {
	XMLName xml.Name `json:"-" xml:"media"`
	ID      string   `json:"id" xml:"id"`
	Key     string   `json:"key,omitempty" xml:"key,omitempty"`
	Title   string   `json:"title,omitempty" xml:"title,omitempty"`
	URL     string   `json:"url" xml:"url"`
	AltText string   `json:"altText,omitempty" xml:"altText,omitempty"`
}

// ProductListWrapper representa uma lista de produtos
type ProductListWrapper struct {
	XMLName  xml.Name          `json:"-" xml:"products"`
	Products []*ProductWrapper `json:"products" xml:"product"`
}

// Wrap copia o produto; mídias e categoria padrão são embrulhadas recursivamente
func (w *ProductWrapper) Wrap(model *entities.Product) {
	w.ID = model.ID
	w.Name = model.Name
	w.Description = model.Description
	w.ActiveStartDate = model.ActiveStartDate
	w.ActiveEndDate = model.ActiveEndDate
	w.Manufacturer = model.Manufacturer
	w.Model = model.Model
	w.PromoMessage = model.PromoMessage

	if len(model.Media) > 0 {
		w.ProductMedia = make([]*MediaWrapper, 0, len(model.Media))
		for i := range model.Media {
			media := &MediaWrapper{}
			media.Wrap(&model.Media[i])
			w.ProductMedia = append(w.ProductMedia, media)
		}
	}

	if model.DefaultCategory != nil {
		w.DefaultCategory = &CategoryWrapper{}
		w.DefaultCategory.Wrap(model.DefaultCategory)
	}
}

func (w *CategoryWrapper) Wrap(model *entities.Category) {
	w.ID = model.ID
	w.Name = model.Name
	w.Description = model.Description
	w.URL = model.URL
	w.ActiveStartDate = model.ActiveStartDate
	w.ActiveEndDate = model.ActiveEndDate
}

func (w *MediaWrapper) Wrap(model *entities.Media) {
	w.ID = model.ID
	w.Key = model.Key
	w.Title = model.Title
	w.URL = model.URL
	w.AltText = model.AltText
}

// ToProductWrapper converte uma entidade Product para ProductWrapper
func ToProductWrapper(product *entities.Product) *ProductWrapper {
	w := &ProductWrapper{}
	w.Wrap(product)
	return w
}

// ToProductListWrapper converte uma lista de entidades Product
func ToProductListWrapper(products []*entities.Product) *ProductListWrapper {
	list := &ProductListWrapper{Products: make([]*ProductWrapper, len(products))}
	for i, product := range products {
		list.Products[i] = ToProductWrapper(product)
	}
	return list
}

// ToCategoryWrapper converte uma entidade Category para CategoryWrapper
func ToCategoryWrapper(category *entities.Category) *CategoryWrapper {
	w := &CategoryWrapper{}
	w.Wrap(category)
	return w
}

// SearchProductsRequest representa os parâmetros de busca de produtos
type SearchProductsRequest struct {
	Name       string `form:"name" binding:"required,min=2,max=100"`
	CategoryID string `form:"categoryId" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
}
