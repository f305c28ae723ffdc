package http

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	svcerrors "github.com/rafabene/avantpro-commerce/internal/domain/errors"
	"github.com/rafabene/avantpro-commerce/internal/domain/repositories"
	"github.com/rafabene/avantpro-commerce/internal/handlers/dto"
	"github.com/rafabene/avantpro-commerce/internal/services"
)

var registerTagNames sync.Once

// CatalogHandler lida com requisições HTTP de leitura do catálogo
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler cria um novo CatalogHandler
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	registerTagNames.Do(useFormTagNames)

	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetProduct busca um produto por ID
//
//	@Summary		Busca produto
//	@Tags			catalog
//	@Produce		json,xml
//	@Param			id	path		string	true	"ID do produto (UUID)"
//	@Success		200	{object}	dto.ProductWrapper
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Failure		500	{object}	dto.ErrorResponse
//	@Router			/catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	respond(c, http.StatusOK, dto.ToProductWrapper(product))
}

// SearchProducts busca produtos pelo nome
//
//	@Summary		Busca produtos
//	@Tags			catalog
//	@Produce		json,xml
//	@Param			name		query		string	true	"Parte do nome do produto"
//	@Param			categoryId	query		string	false	"ID da categoria padrão"
//	@Param			page		query		int		false	"Página (começa em 1)"
//	@Param			pageSize	query		int		false	"Itens por página (máx. 100)"
//	@Success		200			{object}	dto.ProductListWrapper
//	@Failure		400			{object}	dto.ErrorResponse
//	@Failure		500			{object}	dto.ErrorResponse
//	@Router			/catalog/products [get]
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	var req dto.SearchProductsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	filters := repositories.ProductFilters{
		Name:     req.Name,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.CategoryID != "" {
		filters.CategoryID = &req.CategoryID
	}

	products, err := h.catalogService.SearchProducts(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}

	respond(c, http.StatusOK, dto.ToProductListWrapper(products))
}

// GetCategory busca uma categoria por ID
//
//	@Summary		Busca categoria
//	@Tags			catalog
//	@Produce		json,xml
//	@Param			id	path		string	true	"ID da categoria (UUID)"
//	@Success		200	{object}	dto.CategoryWrapper
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Failure		500	{object}	dto.ErrorResponse
//	@Router			/catalog/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalogService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	respond(c, http.StatusOK, dto.ToCategoryWrapper(category))
}

// NoRoute responde 404 para rotas desconhecidas
func NoRoute(c *gin.Context) {
	_ = c.Error(svcerrors.NotFound(svcerrors.KeyNotFound))
}

func respond(c *gin.Context, status int, body any) {
	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEXML) == gin.MIMEXML {
		c.XML(status, body)
		return
	}
	c.JSON(status, body)
}

// bindingError converte falhas de binding em ServiceError 400.
// Parâmetro ausente vira queryParameterNotPresent; os demais, invalidParameter.
func bindingError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return svcerrors.BadRequest(svcerrors.KeyInvalidParameter, "query")
	}

	svcErr := svcerrors.New(http.StatusBadRequest)
	for _, fe := range validationErrs {
		if fe.Tag() == "required" {
			svcErr.AddMessage(svcerrors.KeyQueryParameterNotPresent, fe.Field())
			continue
		}
		svcErr.AddMessage(svcerrors.KeyInvalidParameter, fe.Field())
	}
	return svcErr
}

// useFormTagNames faz o validator reportar o nome do parâmetro de query
func useFormTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}
