package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/barberdesk/core-service/internal/inventory"
	"github.com/barberdesk/core-service/internal/inventory/dto"
	"github.com/barberdesk/core-service/internal/model"
	"github.com/barberdesk/core-service/internal/money"
	"github.com/barberdesk/core-service/internal/pkg/httperr"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger *zap.Logger
}

func NewInventoryHandler(uc inventory.UseCase, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

func (h *InventoryHandler) Register(e *echo.Echo) {
	e.POST("/products", h.CreateProduct)
	e.GET("/products", h.ListProducts)
	e.GET("/products/:id", h.GetProduct)
	e.GET("/products/:id/stock", h.CurrentStock)
	e.POST("/products/:id/movements", h.RecordMovement)
	e.GET("/products/:id/movements", h.History)
}

type createProductRequest struct {
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	InitialStock   int64  `json:"initial_stock"`
}

func (h *InventoryHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), &dto.CreateProductInput{
		Name:         req.Name,
		UnitPrice:    money.FromCents(req.UnitPriceCents),
		InitialStock: req.InitialStock,
	})
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *InventoryHandler) GetProduct(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *InventoryHandler) ListProducts(c echo.Context) error {
	items, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) CurrentStock(c echo.Context) error {
	stock, err := h.uc.CurrentStock(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"stock": stock})
}

type recordMovementRequest struct {
	Kind          string `json:"kind"`
	Quantity      int64  `json:"quantity"`
	PaymentMethod string `json:"payment_method"`
}

func (h *InventoryHandler) RecordMovement(c echo.Context) error {
	var req recordMovementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	m, err := h.uc.RecordMovement(c.Request().Context(), &dto.RecordMovementInput{
		ProductID:     c.Param("id"),
		Kind:          model.MovementKind(req.Kind),
		Quantity:      req.Quantity,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

type historyResponse struct {
	Items []model.StockMovement `json:"items"`
	Total int                   `json:"total"`
}

func (h *InventoryHandler) History(c echo.Context) error {
	filters := &dto.MovementFilters{
		ProductID: c.Param("id"),
		Kind:      model.MovementKind(c.QueryParam("kind")),
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		filters.Page = page
	}
	if size, err := strconv.Atoi(c.QueryParam("page_size")); err == nil {
		filters.PageSize = size
	}

	items, total, err := h.uc.History(c.Request().Context(), filters)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, historyResponse{Items: items, Total: total})
}
