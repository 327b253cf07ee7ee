package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ecoshop/ecoshop-api/internal/application/cart"
	"github.com/ecoshop/ecoshop-api/internal/application/dto"
	"github.com/ecoshop/ecoshop-api/internal/domain"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
)

// CartHandler carrito de la identidad autenticada. Cada request activa el
// sincronizador sobre la identidad del token; el estado vive en el store,
// no en el proceso.
type CartHandler struct {
	store    storage.RecordStore
	products repository.ProductRepository
}

// NewCartHandler construye el handler del carrito.
func NewCartHandler(store storage.RecordStore, products repository.ProductRepository) *CartHandler {
	return &CartHandler{store: store, products: products}
}

func (h *CartHandler) sync(c *fiber.Ctx) (*cart.Synchronizer, error) {
	s := cart.NewSynchronizer(h.store, h.products)
	if err := s.Activate(c.Context(), GetUserID(c)); err != nil {
		return nil, err
	}
	return s, nil
}

// Get godoc
// @Summary      Ver carrito
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	sync, err := h.sync(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.respond(c, sync)
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddCartItemRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	sync, err := h.sync(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := sync.AddItem(c.Context(), in.ProductID, in.Quantity); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.respond(c, sync)
}

// SetQuantity godoc
// @Summary      Fijar cantidad de una línea
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.SetCartQuantityRequest  true  "quantity (<= 0 elimina la línea)"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sync, err := h.sync(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := sync.SetQuantity(c.Context(), c.Params("productId"), in.Quantity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.respond(c, sync)
}

// RemoveItem godoc
// @Summary      Eliminar una línea del carrito
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	sync, err := h.sync(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := sync.RemoveItem(c.Context(), c.Params("productId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.respond(c, sync)
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sync, err := h.sync(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := sync.Clear(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.respond(c, sync)
}

// respond arma la respuesta con nombres y precios vigentes. Una línea cuyo
// producto ya no existe se muestra con precio cero.
func (h *CartHandler) respond(c *fiber.Ctx, sync *cart.Synchronizer) error {
	lines := sync.Lines()
	items := make([]dto.CartLineResponse, 0, len(lines))
	for _, line := range lines {
		item := dto.CartLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: decimal.Zero,
			LineTotal: decimal.Zero,
		}
		p, err := h.products.GetByID(c.Context(), line.ProductID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if p != nil {
			item.Name = p.Name
			item.UnitPrice = p.Price
			item.LineTotal = p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		}
		items = append(items, item)
	}
	total, err := sync.TotalPrice(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CartResponse{
		Items:      items,
		TotalItems: sync.TotalItems(),
		TotalPrice: total,
	})
}
