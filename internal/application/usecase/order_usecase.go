package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecoshop/ecoshop-api/internal/application/cart"
	"github.com/ecoshop/ecoshop-api/internal/application/dto"
	"github.com/ecoshop/ecoshop-api/internal/domain"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
)

// Impuesto de presentación sobre el subtotal. Solo afecta los DTOs y el
// recibo; el registro persistido guarda el subtotal.
var displayTaxRate = decimal.NewFromFloat(0.08)

// ReceiptPDFGenerator puerto para la representación PDF de una orden.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(order *entity.Order, productNames map[string]string) ([]byte, error)
}

// OrderUseCase checkout y gestión de órdenes. Una orden se escribe una sola
// vez; después solo el estado transiciona (back-office).
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	store    storage.RecordStore
	pdf      ReceiptPDFGenerator
}

// NewOrderUseCase construye el caso de uso. pdf puede ser nil si el recibo
// no está habilitado.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	store storage.RecordStore,
	pdf ReceiptPDFGenerator,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, store: store, pdf: pdf}
}

// Checkout crea la orden desde el carrito activo de la identidad: congela el
// precio vigente de cada línea en priceAtPurchase, persiste la orden y vacía
// el carrito. Carrito vacío devuelve ErrEmptyCart.
func (uc *OrderUseCase) Checkout(ctx context.Context, identityID string, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	sync := cart.NewSynchronizer(uc.store, uc.products)
	if err := sync.Activate(ctx, identityID); err != nil {
		return nil, err
	}

	var items []entity.OrderItem
	total := decimal.Zero
	for _, line := range sync.Lines() {
		p, err := uc.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("buscar producto: %w", err)
		}
		if p == nil {
			// Producto eliminado después de agregarse: la línea se descarta.
			continue
		}
		items = append(items, entity.OrderItem{
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			PriceAtPurchase: p.Price,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	order := &entity.Order{
		ID: uuid.New().String(),
		CustomerInfo: entity.CustomerInfo{
			Email:     in.CustomerInfo.Email,
			FirstName: in.CustomerInfo.FirstName,
			LastName:  in.CustomerInfo.LastName,
			Address:   in.CustomerInfo.Address,
			City:      in.CustomerInfo.City,
			ZipCode:   in.CustomerInfo.ZipCode,
		},
		Items:  items,
		Total:  total,
		Status: entity.OrderConfirmed,
		Date:   time.Now().Format(time.RFC3339),
	}
	stored, err := uc.orders.Upsert(ctx, order)
	if err != nil {
		return nil, err
	}
	if err := sync.Clear(ctx); err != nil {
		return nil, fmt.Errorf("vaciar carrito: %w", err)
	}
	out := toOrderResponse(stored)
	return &out, nil
}

// GetByID obtiene una orden, o nil si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	out := toOrderResponse(order)
	return &out, nil
}

// ListByCustomer devuelve las órdenes del comprador por email.
func (uc *OrderUseCase) ListByCustomer(ctx context.Context, email string) (*dto.OrderListResponse, error) {
	orders, err := uc.orders.FindByCustomerEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toOrderList(orders), nil
}

// List devuelve todas las órdenes (back-office).
func (uc *OrderUseCase) List(ctx context.Context) (*dto.OrderListResponse, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderList(orders), nil
}

// UpdateStatus transiciona el estado de la orden (solo back-office). El
// resto de la orden es inmutable.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	order.Status = status
	stored, err := uc.orders.Upsert(ctx, order)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(stored)
	return &out, nil
}

// Receipt genera el PDF del recibo de la orden.
func (uc *OrderUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrNotFound
	}
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	names := make(map[string]string, len(order.Items))
	for _, it := range order.Items {
		p, err := uc.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			names[it.ProductID] = p.Name
		}
	}
	return uc.pdf.GenerateReceiptPDF(order, names)
}

func toOrderList(orders []*entity.Order) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
		})
	}
	tax := o.Total.Mul(displayTaxRate).Round(2)
	return dto.OrderResponse{
		ID: o.ID,
		CustomerInfo: dto.CustomerInfoDTO{
			Email:     o.CustomerInfo.Email,
			FirstName: o.CustomerInfo.FirstName,
			LastName:  o.CustomerInfo.LastName,
			Address:   o.CustomerInfo.Address,
			City:      o.CustomerInfo.City,
			ZipCode:   o.CustomerInfo.ZipCode,
		},
		Items:      items,
		Total:      o.Total,
		Tax:        tax,
		GrandTotal: o.Total.Add(tax),
		Status:     o.Status,
		Date:       o.Date,
	}
}
