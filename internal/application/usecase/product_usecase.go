package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ecoshop/ecoshop-api/internal/application/dto"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: listado con filtros para la
// tienda y CRUD para el back-office.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve el catálogo filtrado y ordenado. El filtrado es en memoria:
// las colecciones son chicas y el repositorio no indexa.
func (uc *ProductUseCase) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	matches, err := uc.repo.Find(ctx, func(p *entity.Product) bool {
		return matchesFilter(p, filter)
	})
	if err != nil {
		return nil, err
	}

	sortProducts(matches, filter.SortBy)

	items := make([]dto.ProductResponse, 0, len(matches))
	for _, p := range matches {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func matchesFilter(p *entity.Product, f dto.ProductFilter) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		hit := strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
		if !hit {
			for _, tag := range p.Tags {
				if strings.Contains(strings.ToLower(tag), term) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}
	if f.Category != "" && f.Category != "all" && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.MinEco > 0 && p.EcoRating < f.MinEco {
		return false
	}
	if f.MaxEco > 0 && p.EcoRating > f.MaxEco {
		return false
	}
	return true
}

func sortProducts(list []*entity.Product, sortBy string) {
	switch sortBy {
	case "price-asc":
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price.LessThan(list[j].Price) })
	case "price-desc":
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price.GreaterThan(list[j].Price) })
	case "eco-rating":
		sort.SliceStable(list, func(i, j int) bool { return list[i].EcoRating > list[j].EcoRating })
	default: // name
		sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}
}

// GetByID obtiene un producto por ID, o nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := toProductResponse(p)
	return &out, nil
}

// Create crea un producto nuevo (solo back-office). El ID lo asigna el
// repositorio desde el timestamp de creación.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:          in.Name,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Category:      in.Category,
		EcoRating:     in.EcoRating,
		Description:   in.Description,
		Features:      in.Features,
		Images:        in.Images,
		Tags:          in.Tags,
		InStock:       true,
		StockCount:    in.StockCount,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}
	stored, err := uc.repo.Upsert(ctx, product)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(stored)
	return &out, nil
}

// Update aplica un patch explícito: solo los campos presentes se modifican.
// Devuelve nil si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.OriginalPrice != nil {
		product.OriginalPrice = in.OriginalPrice
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.EcoRating != nil {
		product.EcoRating = *in.EcoRating
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Features != nil {
		product.Features = in.Features
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.Tags != nil {
		product.Tags = in.Tags
	}
	if in.InStock != nil {
		product.InStock = *in.InStock
	}
	if in.StockCount != nil {
		product.StockCount = in.StockCount
	}
	stored, err := uc.repo.Upsert(ctx, product)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(stored)
	return &out, nil
}

// Delete elimina el producto (hard delete, sin tombstone). Devuelve si
// existía.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Remove(ctx, id)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		EcoRating:     p.EcoRating,
		Description:   p.Description,
		Features:      p.Features,
		Images:        p.Images,
		Tags:          p.Tags,
		InStock:       p.InStock,
		StockCount:    p.StockCount,
		CreatedAt:     p.CreatedAt,
	}
}
