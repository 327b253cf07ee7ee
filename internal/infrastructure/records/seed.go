package records

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
)

// Credenciales del admin de bootstrap. El password se hashea con bcrypt al
// sembrar; no queda en texto plano en el store.
const (
	SeedAdminEmail    = "admin@ecoshop.com"
	seedAdminPassword = "admin123"
)

// EnsureSeeded siembra el catálogo inicial y el usuario admin si no existen.
// Es idempotente y no tiene efectos si los datos ya están presentes; se
// invoca explícitamente una sola vez desde la capa de composición.
func EnsureSeeded(ctx context.Context, products repository.ProductRepository, users repository.UserRepository) error {
	existing, err := products.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: leer productos: %w", err)
	}
	if len(existing) == 0 {
		for _, p := range seedProducts() {
			if _, err := products.Upsert(ctx, p); err != nil {
				return fmt.Errorf("seed: producto %s: %w", p.Name, err)
			}
		}
	}

	admin, err := users.GetByEmail(ctx, SeedAdminEmail)
	if err != nil {
		return fmt.Errorf("seed: buscar admin: %w", err)
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hashear password: %w", err)
		}
		if _, err := users.Upsert(ctx, &entity.User{
			ID:           "admin-1",
			FirstName:    "Admin",
			LastName:     "User",
			Email:        SeedAdminEmail,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			IsActive:     true,
			CreatedAt:    time.Now().Format(time.RFC3339),
		}); err != nil {
			return fmt.Errorf("seed: crear admin: %w", err)
		}
	}

	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(n int) *int { return &n }

// seedProducts devuelve el catálogo inicial de la tienda.
func seedProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:            "1",
			Name:          "Bamboo Toothbrush Set",
			Price:         dec("24.99"),
			OriginalPrice: decPtr("34.99"),
			Category:      "personal-care",
			EcoRating:     5,
			Description:   "Sustainable bamboo toothbrushes with soft bristles. Pack of 4 biodegradable toothbrushes perfect for the whole family.",
			Features: []string{
				"100% biodegradable bamboo handle",
				"Soft BPA-free bristles",
				"Ergonomic design",
				"Plastic-free packaging",
			},
			InStock:    true,
			StockCount: intPtr(150),
			Images: []string{
				"https://images.unsplash.com/photo-1607613009820-a29f7bb81c04?w=500",
				"https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=500",
			},
			Tags: []string{"bamboo", "sustainable", "oral-care", "biodegradable"},
		},
		{
			ID:            "2",
			Name:          "Organic Cotton Tote Bag",
			Price:         dec("18.99"),
			OriginalPrice: decPtr("25.99"),
			Category:      "accessories",
			EcoRating:     4,
			Description:   "Durable organic cotton tote bag perfect for grocery shopping and daily use. Reduces plastic bag waste.",
			Features: []string{
				"GOTS certified organic cotton",
				"Reinforced handles",
				"Machine washable",
				"Large capacity (15L)",
			},
			InStock:    true,
			StockCount: intPtr(89),
			Images: []string{
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500",
				"https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=500",
			},
			Tags: []string{"organic", "cotton", "reusable", "shopping"},
		},
		{
			ID:            "3",
			Name:          "Solar Power Bank",
			Price:         dec("45.99"),
			OriginalPrice: decPtr("59.99"),
			Category:      "electronics",
			EcoRating:     5,
			Description:   "Portable solar power bank with 20,000mAh capacity. Charge your devices using clean solar energy.",
			Features: []string{
				"20,000mAh battery capacity",
				"Solar panel charging",
				"Dual USB outputs",
				"Waterproof design",
			},
			InStock:    true,
			StockCount: intPtr(45),
			Images: []string{
				"https://images.unsplash.com/photo-1593642532842-98d0fd5ebc1a?w=500",
				"https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=500",
			},
			Tags: []string{"solar", "renewable", "electronics", "portable"},
		},
		{
			ID:            "4",
			Name:          "Reusable Stainless Steel Water Bottle",
			Price:         dec("32.99"),
			OriginalPrice: decPtr("42.99"),
			Category:      "kitchen",
			EcoRating:     5,
			Description:   "Premium stainless steel water bottle that keeps drinks cold for 24 hours or hot for 12 hours.",
			Features: []string{
				"Double-wall vacuum insulation",
				"BPA-free materials",
				"Leak-proof design",
				"750ml capacity",
			},
			InStock:    true,
			StockCount: intPtr(120),
			Images: []string{
				"https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=500",
				"https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=500",
			},
			Tags: []string{"stainless-steel", "reusable", "insulated", "hydration"},
		},
		{
			ID:            "5",
			Name:          "Organic Beeswax Food Wraps",
			Price:         dec("28.99"),
			OriginalPrice: decPtr("35.99"),
			Category:      "kitchen",
			EcoRating:     4,
			Description:   "Set of 6 organic beeswax wraps in various sizes. Perfect plastic wrap alternative for food storage.",
			Features: []string{
				"Organic cotton and beeswax",
				"Reusable up to 1 year",
				"Various sizes included",
				"Natural antibacterial properties",
			},
			InStock:    true,
			StockCount: intPtr(78),
			Images: []string{
				"https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=500",
				"https://images.unsplash.com/photo-1607613009820-a29f7bb81c04?w=500",
			},
			Tags: []string{"beeswax", "organic", "food-storage", "plastic-free"},
		},
		{
			ID:            "6",
			Name:          "LED Plant Grow Light",
			Price:         dec("89.99"),
			OriginalPrice: decPtr("119.99"),
			Category:      "home-garden",
			EcoRating:     4,
			Description:   "Energy-efficient LED grow light perfect for indoor plants and herbs. Promotes healthy plant growth.",
			Features: []string{
				"Full spectrum LED lights",
				"Energy efficient design",
				"Adjustable height",
				"Timer function included",
			},
			InStock:    true,
			StockCount: intPtr(32),
			Images: []string{
				"https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=500",
				"https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=500",
			},
			Tags: []string{"led", "energy-efficient", "gardening", "indoor-plants"},
		},
		{
			ID:            "7",
			Name:          "Compost Bin for Kitchen",
			Price:         dec("67.99"),
			OriginalPrice: decPtr("84.99"),
			Category:      "home-garden",
			EcoRating:     5,
			Description:   "Compact countertop compost bin with charcoal filter. Turn kitchen scraps into nutrient-rich compost.",
			Features: []string{
				"Odor-blocking charcoal filter",
				"Compact countertop design",
				"Easy-clean stainless steel",
				"1.3 gallon capacity",
			},
			InStock:    true,
			StockCount: intPtr(56),
			Images: []string{
				"https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=500",
				"https://images.unsplash.com/photo-1607613009820-a29f7bb81c04?w=500",
			},
			Tags: []string{"composting", "kitchen", "waste-reduction", "sustainable"},
		},
		{
			ID:            "8",
			Name:          "Natural Loofah Sponges",
			Price:         dec("15.99"),
			OriginalPrice: decPtr("22.99"),
			Category:      "personal-care",
			EcoRating:     5,
			Description:   "Set of 4 natural loofah sponges. Biodegradable alternative to synthetic bath sponges.",
			Features: []string{
				"100% natural loofah",
				"Biodegradable and compostable",
				"Gentle exfoliation",
				"Various sizes included",
			},
			InStock:    true,
			StockCount: intPtr(95),
			Images: []string{
				"https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=500",
				"https://images.unsplash.com/photo-1607613009820-a29f7bb81c04?w=500",
			},
			Tags: []string{"natural", "biodegradable", "bath", "exfoliation"},
		},
	}
}
