package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solemart/storefront/internal/config"
	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/logger"
	"github.com/solemart/storefront/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	brands := []models.Brand{
		{Slug: "nike", Name: "Nike", SortOrder: 100},
		{Slug: "adidas", Name: "Adidas", SortOrder: 90},
		{Slug: "new-balance", Name: "New Balance", SortOrder: 80},
	}
	for _, brand := range brands {
		var existing models.Brand
		if err := models.DB.Where("slug = ?", brand.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&brand).Error; err != nil {
				stdLog.Printf("Failed to create brand %s: %v", brand.Slug, err)
			} else {
				stdLog.Printf("Created brand: %s", brand.Slug)
			}
		} else {
			stdLog.Printf("Brand already exists: %s", brand.Slug)
		}
	}

	categories := []models.Category{
		{Slug: "sneakers", Name: "Sneakers", SortOrder: 100},
		{Slug: "running", Name: "Running", SortOrder: 90},
		{Slug: "slides", Name: "Slides & Sandals", SortOrder: 80},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	sizes := []models.Size{
		{Label: "EU 40", SortOrder: 100},
		{Label: "EU 41", SortOrder: 90},
		{Label: "EU 42", SortOrder: 80},
		{Label: "EU 43", SortOrder: 70},
		{Label: "EU 44", SortOrder: 60},
	}
	for _, size := range sizes {
		var existing models.Size
		if err := models.DB.Where("label = ?", size.Label).First(&existing).Error; err != nil {
			if err := models.DB.Create(&size).Error; err != nil {
				stdLog.Printf("Failed to create size %s: %v", size.Label, err)
			} else {
				stdLog.Printf("Created size: %s", size.Label)
			}
		} else {
			stdLog.Printf("Size already exists: %s", size.Label)
		}
	}

	brandIDs := map[string]uint{}
	var brandList []models.Brand
	if err := models.DB.Find(&brandList).Error; err != nil {
		stdLog.Printf("Failed to load brands: %v", err)
	}
	for _, b := range brandList {
		brandIDs[b.Slug] = b.ID
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, c := range categoryList {
		categoryIDs[c.Slug] = c.ID
	}

	sizeIDs := map[string]uint{}
	var sizeList []models.Size
	if err := models.DB.Find(&sizeList).Error; err != nil {
		stdLog.Printf("Failed to load sizes: %v", err)
	}
	for _, s := range sizeList {
		sizeIDs[s.Label] = s.ID
	}

	products := []models.Product{
		{
			BrandID:     brandIDs["nike"],
			CategoryID:  categoryIDs["sneakers"],
			Slug:        "air-force-1-low-white",
			Name:        "Air Force 1 Low White",
			Description: "The classic all-white leather sneaker, a wardrobe staple.",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1549298916-b41d501d3772?w=800",
			}),
			IsActive:  true,
			SortOrder: 100,
		},
		{
			BrandID:     brandIDs["adidas"],
			CategoryID:  categoryIDs["running"],
			Slug:        "ultraboost-light",
			Name:        "Ultraboost Light",
			Description: "Responsive daily trainer with a full-length Boost midsole.",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800",
			}),
			IsActive:  true,
			SortOrder: 90,
		},
		{
			BrandID:     brandIDs["new-balance"],
			CategoryID:  categoryIDs["sneakers"],
			Slug:        "nb-550-cream",
			Name:        "550 Cream",
			Description: "Retro basketball silhouette in cream and grey.",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1539185441755-769473a23570?w=800",
			}),
			IsActive:  true,
			SortOrder: 80,
		},
		{
			BrandID:     brandIDs["nike"],
			CategoryID:  categoryIDs["slides"],
			Slug:        "victori-one-slide",
			Name:        "Victori One Slide",
			Description: "Soft one-piece slide for everyday comfort.",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1603487742131-4160ec999306?w=800",
			}),
			IsActive:  true,
			SortOrder: 70,
		},
	}

	for _, prod := range products {
		if prod.BrandID == 0 || prod.CategoryID == 0 {
			stdLog.Printf("Skip product %s: brand_id or category_id missing", prod.Slug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Slug)
			}
		} else {
			existing.BrandID = prod.BrandID
			existing.CategoryID = prod.CategoryID
			existing.Name = prod.Name
			existing.Description = prod.Description
			existing.Images = prod.Images
			existing.IsActive = prod.IsActive
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Slug)
			}
		}
	}

	variantPlans := []struct {
		ProductSlug string
		SizeLabel   string
		Price       float64
		PromoPrice  float64
		InStock     bool
	}{
		{ProductSlug: "air-force-1-low-white", SizeLabel: "EU 41", Price: 85000, InStock: true},
		{ProductSlug: "air-force-1-low-white", SizeLabel: "EU 42", Price: 85000, InStock: true},
		{ProductSlug: "air-force-1-low-white", SizeLabel: "EU 43", Price: 85000, PromoPrice: 76500, InStock: true},
		{ProductSlug: "ultraboost-light", SizeLabel: "EU 42", Price: 120000, InStock: true},
		{ProductSlug: "ultraboost-light", SizeLabel: "EU 44", Price: 120000, InStock: false},
		{ProductSlug: "nb-550-cream", SizeLabel: "EU 40", Price: 95000, InStock: true},
		{ProductSlug: "nb-550-cream", SizeLabel: "EU 42", Price: 95000, PromoPrice: 88000, InStock: true},
		{ProductSlug: "victori-one-slide", SizeLabel: "EU 42", Price: 18500, InStock: true},
		{ProductSlug: "victori-one-slide", SizeLabel: "EU 44", Price: 18500, InStock: true},
	}

	for _, plan := range variantPlans {
		var product models.Product
		if err := models.DB.Where("slug = ?", plan.ProductSlug).First(&product).Error; err != nil {
			stdLog.Printf("Skip variant for %s: product not found", plan.ProductSlug)
			continue
		}
		sizeID := sizeIDs[plan.SizeLabel]
		if sizeID == 0 {
			stdLog.Printf("Skip variant for %s: size %s not found", plan.ProductSlug, plan.SizeLabel)
			continue
		}

		variant := models.ProductVariant{
			ProductID: product.ID,
			SizeID:    sizeID,
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(plan.Price)),
			InStock:   plan.InStock,
			IsActive:  true,
		}
		if plan.PromoPrice > 0 {
			promo := models.NewMoneyFromDecimal(decimal.NewFromFloat(plan.PromoPrice))
			variant.PromoPrice = &promo
		}

		var existing models.ProductVariant
		if err := models.DB.Where("product_id = ? AND size_id = ?", product.ID, sizeID).First(&existing).Error; err != nil {
			if err := models.DB.Create(&variant).Error; err != nil {
				stdLog.Printf("Failed to create variant %s/%s: %v", plan.ProductSlug, plan.SizeLabel, err)
			} else {
				stdLog.Printf("Created variant: %s %s", plan.ProductSlug, plan.SizeLabel)
			}
		} else {
			existing.Price = variant.Price
			existing.PromoPrice = variant.PromoPrice
			existing.InStock = variant.InStock
			existing.IsActive = variant.IsActive
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update variant %s/%s: %v", plan.ProductSlug, plan.SizeLabel, err)
			} else {
				stdLog.Printf("Updated variant: %s %s", plan.ProductSlug, plan.SizeLabel)
			}
		}
	}

	zones := []models.DeliveryZone{
		{Slug: "lagos-island", Name: "Lagos Island", Fee: models.NewMoneyFromDecimal(decimal.NewFromInt(2500)), SortOrder: 100, IsActive: true},
		{Slug: "lagos-mainland", Name: "Lagos Mainland", Fee: models.NewMoneyFromDecimal(decimal.NewFromInt(3500)), SortOrder: 90, IsActive: true},
		{Slug: "abuja", Name: "Abuja", Fee: models.NewMoneyFromDecimal(decimal.NewFromInt(6000)), SortOrder: 80, IsActive: true},
		{Slug: "port-harcourt", Name: "Port Harcourt", Fee: models.NewMoneyFromDecimal(decimal.NewFromInt(6500)), SortOrder: 70, IsActive: true},
	}
	for _, zone := range zones {
		var existing models.DeliveryZone
		if err := models.DB.Where("slug = ?", zone.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&zone).Error; err != nil {
				stdLog.Printf("Failed to create delivery zone %s: %v", zone.Slug, err)
			} else {
				stdLog.Printf("Created delivery zone: %s", zone.Slug)
			}
		} else {
			existing.Name = zone.Name
			existing.Fee = zone.Fee
			existing.SortOrder = zone.SortOrder
			existing.IsActive = zone.IsActive
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update delivery zone %s: %v", zone.Slug, err)
			} else {
				stdLog.Printf("Updated delivery zone: %s", zone.Slug)
			}
		}
	}

	now := time.Now()
	saveEnd := now.AddDate(0, 1, 0)
	minBulk := models.NewMoneyFromDecimal(decimal.NewFromInt(50000))

	promotions := []models.Promotion{
		{
			Code:         "SAVE10",
			Description:  "10% off storewide",
			DiscountType: constants.DiscountTypePercentage,
			Value:        models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
			Scope:        constants.PromotionScopeAll,
			EndAt:        &saveEnd,
			IsActive:     true,
		},
		{
			Code:         "BULK5000",
			Description:  "₦5,000 off orders of ₦50,000 and above",
			DiscountType: constants.DiscountTypeFixed,
			Value:        models.NewMoneyFromDecimal(decimal.NewFromInt(5000)),
			MinSubtotal:  &minBulk,
			Scope:        constants.PromotionScopeAll,
			IsActive:     true,
		},
	}
	for _, promo := range promotions {
		var existing models.Promotion
		if err := models.DB.Where("code = ?", promo.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&promo).Error; err != nil {
				stdLog.Printf("Failed to create promotion %s: %v", promo.Code, err)
			} else {
				stdLog.Printf("Created promotion: %s", promo.Code)
			}
		} else {
			stdLog.Printf("Promotion already exists: %s", promo.Code)
		}
	}

	fmt.Println("\nSeed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Brands, 3 Categories, 5 Sizes")
	fmt.Println("- 4 Products with 9 size variants")
	fmt.Println("- 4 Delivery zones")
	fmt.Println("- 2 Promotions (SAVE10, BULK5000)")
}
