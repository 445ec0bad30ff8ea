package router

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/solemart/storefront/internal/cache"
	"github.com/solemart/storefront/internal/config"
	"github.com/solemart/storefront/internal/constants"
	adminhandlers "github.com/solemart/storefront/internal/http/handlers/admin"
	publichandlers "github.com/solemart/storefront/internal/http/handlers/public"
	"github.com/solemart/storefront/internal/logger"
	"github.com/solemart/storefront/internal/provider"
)

// SetupRouter wires middleware and routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		Message:       "too many checkout attempts, try again later",
	}
	promoRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:promo", redisPrefix),
		WindowSeconds: cfg.Security.PromoRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.PromoRateLimit.MaxAttempts,
		Message:       "too many promotion attempts, try again later",
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts, try again later",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:slug", publicHandler.GetProduct)
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/brands", publicHandler.ListBrands)
			public.GET("/sizes", publicHandler.ListSizes)
			public.GET("/delivery-zones", publicHandler.ListDeliveryZones)
			public.GET("/support/contact", publicHandler.SupportContact)
		}

		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.DELETE("", publicHandler.ClearCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items/:variantID", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:variantID", publicHandler.RemoveCartItem)
		}

		apiV1.POST("/promotions/validate",
			RateLimitMiddleware(redisClient, promoRule, nil),
			publicHandler.ValidatePromotion)

		orders := apiV1.Group("/orders")
		{
			orders.POST("",
				RateLimitMiddleware(redisClient, checkoutRule, nil),
				publicHandler.CreateOrder)
			orders.GET("/:orderNo", publicHandler.GetOrder)
		}

		payments := apiV1.Group("/payments/paystack")
		{
			payments.GET("/callback", publicHandler.PaystackCallback)
			payments.POST("/webhook", publicHandler.PaystackWebhook)
		}

		apiV1.POST("/admin/login",
			RateLimitMiddleware(redisClient, loginRule, nil),
			adminHandler.Login)

		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
		{
			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:orderNo", adminHandler.GetOrder)
			admin.PUT("/orders/:orderNo/status", adminHandler.UpdateOrderStatus)

			admin.GET("/promotions", adminHandler.ListPromotions)
			admin.GET("/promotions/:id", adminHandler.GetPromotion)
			admin.POST("/promotions", adminHandler.CreatePromotion)
			admin.PUT("/promotions/:id", adminHandler.UpdatePromotion)
			admin.DELETE("/promotions/:id", adminHandler.DeletePromotion)

			admin.GET("/delivery-zones", adminHandler.ListDeliveryZones)
			admin.POST("/delivery-zones", adminHandler.CreateDeliveryZone)
			admin.PUT("/delivery-zones/:id", adminHandler.UpdateDeliveryZone)
			admin.DELETE("/delivery-zones/:id", adminHandler.DeleteDeliveryZone)

			admin.GET("/products", adminHandler.ListProducts)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)
			admin.POST("/variants", adminHandler.CreateVariant)
			admin.PUT("/variants/:id", adminHandler.UpdateVariant)
			admin.DELETE("/variants/:id", adminHandler.DeleteVariant)

			admin.POST("/brands", adminHandler.CreateBrand)
			admin.DELETE("/brands/:id", adminHandler.DeleteBrand)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)
			admin.POST("/sizes", adminHandler.CreateSize)
			admin.DELETE("/sizes/:id", adminHandler.DeleteSize)
		}
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
