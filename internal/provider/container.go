package provider

import (
	"github.com/solemart/storefront/internal/cache"
	"github.com/solemart/storefront/internal/config"
	"github.com/solemart/storefront/internal/logger"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/queue"
	"github.com/solemart/storefront/internal/repository"
	"github.com/solemart/storefront/internal/service"
)

// Container is the dependency injection root.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo    repository.AdminRepository
	ProductRepo  repository.ProductRepository
	VariantRepo  repository.VariantRepository
	CategoryRepo repository.CategoryRepository
	BrandRepo    repository.BrandRepository
	SizeRepo     repository.SizeRepository
	CartRepo     repository.CartRepository
	PromoRepo    repository.PromotionRepository
	ZoneRepo     repository.DeliveryZoneRepository
	OrderRepo    repository.OrderRepository

	// Services
	AuthService           *service.AuthService
	CatalogService        *service.CatalogService
	CartService           *service.CartService
	PromotionService      *service.PromotionService
	PromotionAdminService *service.PromotionAdminService
	DeliveryService       *service.DeliveryService
	DeliveryAdminService  *service.DeliveryAdminService
	OrderService          *service.OrderService
	PaymentService        *service.PaymentService
	SupportService        *service.SupportService
}

// NewContainer builds the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.VariantRepo = repository.NewVariantRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.BrandRepo = repository.NewBrandRepository(db)
	c.SizeRepo = repository.NewSizeRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.PromoRepo = repository.NewPromotionRepository(db)
	c.ZoneRepo = repository.NewDeliveryZoneRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo, c.BrandRepo, c.SizeRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.VariantRepo)
	c.PromotionService = service.NewPromotionService(c.PromoRepo)
	c.PromotionAdminService = service.NewPromotionAdminService(c.PromoRepo)
	c.DeliveryService = service.NewDeliveryService(c.ZoneRepo)
	c.DeliveryAdminService = service.NewDeliveryAdminService(c.ZoneRepo, c.DeliveryService)
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.CartRepo,
		c.CartService,
		c.PromotionService,
		c.DeliveryService,
		c.Config.Order.Currency,
	)
	c.PaymentService = service.NewPaymentService(&c.Config.Paystack, c.OrderService)
	c.SupportService = service.NewSupportService(&c.Config.Support)
}
