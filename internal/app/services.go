// Package app provides service initialization.
package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/KMO142310/el-americano-delivery/config"
	"github.com/KMO142310/el-americano-delivery/internal/repository"
	"github.com/KMO142310/el-americano-delivery/internal/service"
	"github.com/KMO142310/el-americano-delivery/internal/whatsapp"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	CartService service.CartService
	Checkout    *service.CheckoutOrchestrator
	LinkBuilder *whatsapp.LinkBuilder

	redisClient *redis.Client
	memoryRepo  *repository.MemoryCartRepository
}

// InitializeServices initializes the session store and business services.
//
// Redis is preferred for cart storage when enabled and reachable; the
// in-memory store is the fallback, so a missing Redis never blocks the
// storefront.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	components := &ServiceComponents{}

	var cartRepo repository.CartRepository
	if cfg.Session.RedisEnabled {
		client, err := repository.ConnectRedis(cfg.Session.RedisAddr, cfg.Session.RedisPassword, cfg.Session.RedisDB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Session.RedisAddr).
				Msg("Redis unavailable, falling back to in-memory cart store")
		} else {
			log.Info().Str("addr", cfg.Session.RedisAddr).Msg("Connected to Redis")
			components.redisClient = client
			cartRepo = repository.NewRedisCartRepository(client, cfg.Session.TTL)
		}
	}
	if cartRepo == nil {
		components.memoryRepo = repository.NewMemoryCartRepository(cfg.Session.TTL)
		cartRepo = components.memoryRepo
	}

	components.CartService = service.NewCartService(cartRepo)
	components.LinkBuilder = whatsapp.NewLinkBuilder(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Phone)

	var audit service.LoggingService
	if dbComponents != nil {
		audit = dbComponents.LoggingService
	}

	components.Checkout = service.NewCheckoutOrchestrator(
		components.CartService,
		components.LinkBuilder,
		audit,
		service.CheckoutConfig{
			Cooldown:       cfg.Checkout.Cooldown,
			ResetDelay:     cfg.Checkout.ResetDelay,
			SessionTTL:     cfg.Session.TTL,
			DefaultPayment: cfg.Checkout.DefaultPayment,
		},
	)

	return components
}

// Close releases service-owned background resources.
func (c *ServiceComponents) Close() {
	if c.Checkout != nil {
		c.Checkout.Close()
	}
	if c.memoryRepo != nil {
		c.memoryRepo.Stop()
	}
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Redis close failed")
		}
	}
}
