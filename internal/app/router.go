// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/KMO142310/el-americano-delivery/config"
	"github.com/KMO142310/el-americano-delivery/internal/http"
	"github.com/KMO142310/el-americano-delivery/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	handler := http.NewHandler(serviceComponents.CartService, serviceComponents.Checkout)
	healthHandler := http.NewHealthHandler()

	// Register dependency health checks
	if dbComponents != nil {
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		healthHandler.RegisterCheckerFunc("mongodb", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return dbComponents.DB.HealthCheck(ctx)
		})
	}
	if serviceComponents.redisClient != nil {
		client := serviceComponents.redisClient
		healthHandler.RegisterCheckerFunc("redis", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err()
		})
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SecureCookies:     cfg.Server.SecureCookies,
		LoggingService:    loggingService,
		CartService:       serviceComponents.CartService,
		Checkout:          serviceComponents.Checkout,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
