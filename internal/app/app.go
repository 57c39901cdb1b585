// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/KMO142310/el-americano-delivery/config"
	"github.com/KMO142310/el-americano-delivery/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// It returns the configured router and a cleanup function that releases
// background resources (checkout timers, session store, database clients).
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB audit log store)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services (session store, cart, checkout)
	serviceComponents := InitializeServices(cfg, dbComponents)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	router := http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	cleanup := func() {
		serviceComponents.Close()
		if dbComponents != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := dbComponents.DB.Close(ctx); err != nil {
				log.Warn().Err(err).Msg("MongoDB close failed")
			}
		}
	}

	return router, cleanup
}
