// Package main is the entry point for the delivery storefront API.
//
// The service keeps a per-session shopping cart and turns a checkout
// submission into a WhatsApp deep link carrying the composed order
// message.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/KMO142310/el-americano-delivery/config"
	"github.com/KMO142310/el-americano-delivery/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	defer cleanup()

	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
