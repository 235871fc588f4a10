package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"rakumane/internal/config"
	"rakumane/internal/httpserver"
	cartrepo "rakumane/internal/repository/cart"
	inventoryrepo "rakumane/internal/repository/inventory"
	orderrepo "rakumane/internal/repository/order"
	"rakumane/internal/seed"
	cartsvc "rakumane/internal/service/cart"
	inventorysvc "rakumane/internal/service/inventory"
	shippingsvc "rakumane/internal/service/shipping"
	statssvc "rakumane/internal/service/stats"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	data, err := seed.Load()
	if err != nil {
		logger.Fatalf("load seed data: %v", err)
	}
	logger.Printf("seeded %d items, %d orders, %d locations", len(data.Items), len(data.Orders), len(data.Locations))

	itemRepo := inventoryrepo.NewMemory(data.Items)
	orderRepo := orderrepo.NewMemory(data.Orders)
	cartRepo := cartrepo.NewMemory()

	inventoryService := inventorysvc.New(itemRepo)
	shippingService := shippingsvc.New(orderRepo, data.Locations, cfg.StrictStatusFlow)
	cartService := cartsvc.New(cartRepo)
	statsService := statssvc.New(itemRepo, orderRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		InventorySvc: inventoryService,
		ShippingSvc:  shippingService,
		CartSvc:      cartService,
		StatsSvc:     statsService,
	}, cfg.CORSAllowOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
