package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	cartsvc "rakumane/internal/service/cart"
	inventorysvc "rakumane/internal/service/inventory"
	shippingsvc "rakumane/internal/service/shipping"
	statssvc "rakumane/internal/service/stats"
)

// Deps carries the services the handlers need.
type Deps struct {
	InventorySvc *inventorysvc.Service
	ShippingSvc  *shippingsvc.Service
	CartSvc      *cartsvc.Service
	StatsSvc     *statssvc.Service
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with all routes wired.
func New(addr string, logger *log.Logger, deps Deps, corsOrigins []string) (*Server, error) {
	router := buildRouter(logger, deps, corsOrigins)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.InventorySvc == nil || deps.ShippingSvc == nil || deps.CartSvc == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "services not configured"})
			return
		}
		if _, err := deps.InventorySvc.List(c.Request.Context(), inventorysvc.Filter{}); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "inventory not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
