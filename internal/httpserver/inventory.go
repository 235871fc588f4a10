package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rakumane/internal/domain"
	inventorysvc "rakumane/internal/service/inventory"
)

type adjustStockRequest struct {
	Delta  *int   `json:"delta" binding:"required"`
	Reason string `json:"reason"`
}

type updateItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	SKU         string   `json:"sku" binding:"required"`
	Price       int64    `json:"price"`
	Stock       int      `json:"stock"`
	MinStock    int      `json:"minStock"`
	MaxStock    int      `json:"maxStock"`
	Locations   string   `json:"locations"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

func listItemsHandler(svc *inventorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := inventorysvc.Filter{
			Search:      c.Query("search"),
			StockStatus: inventorysvc.StockStatus(c.Query("stockStatus")),
			Location:    c.Query("location"),
			Category:    c.Query("category"),
		}
		items, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
	}
}

func getItemHandler(svc *inventorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func adjustStockHandler(svc *inventorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adjustStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "delta required")
			return
		}
		item, err := svc.AdjustStock(c.Request.Context(), c.Param("id"), *req.Delta, req.Reason)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func itemHistoryHandler(svc *inventorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := svc.History(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"history": entries})
	}
}

func updateItemHandler(svc *inventorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if req.Price < 0 {
			respondError(c, http.StatusBadRequest, "price must not be negative")
			return
		}
		item, err := svc.UpdateItem(c.Request.Context(), domain.Item{
			ID:          c.Param("id"),
			Name:        req.Name,
			SKU:         req.SKU,
			Price:       req.Price,
			Stock:       req.Stock,
			MinStock:    req.MinStock,
			MaxStock:    req.MaxStock,
			Locations:   req.Locations,
			Category:    req.Category,
			Description: req.Description,
			Images:      req.Images,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
