package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rakumane/internal/domain"
	shippingsvc "rakumane/internal/service/shipping"
)

type setStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

type setTrackingRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

type locationResponse struct {
	domain.Location
	Utilization int `json:"utilization"`
}

func listOrdersHandler(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := shippingsvc.Filter{
			Status:  c.Query("status"),
			Channel: c.Query("channel"),
		}
		orders, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
	}
}

func getOrderHandler(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func setStatusHandler(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "status required")
			return
		}
		order, err := svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func setTrackingHandler(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setTrackingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		order, err := svc.SetTrackingNumber(c.Request.Context(), c.Param("id"), req.TrackingNumber)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func urgencyHandler(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orderId": order.ID,
			"urgency": svc.Urgency(*order),
		})
	}
}

func checklistHandler(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var steps domain.Checklist
		if err := c.ShouldBindJSON(&steps); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		order, progress, err := svc.ApplyChecklist(c.Request.Context(), c.Param("id"), steps)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order, "progress": progress})
	}
}

func locationsHandler(svc *shippingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		locations := svc.Locations()
		out := make([]locationResponse, 0, len(locations))
		for _, loc := range locations {
			out = append(out, locationResponse{Location: loc, Utilization: loc.Utilization()})
		}
		c.JSON(http.StatusOK, gin.H{"locations": out})
	}
}
