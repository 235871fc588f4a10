package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rakumane/internal/domain"
	cartsvc "rakumane/internal/service/cart"
)

type updateQuantityRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

type checkoutRequest struct {
	Discount      domain.Discount `json:"discount"`
	PaymentMethod string          `json:"paymentMethod"`
}

func createCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Create(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

func getCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		cart, err := svc.AddItem(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func updateCartQuantityHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "delta required")
			return
		}
		cart, err := svc.UpdateQuantity(c.Request.Context(), c.Param("id"), c.Param("itemId"), *req.Delta)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func removeCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// cartTotalsHandler prices the cart with the discount passed as query
// parameters, e.g. ?discountType=percent&discountValue=10.
func cartTotalsHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		discount, ok := discountFromQuery(c)
		if !ok {
			return
		}
		totals, err := svc.Totals(c.Request.Context(), c.Param("id"), discount)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, totals)
	}
}

func checkoutHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		// Body is optional: a bare checkout is a cash sale with no discount.
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
		}
		receipt, err := svc.Checkout(c.Request.Context(), c.Param("id"), req.Discount, req.PaymentMethod)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, receipt)
	}
}

func discountFromQuery(c *gin.Context) (domain.Discount, bool) {
	discount := domain.Discount{Type: domain.DiscountNone}
	if t := c.Query("discountType"); t != "" {
		discount.Type = domain.DiscountType(t)
	}
	if v := c.Query("discountValue"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "discountValue must be an integer")
			return domain.Discount{}, false
		}
		discount.Value = parsed
	}
	return discount, true
}
