package httpserver

import (
	"errors"
	"net/http"

	"vastrabazaar/internal/catalog"
	"vastrabazaar/internal/domain"
	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func getCartHandler(c *gin.Context) {
	s := currentSession(c)
	c.JSON(http.StatusOK, toCartView(s.Cart()))
}

func addCartItemHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		p, err := svc.Get(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		s := currentSession(c)
		s.AddToCart(*p)
		c.JSON(http.StatusOK, toCartView(s.Cart()))
	}
}

func updateCartItemHandler(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
		return
	}
	s := currentSession(c)
	s.UpdateCartQuantity(c.Param("productId"), req.Quantity)
	c.JSON(http.StatusOK, toCartView(s.Cart()))
}

func removeCartItemHandler(c *gin.Context) {
	s := currentSession(c)
	s.RemoveFromCart(c.Param("productId"))
	c.JSON(http.StatusOK, toCartView(s.Cart()))
}

func clearCartHandler(c *gin.Context) {
	s := currentSession(c)
	s.ClearCart()
	c.JSON(http.StatusOK, toCartView(s.Cart()))
}
